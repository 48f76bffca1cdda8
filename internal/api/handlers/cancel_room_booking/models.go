package cancel_room_booking

import (
	"github.com/m04kA/SMC-StaffPortal/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model (тело опционально)
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		UserID: userID,
		Reason: r.Reason,
	}
}
