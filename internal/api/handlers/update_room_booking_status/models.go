package update_room_booking_status

import "github.com/m04kA/SMC-StaffPortal/internal/service/bookings/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status  string  `json:"status"` // APPROVED | REJECTED | COMPLETED | CANCELLED
	Remarks *string `json:"remarks,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:  userID,
		Status:  r.Status,
		Remarks: r.Remarks,
	}
}
