package update_travel_request_status

import "github.com/m04kA/SMC-StaffPortal/internal/service/travel/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status  string  `json:"status"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *UpdateStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID:  userID,
		Status:  r.Status,
		Remarks: r.Remarks,
	}
}
