package create_travel_request

import (
	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/travel/models"
	createTravelRequest "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_travel_request"
)

// CreateTravelRequest HTTP request model
type CreateTravelRequest struct {
	Destination   string           `json:"destination"`
	Purpose       string           `json:"purpose"`
	TransportMode string           `json:"transportMode"` // OFFICE_VEHICLE | OWN_VEHICLE | FLIGHT | PUBLIC
	VehiclePlate  *string          `json:"vehiclePlate,omitempty"`
	Start         string           `json:"start"`
	End           string           `json:"end"`
	MealDays      []domain.MealDay `json:"mealDays,omitempty"` // берутся только отметки provided
}

// ToUseCaseRequest конвертирует HTTP request в usecase request
func (r *CreateTravelRequest) ToUseCaseRequest(userID int64) *createTravelRequest.Request {
	return &createTravelRequest.Request{
		UserID:        userID,
		Destination:   r.Destination,
		Purpose:       r.Purpose,
		TransportMode: domain.TransportMode(r.TransportMode),
		VehiclePlate:  r.VehiclePlate,
		Start:         r.Start,
		End:           r.End,
		Provided:      r.MealDays,
	}
}

// FromUseCaseResponse конвертирует usecase response в общий DTO заявки
func FromUseCaseResponse(resp *createTravelRequest.Response) *models.TravelRequestResponse {
	return models.FromDomainTravelRequest(&domain.TravelRequest{
		ID:             resp.ID,
		UserID:         resp.UserID,
		Destination:    resp.Destination,
		Purpose:        resp.Purpose,
		TransportMode:  resp.TransportMode,
		VehiclePlate:   resp.VehiclePlate,
		StartAt:        resp.StartAt,
		EndAt:          resp.EndAt,
		MealDays:       resp.MealDays,
		AllowanceTotal: resp.AllowanceTotal,
		Status:         domain.BookingStatus(resp.Status),
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.CreatedAt,
	})
}
