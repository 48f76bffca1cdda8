package models

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
)

// UpdateStatusRequest запрос на смену статуса заявки
type UpdateStatusRequest struct {
	UserID  int64   `json:"userId"`
	Status  string  `json:"status"`
	Remarks *string `json:"remarks,omitempty"`
}

// TravelRequestResponse ответ с данными заявки
type TravelRequestResponse struct {
	ID             int64            `json:"id"`
	UserID         int64            `json:"userId"`
	Destination    string           `json:"destination"`
	Purpose        string           `json:"purpose"`
	TransportMode  string           `json:"transportMode"`
	VehiclePlate   *string          `json:"vehiclePlate,omitempty"`
	StartAt        time.Time        `json:"startAt"`
	EndAt          time.Time        `json:"endAt"`
	MealDays       []domain.MealDay `json:"mealDays"`
	AllowanceTotal int              `json:"allowanceTotal"`
	Status         string           `json:"status"`
	Remarks        *string          `json:"remarks,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// FromDomainTravelRequest конвертирует domain модель в DTO
func FromDomainTravelRequest(r *domain.TravelRequest) *TravelRequestResponse {
	if r == nil {
		return nil
	}

	mealDays := r.MealDays
	if mealDays == nil {
		mealDays = []domain.MealDay{}
	}

	return &TravelRequestResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		Destination:    r.Destination,
		Purpose:        r.Purpose,
		TransportMode:  string(r.TransportMode),
		VehiclePlate:   r.VehiclePlate,
		StartAt:        r.StartAt,
		EndAt:          r.EndAt,
		MealDays:       mealDays,
		AllowanceTotal: r.AllowanceTotal,
		Status:         string(r.Status),
		Remarks:        r.Remarks,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
