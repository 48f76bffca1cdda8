package calculate_meal_allowance

import (
	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	calculateMealAllowance "github.com/m04kA/SMC-StaffPortal/internal/usecase/calculate_meal_allowance"
)

// CalculateRequest HTTP request model. Даты принимаются в любом формате формы
type CalculateRequest struct {
	Start    string           `json:"start"`
	End      string           `json:"end"`
	Previous []domain.MealDay `json:"previous,omitempty"`
	Toggle   *ToggleRequest   `json:"toggle,omitempty"`
}

type ToggleRequest struct {
	Date     string `json:"date"`
	Meal     string `json:"meal"` // breakfast | lunch | dinner
	Provided bool   `json:"provided"`
}

// AllowanceResponse HTTP response model
type AllowanceResponse struct {
	Days  []domain.MealDay `json:"days"`
	Total int              `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP request в usecase request
func (r *CalculateRequest) ToUseCaseRequest() *calculateMealAllowance.Request {
	req := &calculateMealAllowance.Request{
		Start:    r.Start,
		End:      r.End,
		Previous: r.Previous,
	}

	if r.Toggle != nil {
		req.Toggle = &calculateMealAllowance.Toggle{
			Date:     r.Toggle.Date,
			Meal:     domain.Meal(r.Toggle.Meal),
			Provided: r.Toggle.Provided,
		}
	}

	return req
}

// FromUseCaseResponse конвертирует usecase response в HTTP response
func FromUseCaseResponse(resp *calculateMealAllowance.Response) *AllowanceResponse {
	days := resp.Days
	if days == nil {
		days = []domain.MealDay{}
	}
	return &AllowanceResponse{
		Days:  days,
		Total: resp.Total,
	}
}
