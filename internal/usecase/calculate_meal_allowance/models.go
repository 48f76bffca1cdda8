package calculate_meal_allowance

import "github.com/m04kA/SMC-StaffPortal/internal/domain"

// Request строки дат из формы и дни из предыдущего расчёта
type Request struct {
	Start    string
	End      string
	Previous []domain.MealDay
	Toggle   *Toggle // отметка "питание предоставлено" после пересчёта (опционально)
}

// Toggle изменение флага provided одного приёма пищи
type Toggle struct {
	Date     string // YYYY-MM-DD
	Meal     domain.Meal
	Provided bool
}

// Response пересчитанные дни и итоговая сумма
type Response struct {
	Days  []domain.MealDay
	Total int
}
