package calculate_meal_allowance

import "errors"

var (
	// ErrInvalidToggle возвращается, когда отметка ссылается на неизвестный день или приём пищи
	ErrInvalidToggle = errors.New("calculate_meal_allowance: invalid provided-meal toggle")
)
