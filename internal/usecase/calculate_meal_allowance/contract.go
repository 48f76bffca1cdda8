package calculate_meal_allowance

import "github.com/m04kA/SMC-StaffPortal/internal/domain"

// Calculator пересчёт дней поездки (allowance.Calculator)
type Calculator interface {
	Recompute(start, end string, previous []domain.MealDay) []domain.MealDay
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
