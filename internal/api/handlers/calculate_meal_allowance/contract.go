package calculate_meal_allowance

import (
	"context"

	calculateMealAllowance "github.com/m04kA/SMC-StaffPortal/internal/usecase/calculate_meal_allowance"
)

type UseCase interface {
	Execute(ctx context.Context, req *calculateMealAllowance.Request) (*calculateMealAllowance.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
