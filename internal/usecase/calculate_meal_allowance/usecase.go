package calculate_meal_allowance

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StaffPortal/internal/service/allowance"
)

// UseCase пересчёт суточных при изменении дат поездки
type UseCase struct {
	calculator Calculator
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(calculator Calculator, logger Logger) *UseCase {
	return &UseCase{
		calculator: calculator,
		logger:     logger,
	}
}

// Execute пересчитывает дни. Неразобранные или перевёрнутые даты дают пустой результат без ошибки
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	days := uc.calculator.Recompute(req.Start, req.End, req.Previous)

	if req.Toggle != nil {
		toggled, err := allowance.Toggle(days, req.Toggle.Date, req.Toggle.Meal, req.Toggle.Provided)
		if err != nil {
			uc.logger.Warn("CalculateMealAllowance: toggle date=%s meal=%s: %v", req.Toggle.Date, req.Toggle.Meal, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidToggle, err)
		}
		days = toggled
	}

	total := allowance.Total(days)

	uc.logger.Info("CalculateMealAllowance: start=%q, end=%q, days=%d, total=%d", req.Start, req.End, len(days), total)

	return &Response{Days: days, Total: total}, nil
}
