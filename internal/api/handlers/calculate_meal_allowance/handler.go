package calculate_meal_allowance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	calculateMealAllowance "github.com/m04kA/SMC-StaffPortal/internal/usecase/calculate_meal_allowance"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidToggle      = "отметка ссылается на день вне поездки или неизвестный приём пищи"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/travel/meal-allowance
// Некорректные даты не считаются ошибкой: ответ с пустым списком дней и нулевой суммой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /travel/meal-allowance - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, calculateMealAllowance.ErrInvalidToggle):
			h.logger.Warn("POST /travel/meal-allowance - Invalid toggle: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToggle)

		default:
			h.logger.Error("POST /travel/meal-allowance - Failed to calculate: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
