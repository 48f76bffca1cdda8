package create_travel_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	"github.com/m04kA/SMC-StaffPortal/internal/api/middleware"
	createTravelRequest "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_travel_request"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные заявки"
	msgInvalidRange       = "некорректные даты поездки"
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

// Handle POST /api/v1/travel-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /travel-requests - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTravelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /travel-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createTravelRequest.ErrInvalidRange):
			h.logger.Warn("POST /travel-requests - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createTravelRequest.ErrInvalidInput):
			h.logger.Warn("POST /travel-requests - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /travel-requests - Failed to create request: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /travel-requests - Request created successfully: request_id=%d, user_id=%d, total=%d",
		resp.ID, userID, resp.AllowanceTotal)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
