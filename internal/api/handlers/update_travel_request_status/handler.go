package update_travel_request_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	"github.com/m04kA/SMC-StaffPortal/internal/api/middleware"
	"github.com/m04kA/SMC-StaffPortal/internal/service/travel"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestID   = "некорректный ID заявки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус заявки"
	msgNotFound           = "заявка не найдена"
	msgInvalidTransition  = "недопустимая смена статуса"
)

type Handler struct {
	service TravelService
	logger  Logger
}

func NewHandler(service TravelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/travel-requests/{requestId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /travel-requests/{id}/status - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /travel-requests/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), requestID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, travel.ErrRequestNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, travel.ErrInvalidTransition):
			h.logger.Warn("PATCH /travel-requests/{id}/status - %v", err)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, travel.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /travel-requests/{id}/status - Failed to update status: request_id=%d, error=%v",
				requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /travel-requests/{id}/status - Status updated: request_id=%d, status=%s, by user_id=%d",
		requestID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
