package get_travel_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	"github.com/m04kA/SMC-StaffPortal/internal/service/travel"
)

const (
	msgInvalidRequestID = "некорректный ID заявки"
	msgNotFound         = "заявка не найдена"
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

// Handle GET /api/v1/travel-requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /travel-requests/{id} - Invalid request ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	resp, err := h.service.GetByID(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, travel.ErrRequestNotFound):
			h.logger.Warn("GET /travel-requests/{id} - Request not found: request_id=%d", requestID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /travel-requests/{id} - Failed to get request: request_id=%d, error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
