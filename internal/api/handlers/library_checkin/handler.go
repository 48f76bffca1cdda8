package library_checkin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	"github.com/m04kA/SMC-StaffPortal/internal/api/middleware"
	"github.com/m04kA/SMC-StaffPortal/internal/service/library"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "книга не найдена"
	msgNotBorrowed        = "книга не выдавалась"
)

type Handler struct {
	service LibraryService
	logger  Logger
}

func NewHandler(service LibraryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/library/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /library/checkin - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ScanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /library/checkin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	loan, err := h.service.CheckIn(r.Context(), req.Token, userID)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrBookNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, library.ErrNotBorrowed):
			handlers.RespondConflict(w, msgNotBorrowed)

		case errors.Is(err, library.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /library/checkin - Failed to check in: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /library/checkin - Book returned: book_id=%d, overdue=%t", loan.BookID, loan.Overdue)
	handlers.RespondJSON(w, http.StatusOK, loan)
}
