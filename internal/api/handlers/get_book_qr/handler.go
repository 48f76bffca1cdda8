package get_book_qr

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	"github.com/m04kA/SMC-StaffPortal/internal/service/library"
)

const (
	msgInvalidBookID = "некорректный ID книги"
	msgNotFound      = "книга не найдена"
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

// Handle GET /api/v1/books/{bookId}/qr
// Отдаёт PNG этикетку с токеном книги
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookID, err := strconv.ParseInt(mux.Vars(r)["bookId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /books/{id}/qr - Invalid book ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookID)
		return
	}

	png, err := h.service.QRCode(r.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrBookNotFound):
			h.logger.Warn("GET /books/{id}/qr - Book not found: book_id=%d", bookID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /books/{id}/qr - Failed to render QR code: book_id=%d, error=%v", bookID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
