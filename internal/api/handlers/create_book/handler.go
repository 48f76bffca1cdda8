package create_book

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	"github.com/m04kA/SMC-StaffPortal/internal/service/library"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "название и автор обязательны"
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

// Handle POST /api/v1/books
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req library.CreateBookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /books - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	book, err := h.service.CreateBook(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, library.ErrInvalidInput):
			h.logger.Warn("POST /books - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /books - Failed to create book: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /books - Book created successfully: book_id=%d", book.ID)
	handlers.RespondJSON(w, http.StatusCreated, book)
}
