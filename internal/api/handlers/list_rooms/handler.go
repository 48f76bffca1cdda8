package list_rooms

import (
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
)

type Handler struct {
	repo   RoomRepository
	logger Logger
}

func NewHandler(repo RoomRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// Handle GET /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(rooms))
	handlers.RespondJSON(w, http.StatusOK, FromDomainRooms(rooms))
}
