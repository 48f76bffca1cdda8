package get_room_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	getRoomGrid "github.com/m04kA/SMC-StaffPortal/internal/usecase/get_room_grid"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidQuery = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и pendingStart=HH:MM"
	msgRoomNotFound = "комната не найдена"
)

type Handler struct {
	useCase GetRoomGridUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/grid
// Query params: date (required, YYYY-MM-DD), rooms (optional, comma separated),
// pendingRoom + pendingStart (optional, first click of a selection)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /rooms/grid - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("rooms"), query.Get("pendingRoom"), query.Get("pendingStart"))
	if err != nil {
		h.logger.Warn("GET /rooms/grid - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRoomGrid.ErrInvalidInput):
			h.logger.Warn("GET /rooms/grid - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getRoomGrid.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/grid - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/grid - Failed to build grid: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/grid - Grid built successfully: date=%s, rooms=%d", dateStr, len(result.Grid.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
