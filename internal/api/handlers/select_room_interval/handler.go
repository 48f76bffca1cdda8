package select_room_interval

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	selectRoomInterval "github.com/m04kA/SMC-StaffPortal/internal/usecase/select_room_interval"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные дата, комната или слот"
	msgRoomNotFound       = "комната не найдена"
)

type Handler struct {
	useCase SelectRoomIntervalUseCase
	logger  Logger
}

func NewHandler(useCase SelectRoomIntervalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms/grid/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms/grid/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rooms/grid/select - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectRoomInterval.ErrInvalidInput):
			h.logger.Warn("POST /rooms/grid/select - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, selectRoomInterval.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/grid/select - Room not found: room=%s", req.Room)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("POST /rooms/grid/select - Failed to apply click: room=%s, error=%v", req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/grid/select - room=%s, slot=%s, outcome=%s", req.Room, req.Slot, result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
