package create_room_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffPortal/internal/api/handlers"
	"github.com/m04kA/SMC-StaffPortal/internal/api/middleware"
	createRoomBooking "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_room_booking"
)

const (
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidSchedule      = "некорректное расписание, ожидается date=YYYY-MM-DD и время HH:MM"
	msgInvalidInput         = "некорректные данные бронирования"
	msgInvalidTimeRange     = "время окончания должно быть позже времени начала"
	msgDateInPast           = "нельзя бронировать на прошедшую дату"
	msgOverlappingSchedules = "интервалы заявки пересекаются между собой"
	msgRoomNotFound         = "комната не найдена"
	msgCapacityExceeded     = "число участников превышает вместимость комнаты"
	msgSlotNotAvailable     = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateRoomBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateRoomBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/room-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /room-bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRoomBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /room-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /room-bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSchedule)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createRoomBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /room-bookings - Slot not available: user_id=%d, %v", userID, conflict)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:      msgSlotNotAvailable,
				Room:       string(conflict.Room),
				Date:       conflict.Date,
				BookingID:  conflict.BookingID,
				ScheduleID: conflict.ScheduleID,
			})

		case errors.Is(err, createRoomBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /room-bookings - Slot not available: user_id=%d, %v", userID, err)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createRoomBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /room-bookings - Invalid time range: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createRoomBooking.ErrDateInPast):
			h.logger.Warn("POST /room-bookings - Date in past: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createRoomBooking.ErrOverlappingSchedules):
			h.logger.Warn("POST /room-bookings - Overlapping schedules: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgOverlappingSchedules)

		case errors.Is(err, createRoomBooking.ErrRoomNotFound):
			h.logger.Warn("POST /room-bookings - Room not found: user_id=%d, rooms=%v", userID, req.Rooms)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createRoomBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /room-bookings - Capacity exceeded: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createRoomBooking.ErrInvalidInput):
			h.logger.Warn("POST /room-bookings - Invalid input: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /room-bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /room-bookings - Booking created successfully: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
