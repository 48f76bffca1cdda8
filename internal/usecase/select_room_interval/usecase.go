package select_room_interval

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	roomRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/room"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
	"github.com/m04kA/SMC-StaffPortal/pkg/ptr"
)

// UseCase выбор интервала двумя кликами по сетке.
// Сервер не хранит состояние: клиент присылает слот первого клика вместе со вторым
type UseCase struct {
	roomRepo    RoomRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute применяет клик к состоянию выбора
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	room := req.Room.Normalize()
	date := domain.DateOnly(req.Date)

	uc.logger.Info("SelectRoomInterval: room=%s, date=%s, slot=%s, pending=%v",
		room, date.Format(domain.DateFormat), req.Slot, req.PendingStart != nil)

	// 1. Валидация входных данных
	if room == "" || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: room and date are required", ErrInvalidInput)
	}
	if err := req.Slot.Validate(); err != nil {
		return nil, fmt.Errorf("%w: slot: %v", ErrInvalidInput, err)
	}
	if req.PendingStart != nil {
		if err := req.PendingStart.Validate(); err != nil {
			return nil, fmt.Errorf("%w: pending start: %v", ErrInvalidInput, err)
		}
	}

	// 2. Проверяем комнату
	if _, err := uc.roomRepo.GetByType(ctx, room); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("SelectRoomInterval: room=%s not found", room)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("SelectRoomInterval: failed to get room=%s: %v", room, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 3. Занятость комнаты на дату
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		Room:      &room,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("SelectRoomInterval: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}
	occupants := occupancy.OccupantsFor(room, date, bookings)

	// 4. Восстанавливаем состояние и применяем клик
	var selection occupancy.Selection
	if req.PendingStart != nil {
		selection, _ = selection.Click(room, date, *req.PendingStart, occupants)
	}

	next, result := selection.Click(room, date, req.Slot, occupants)

	resp := &Response{
		Outcome:  result.Outcome,
		Proposal: result.Proposal,
		Conflict: result.Conflict,
	}
	if start, ok := next.PendingFor(room); ok {
		resp.PendingStart = ptr.Ptr(start)
	}

	if result.Outcome == occupancy.OutcomeRejected && result.Conflict != nil {
		uc.logger.Warn("SelectRoomInterval: room=%s interval conflicts with booking id=%d schedule id=%d",
			room, result.Conflict.BookingID, result.Conflict.ScheduleID)
	}

	uc.logger.Info("SelectRoomInterval: outcome=%s", result.Outcome)
	return resp, nil
}
