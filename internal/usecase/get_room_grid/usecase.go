package get_room_grid

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
)

// UseCase use case построения сетки занятости комнат на день
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

// Execute строит сетку: 48 слотов на каждую комнату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomGrid: date=%s, rooms=%v", req.Date.Format(domain.DateFormat), req.Rooms)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if (req.PendingRoom == nil) != (req.PendingStart == nil) {
		return nil, fmt.Errorf("%w: pending room and start must be set together", ErrInvalidInput)
	}
	if req.PendingStart != nil && req.PendingStart.Validate() != nil {
		return nil, fmt.Errorf("%w: pending start %q", ErrInvalidInput, *req.PendingStart)
	}

	// 2. Получаем комнаты
	rooms, err := uc.loadRooms(ctx, req.Rooms)
	if err != nil {
		return nil, err
	}

	// 3. Получаем активные бронирования на дату
	date := domain.DateOnly(req.Date)
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("GetRoomGrid: failed to get bookings for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Восстанавливаем незавершённый выбор
	var selection occupancy.Selection
	if req.PendingRoom != nil {
		room := req.PendingRoom.Normalize()
		selection, _ = selection.Click(room, date, *req.PendingStart, occupancy.OccupantsFor(room, date, bookings))
	}

	// 5. Строим сетку
	grid := occupancy.BuildGrid(date, rooms, bookings, selection)

	ambiguous := grid.AmbiguousCells()
	if ambiguous > 0 {
		uc.logger.Warn("GetRoomGrid: %d cells match more than one stored interval on %s, first match is shown",
			ambiguous, date.Format(domain.DateFormat))
	}

	uc.logger.Info("GetRoomGrid: built grid for %d rooms from %d bookings", len(grid.Rows), len(bookings))

	return &Response{Grid: grid, AmbiguousCells: ambiguous}, nil
}

func (uc *UseCase) loadRooms(ctx context.Context, types []domain.RoomType) ([]*domain.Room, error) {
	if len(types) == 0 {
		rooms, err := uc.roomRepo.List(ctx)
		if err != nil {
			uc.logger.Error("GetRoomGrid: failed to list rooms: %v", err)
			return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
		}
		return rooms, nil
	}

	normalized := make([]domain.RoomType, len(types))
	for i, t := range types {
		normalized[i] = t.Normalize()
	}

	rooms, err := uc.roomRepo.GetByTypes(ctx, normalized)
	if err != nil {
		uc.logger.Error("GetRoomGrid: failed to get rooms %v: %v", normalized, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	if missing := missingRooms(normalized, rooms); len(missing) > 0 {
		uc.logger.Warn("GetRoomGrid: unknown rooms %v", missing)
		return nil, fmt.Errorf("%w: %v", ErrRoomNotFound, missing)
	}

	return rooms, nil
}

func missingRooms(requested []domain.RoomType, found []*domain.Room) []domain.RoomType {
	known := make(map[domain.RoomType]struct{}, len(found))
	for _, r := range found {
		known[r.Type] = struct{}{}
	}

	missing := make([]domain.RoomType, 0)
	for _, t := range requested {
		if _, ok := known[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}
