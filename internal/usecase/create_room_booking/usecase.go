package create_room_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	roomBookingRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/roombooking"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
	"github.com/m04kA/SMC-StaffPortal/pkg/txmanager"
)

// UseCase use case для создания бронирования комнат
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	conflicts    ConflictCounter
	timeProvider TimeProvider
	loc          *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. conflicts может быть nil.
// loc - часовой пояс портала, в нём определяется "сегодня"
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	conflicts ConflictCounter,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if conflicts == nil {
		conflicts = nopCounter{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		conflicts:    conflicts,
		timeProvider: &RealTimeProvider{},
		loc:          loc,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка пересечений и вставка идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRoomBooking: user=%d, rooms=%v, schedules=%d", req.UserID, req.Rooms, len(req.Schedules))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateRoomBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateDates(req.Schedules, uc.timeProvider.Now(), uc.loc); err != nil {
		uc.logger.Warn("CreateRoomBooking: date validation failed: %v", err)
		return nil, err
	}

	if err := validateNoSelfOverlap(req.Schedules); err != nil {
		uc.logger.Warn("CreateRoomBooking: %v", err)
		return nil, err
	}

	// 2. Проверяем комнаты и вместимость
	rooms, err := uc.roomRepo.GetByTypes(ctx, req.Rooms)
	if err != nil {
		uc.logger.Error("CreateRoomBooking: failed to get rooms %v: %v", req.Rooms, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}
	if len(rooms) != len(req.Rooms) {
		uc.logger.Warn("CreateRoomBooking: some of rooms %v not found", req.Rooms)
		return nil, fmt.Errorf("%w: %v", ErrRoomNotFound, req.Rooms)
	}

	if err := validateCapacity(rooms, req.Schedules); err != nil {
		uc.logger.Warn("CreateRoomBooking: %v", err)
		return nil, err
	}

	var result *domain.RoomBooking

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Активные бронирования за период с блокировкой (FOR UPDATE)
		from, to := dateBounds(req.Schedules)
		existing, err := uc.bookingRepo.GetByFilter(txCtx, domain.BookingsFilter{
			StartDate: &from,
			EndDate:   &to,
		})
		if err != nil {
			if errors.Is(err, txmanager.ErrSerialization) {
				return err
			}
			uc.logger.Error("CreateRoomBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.2. Каждый интервал проверяется для каждой выбранной комнаты
		for _, s := range req.Schedules {
			for _, room := range req.Rooms {
				occupants := occupancy.OccupantsFor(room, s.Date, existing)
				validation := occupancy.ValidateProposedInterval(room, s.Date, s.Start, s.End, occupants)
				if validation.Verdict == occupancy.VerdictInvalidRange {
					return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, s.Start, s.End)
				}
				if validation.Verdict == occupancy.VerdictConflict {
					conflict := &ConflictError{
						Room:       room,
						Date:       s.Date.Format(domain.DateFormat),
						Start:      s.Start,
						End:        s.End,
						BookingID:  validation.Conflict.BookingID,
						ScheduleID: validation.Conflict.ScheduleID,
					}
					uc.logger.Warn("CreateRoomBooking: %v", conflict)
					return conflict
				}
			}
		}

		// 3.3. Сохраняем бронирование
		booking := &domain.RoomBooking{
			UserID:        req.UserID,
			Purpose:       req.Purpose,
			SelectedRooms: req.Rooms,
			Schedules:     toSchedules(req.Schedules),
			Status:        domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, roomBookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateRoomBooking: rejected by occupancy constraint: %v", err)
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			}
			if errors.Is(err, txmanager.ErrSerialization) {
				return err
			}
			uc.logger.Error("CreateRoomBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Повторы исчерпаны: конкурентная заявка заняла тот же интервал
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateRoomBooking: concurrent booking, serialization retries exhausted: %v", err)
			err = fmt.Errorf("%w: concurrent booking of the same interval: %v", ErrSlotNotAvailable, err)
		}
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.conflicts.Inc()
		}
		return nil, err
	}

	uc.logger.Info("CreateRoomBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		UserID:    result.UserID,
		Purpose:   result.Purpose,
		Rooms:     result.SelectedRooms,
		Schedules: result.Schedules,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}

func toSchedules(requests []ScheduleRequest) []domain.Schedule {
	schedules := make([]domain.Schedule, len(requests))
	for i, s := range requests {
		schedules[i] = domain.Schedule{
			Date:         domain.DateOnly(s.Date),
			StartTime:    s.Start,
			EndTime:      s.End,
			Participants: s.Participants,
			MorningTea:   s.MorningTea,
			Lunch:        s.Lunch,
			AfternoonTea: s.AfternoonTea,
		}
	}
	return schedules
}
