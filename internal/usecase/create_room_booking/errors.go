package create_room_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_room_booking: invalid input data")

	// ErrInvalidTimeRange возвращается, когда конец интервала не позже начала
	ErrInvalidTimeRange = errors.New("create_room_booking: end time must be after start time")

	// ErrDateInPast возвращается при бронировании на прошедшую дату
	ErrDateInPast = errors.New("create_room_booking: date is in the past")

	// ErrOverlappingSchedules возвращается, когда интервалы одной заявки пересекаются между собой
	ErrOverlappingSchedules = errors.New("create_room_booking: schedules overlap each other")

	// ErrRoomNotFound возвращается, когда комната не найдена в справочнике
	ErrRoomNotFound = errors.New("create_room_booking: room not found")

	// ErrCapacityExceeded возвращается, когда участников больше вместимости комнаты
	ErrCapacityExceeded = errors.New("create_room_booking: room capacity exceeded")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_room_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_room_booking: internal error")
)

// ConflictError описывает, с каким бронированием пересёкся интервал.
// errors.Is(err, ErrSlotNotAvailable) == true
type ConflictError struct {
	Room       domain.RoomType
	Date       string
	Start      types.TimeString
	End        types.TimeString
	BookingID  int64
	ScheduleID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: room=%s date=%s %s-%s overlaps booking id=%d schedule id=%d",
		ErrSlotNotAvailable, e.Room, e.Date, e.Start, e.End, e.BookingID, e.ScheduleID)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
