package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// BookingStatus represents the status of a room booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusApproved  BookingStatus = "APPROVED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// RoomBooking represents a room booking request with its schedules
type RoomBooking struct {
	ID            int64
	UserID        int64
	Purpose       string
	SelectedRooms []RoomType
	Schedules     []Schedule
	Status        BookingStatus
	Remarks       *string // комментарий администратора при одобрении/отклонении

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Schedule один интервал бронирования [StartTime, EndTime) в дату Date
type Schedule struct {
	ID           int64
	BookingID    int64
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Participants int

	// Заказ кофе-брейков и обеда
	MorningTea   bool
	Lunch        bool
	AfternoonTea bool
}

// Interval возвращает временной интервал расписания
func (s Schedule) Interval() TimeInterval {
	return TimeInterval{Date: s.Date, Start: s.StartTime, End: s.EndTime}
}

// IsOccupying true, если бронирование занимает комнаты (не отклонено и не отменено)
func (b *RoomBooking) IsOccupying() bool {
	return b.Status.IsOccupying()
}

// IsOccupying true для статусов, учитываемых при проверке пересечений
func (s BookingStatus) IsOccupying() bool {
	return s != StatusRejected && s != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *RoomBooking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// HasRoom true, если комната входит в набор выбранных
func (b *RoomBooking) HasRoom(room RoomType) bool {
	for _, r := range b.SelectedRooms {
		if r == room {
			return true
		}
	}
	return false
}

// CanTransitionTo проверяет допустимость перехода статуса на экране согласования
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID          *int64         // Только бронирования пользователя (опционально)
	Room            *RoomType      // Только бронирования, включающие комнату (опционально)
	StartDate       *time.Time     // Начало периода по датам расписаний (опционально)
	EndDate         *time.Time     // Конец периода по датам расписаний (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отклонённые и отменённые
}

// ParseBookingStatus разбирает статус без учёта регистра и пробелов
func ParseBookingStatus(value string) (BookingStatus, bool) {
	s := BookingStatus(strings.ToUpper(strings.TrimSpace(value)))
	for _, valid := range AllStatuses {
		if s == valid {
			return s, true
		}
	}
	return "", false
}
