// Package occupancy определяет занятость комнат по сетке 30-минутных слотов
// и проверяет новые интервалы на пересечение с уже забронированными.
// Пакет не делает I/O: на вход приходят уже загруженные бронирования.
package occupancy

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// Occupant интервал, занимающий комнату, с привязкой к бронированию
type Occupant struct {
	BookingID  int64
	ScheduleID int64
	UserID     int64
	Purpose    string
	Status     domain.BookingStatus
	Room       domain.RoomType
	Interval   domain.TimeInterval
}

// TimeToMinutes "HH:MM" -> минуты с полуночи, types.InvalidMinutes для некорректной строки
func TimeToMinutes(s string) int {
	return types.TimeString(s).Minutes()
}

// IntervalsOverlap пересечение полуоткрытых интервалов: s1 < e2 && s2 < e1
func IntervalsOverlap(a, b domain.TimeInterval) bool {
	return a.Overlaps(b)
}

// OccupantsFor собирает интервалы комнаты на день из бронирований.
// Отклонённые и отменённые бронирования не учитываются. Порядок - порядок входа
func OccupantsFor(room domain.RoomType, day time.Time, bookings []*domain.RoomBooking) []Occupant {
	result := make([]Occupant, 0)

	for _, booking := range bookings {
		if booking == nil || !booking.IsOccupying() || !booking.HasRoom(room) {
			continue
		}

		for _, schedule := range booking.Schedules {
			if !domain.SameDay(schedule.Date, day) {
				continue
			}
			result = append(result, Occupant{
				BookingID:  booking.ID,
				ScheduleID: schedule.ID,
				UserID:     booking.UserID,
				Purpose:    booking.Purpose,
				Status:     booking.Status,
				Room:       room,
				Interval:   schedule.Interval(),
			})
		}
	}

	return result
}

// IsSlotOccupied ищет интервал, содержащий момент instant (s <= t < e).
// При нескольких совпадениях побеждает первое по порядку входа
func IsSlotOccupied(instant int, occupants []Occupant) (Occupant, bool) {
	for _, occ := range occupants {
		if occ.Interval.Contains(instant) {
			return occ, true
		}
	}
	return Occupant{}, false
}

// matchCount количество интервалов, содержащих instant. Больше одного - данные противоречивы
func matchCount(instant int, occupants []Occupant) int {
	count := 0
	for _, occ := range occupants {
		if occ.Interval.Contains(instant) {
			count++
		}
	}
	return count
}
