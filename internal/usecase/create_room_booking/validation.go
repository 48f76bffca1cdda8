package create_room_booking

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/internal/service/occupancy"
)

// validateRequest валидирует входные данные запроса и нормализует комнаты
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	req.Purpose = strings.TrimSpace(req.Purpose)
	if req.Purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose is longer than %d", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if len(req.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room is required", ErrInvalidInput)
	}

	seen := make(map[domain.RoomType]struct{}, len(req.Rooms))
	rooms := make([]domain.RoomType, 0, len(req.Rooms))
	for _, r := range req.Rooms {
		room := r.Normalize()
		if room == "" {
			return fmt.Errorf("%w: empty room", ErrInvalidInput)
		}
		if _, dup := seen[room]; dup {
			continue
		}
		seen[room] = struct{}{}
		rooms = append(rooms, room)
	}
	req.Rooms = rooms

	if len(req.Schedules) == 0 {
		return fmt.Errorf("%w: at least one schedule is required", ErrInvalidInput)
	}
	if len(req.Schedules) > domain.MaxSchedulesPerBooking {
		return fmt.Errorf("%w: more than %d schedules", ErrInvalidInput, domain.MaxSchedulesPerBooking)
	}

	for i, s := range req.Schedules {
		if s.Date.IsZero() {
			return fmt.Errorf("%w: schedule %d: date is required", ErrInvalidInput, i)
		}
		if err := s.Start.Validate(); err != nil {
			return fmt.Errorf("%w: schedule %d: start: %v", ErrInvalidInput, i, err)
		}
		if err := s.End.Validate(); err != nil {
			return fmt.Errorf("%w: schedule %d: end: %v", ErrInvalidInput, i, err)
		}
		if s.End.Minutes() <= s.Start.Minutes() {
			return fmt.Errorf("%w: schedule %d: %s-%s", ErrInvalidTimeRange, i, s.Start, s.End)
		}
		if s.Participants <= 0 || s.Participants > domain.MaxParticipants {
			return fmt.Errorf("%w: schedule %d: participants must be in 1..%d", ErrInvalidInput, i, domain.MaxParticipants)
		}
	}

	return nil
}

// validateDates запрещает бронирование на прошедшие даты.
// Даты сравниваются как календарные дни в часовом поясе портала loc
func validateDates(schedules []ScheduleRequest, now time.Time, loc *time.Location) error {
	today := domain.DateOnly(now.In(loc))
	for i, s := range schedules {
		y, m, d := s.Date.Date()
		if time.Date(y, m, d, 0, 0, 0, 0, loc).Before(today) {
			return fmt.Errorf("%w: schedule %d: %s", ErrDateInPast, i, s.Date.Format(domain.DateFormat))
		}
	}
	return nil
}

// validateNoSelfOverlap интервалы одной заявки бронируют одни и те же комнаты,
// поэтому не должны пересекаться между собой
func validateNoSelfOverlap(schedules []ScheduleRequest) error {
	for i := 0; i < len(schedules); i++ {
		a := domain.TimeInterval{Date: schedules[i].Date, Start: schedules[i].Start, End: schedules[i].End}
		for j := i + 1; j < len(schedules); j++ {
			b := domain.TimeInterval{Date: schedules[j].Date, Start: schedules[j].Start, End: schedules[j].End}
			if domain.SameDay(a.Date, b.Date) && occupancy.IntervalsOverlap(a, b) {
				return fmt.Errorf("%w: schedules %d and %d on %s", ErrOverlappingSchedules, i, j, a.Date.Format(domain.DateFormat))
			}
		}
	}
	return nil
}

// validateCapacity проверяет, что каждая комната вмещает участников каждого расписания
func validateCapacity(rooms []*domain.Room, schedules []ScheduleRequest) error {
	maxParticipants := 0
	for _, s := range schedules {
		if s.Participants > maxParticipants {
			maxParticipants = s.Participants
		}
	}

	for _, room := range rooms {
		if !room.Fits(maxParticipants) {
			return fmt.Errorf("%w: room=%s capacity=%d participants=%d",
				ErrCapacityExceeded, room.Type, room.Capacity, maxParticipants)
		}
	}
	return nil
}

// dateBounds первая и последняя дата расписаний
func dateBounds(schedules []ScheduleRequest) (time.Time, time.Time) {
	dates := make([]time.Time, len(schedules))
	for i, s := range schedules {
		dates[i] = domain.DateOnly(s.Date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates[0], dates[len(dates)-1]
}
