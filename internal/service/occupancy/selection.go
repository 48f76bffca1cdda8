package occupancy

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// Outcome результат клика по слоту
type Outcome string

const (
	OutcomePending   Outcome = "pending"   // выбран первый слот
	OutcomeProposed  Outcome = "proposed"  // интервал выбран и свободен
	OutcomeRejected  Outcome = "rejected"  // интервал пересекается с существующим
	OutcomeCancelled Outcome = "cancelled" // второй слот не позже первого
)

// Proposal выбранный интервал для формы бронирования
type Proposal struct {
	Room  domain.RoomType
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
}

// ClickResult что произошло после клика
type ClickResult struct {
	Outcome  Outcome
	Proposal *Proposal
	Conflict *Occupant
}

// Selection состояние выбора двумя кликами. Нулевое значение - Idle
type Selection struct {
	pending bool
	room    domain.RoomType
	date    time.Time
	start   types.TimeString
}

// IsIdle true, если первый клик не сделан
func (s Selection) IsIdle() bool {
	return !s.pending
}

// PendingFor возвращает ожидающее начало для комнаты
func (s Selection) PendingFor(room domain.RoomType) (types.TimeString, bool) {
	if !s.pending || s.room != room {
		return "", false
	}
	return s.start, true
}

// Click обрабатывает клик по слоту комнаты и возвращает новое состояние.
// existing - занятые интервалы этой комнаты на этот день.
// Клик по другой комнате (или дню) сбрасывает выбор и начинает новый
func (s Selection) Click(room domain.RoomType, day time.Time, slot types.TimeString, existing []Occupant) (Selection, ClickResult) {
	if !s.pending || s.room != room || !domain.SameDay(s.date, day) {
		return Selection{pending: true, room: room, date: day, start: slot}, ClickResult{Outcome: OutcomePending}
	}

	if slot.Minutes() <= s.start.Minutes() {
		return Selection{}, ClickResult{Outcome: OutcomeCancelled}
	}

	validation := ValidateProposedInterval(room, day, s.start, slot, existing)
	if !validation.OK() {
		return Selection{}, ClickResult{Outcome: OutcomeRejected, Conflict: validation.Conflict}
	}

	return Selection{}, ClickResult{
		Outcome: OutcomeProposed,
		Proposal: &Proposal{
			Room:  room,
			Date:  domain.DateOnly(day),
			Start: s.start,
			End:   slot,
		},
	}
}
