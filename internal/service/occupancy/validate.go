package occupancy

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// Verdict результат проверки предлагаемого интервала
type Verdict string

const (
	VerdictOK           Verdict = "ok"
	VerdictInvalidRange Verdict = "invalid_range" // end <= start или некорректное время
	VerdictConflict     Verdict = "conflict"
)

// Validation результат ValidateProposedInterval
type Validation struct {
	Verdict  Verdict
	Conflict *Occupant // заполнен при VerdictConflict
}

// OK true, если интервал можно бронировать
func (v Validation) OK() bool {
	return v.Verdict == VerdictOK
}

// ValidateProposedInterval проверяет интервал [start, end) для комнаты на день.
// Нулевая или отрицательная длительность отклоняется всегда.
// Учитываются только интервалы той же комнаты в тот же день
func ValidateProposedInterval(
	room domain.RoomType,
	day time.Time,
	start, end types.TimeString,
	existing []Occupant,
) Validation {
	proposed := domain.TimeInterval{Date: day, Start: start, End: end}
	if !proposed.IsValid() {
		return Validation{Verdict: VerdictInvalidRange}
	}

	for i := range existing {
		occ := existing[i]
		if occ.Room != room || !domain.SameDay(occ.Interval.Date, day) {
			continue
		}
		if IntervalsOverlap(proposed, occ.Interval) {
			return Validation{Verdict: VerdictConflict, Conflict: &occ}
		}
	}

	return Validation{Verdict: VerdictOK}
}
