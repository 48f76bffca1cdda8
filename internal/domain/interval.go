package domain

import (
	"time"

	"github.com/m04kA/SMC-StaffPortal/pkg/types"
)

// TimeInterval полуоткрытый интервал [Start, End) внутри одних суток
type TimeInterval struct {
	Date  time.Time
	Start types.TimeString
	End   types.TimeString
}

// IsValid true, если оба конца корректны и Start < End
func (i TimeInterval) IsValid() bool {
	s, e := i.Start.Minutes(), i.End.Minutes()
	return s != types.InvalidMinutes && e != types.InvalidMinutes && s < e
}

// Contains true, если момент t (минуты с полуночи) попадает в [Start, End)
func (i TimeInterval) Contains(t int) bool {
	if !i.IsValid() {
		return false
	}
	return i.Start.Minutes() <= t && t < i.End.Minutes()
}

// Overlaps два полуоткрытых интервала пересекаются, если s1 < e2 && s2 < e1.
// Соприкасающиеся интервалы (e1 == s2) не пересекаются. Даты не сравниваются
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Minutes() < other.End.Minutes() && other.Start.Minutes() < i.End.Minutes()
}

// SameDay true, если обе даты приходятся на один календарный день
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly обнуляет время, сохраняя локацию
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
