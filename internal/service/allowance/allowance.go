// Package allowance считает суточные на питание по датам командировки.
package allowance

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffPortal/internal/domain"
	"github.com/m04kA/SMC-StaffPortal/pkg/datetime"
)

// Окна приёмов пищи, минуты с полуночи.
// Завтрак и ужин проверяются точкой, обед - диапазоном
const (
	BreakfastAt   = 9 * 60
	LunchFrom     = 12 * 60
	LunchTo       = 14 * 60
	DinnerAt      = 19*60 + 30
	MaxTravelDays = 366
)

// Ставки в ринггитах
const (
	BreakfastRate = 20
	LunchRate     = 30
	DinnerRate    = 30
)

var (
	// ErrStartEmpty дата начала не введена
	ErrStartEmpty = errors.New("allowance: start is empty")

	// ErrEndEmpty дата окончания не введена
	ErrEndEmpty = errors.New("allowance: end is empty")

	// ErrUnparseable дату не удалось разобрать
	ErrUnparseable = errors.New("allowance: unparseable date")

	// ErrInvertedRange окончание раньше начала
	ErrInvertedRange = errors.New("allowance: end is before start")

	// ErrRangeTooLong поездка длиннее MaxTravelDays
	ErrRangeTooLong = errors.New("allowance: travel range is too long")

	// ErrDayNotFound день отсутствует в списке
	ErrDayNotFound = errors.New("allowance: day not found")

	// ErrInvalidMeal неизвестный приём пищи
	ErrInvalidMeal = errors.New("allowance: invalid meal")
)

// Rate ставка за приём пищи
func Rate(meal domain.Meal) int {
	switch meal {
	case domain.MealBreakfast:
		return BreakfastRate
	case domain.MealLunch:
		return LunchRate
	case domain.MealDinner:
		return DinnerRate
	default:
		return 0
	}
}

// Calculator разбирает даты в своей локации и пересчитывает дни поездки
type Calculator struct {
	loc *time.Location
}

// NewCalculator создает калькулятор. nil локация - UTC
func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{loc: loc}
}

// ParseRange разбирает начало и конец поездки, различая "не введено" и "не разобрано"
func (c *Calculator) ParseRange(start, end string) (time.Time, time.Time, error) {
	startAt, err := datetime.Parse(start, c.loc)
	if err != nil {
		if errors.Is(err, datetime.ErrEmpty) {
			return time.Time{}, time.Time{}, ErrStartEmpty
		}
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start: %v", ErrUnparseable, err)
	}

	endAt, err := datetime.Parse(end, c.loc)
	if err != nil {
		if errors.Is(err, datetime.ErrEmpty) {
			return time.Time{}, time.Time{}, ErrEndEmpty
		}
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end: %v", ErrUnparseable, err)
	}

	if endAt.Before(startAt) {
		return time.Time{}, time.Time{}, ErrInvertedRange
	}

	if dayCount(startAt, endAt) > MaxTravelDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: more than %d days", ErrRangeTooLong, MaxTravelDays)
	}

	return startAt, endAt, nil
}

// Recompute пересчитывает дни по строкам дат. Любая ошибка разбора или
// перевёрнутый диапазон дают пустой список без ошибки
func (c *Calculator) Recompute(start, end string, previous []domain.MealDay) []domain.MealDay {
	startAt, endAt, err := c.ParseRange(start, end)
	if err != nil {
		return []domain.MealDay{}
	}
	return ComputeDays(startAt, endAt, previous)
}

// ComputeDays строит записи по каждому календарному дню от start до end включительно.
// Флаги provided переносятся из previous по ключу даты, новые дни получают false
func ComputeDays(start, end time.Time, previous []domain.MealDay) []domain.MealDay {
	if end.Before(start) || dayCount(start, end) > MaxTravelDays {
		return []domain.MealDay{}
	}

	end = end.In(start.Location())

	provided := make(map[string]domain.MealFlags, len(previous))
	for _, day := range previous {
		provided[day.Date] = day.Provided
	}

	days := make([]domain.MealDay, 0)
	lastDay := domain.DateOnly(end)

	for day := domain.DateOnly(start); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		windowStart := day
		if domain.SameDay(day, start) {
			windowStart = start
		}

		windowEnd := day.AddDate(0, 0, 1).Add(-time.Second)
		if domain.SameDay(day, end) {
			windowEnd = end
		}

		key := day.Format(domain.DateFormat)
		days = append(days, domain.MealDay{
			Date:     key,
			Eligible: Eligibility(day, windowStart, windowEnd),
			Provided: provided[key],
		})
	}

	return days
}

// Eligibility проверяет приёмы пищи для активного окна [windowStart, windowEnd] дня day.
// Завтрак: окно содержит 09:00. Обед: окно пересекает 12:00-14:00. Ужин: окно содержит 19:30
func Eligibility(day, windowStart, windowEnd time.Time) domain.MealFlags {
	at := func(minutes int) time.Time {
		return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
	}

	contains := func(instant time.Time) bool {
		return !instant.Before(windowStart) && !instant.After(windowEnd)
	}

	return domain.MealFlags{
		Breakfast: contains(at(BreakfastAt)),
		Lunch:     !windowStart.After(at(LunchTo)) && !windowEnd.Before(at(LunchFrom)),
		Dinner:    contains(at(DinnerAt)),
	}
}

// Total сумма по приёмам пищи, на которые есть право и которые не предоставлены
func Total(days []domain.MealDay) int {
	total := 0
	for _, day := range days {
		for _, meal := range domain.AllMeals {
			if day.Eligible.Get(meal) && !day.Provided.Get(meal) {
				total += Rate(meal)
			}
		}
	}
	return total
}

// Toggle возвращает копию дней с изменённым флагом provided для дня date
func Toggle(days []domain.MealDay, date string, meal domain.Meal, provided bool) ([]domain.MealDay, error) {
	if !domain.IsValidMeal(meal) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMeal, meal)
	}

	result := make([]domain.MealDay, len(days))
	copy(result, days)

	for i := range result {
		if result[i].Date == date {
			result[i].Provided = result[i].Provided.With(meal, provided)
			return result, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrDayNotFound, date)
}

// dayCount количество календарных дней в диапазоне включительно
func dayCount(start, end time.Time) int {
	first := domain.DateOnly(start)
	last := domain.DateOnly(end.In(start.Location()))
	count := 0
	for day := first; !day.After(last) && count <= MaxTravelDays; day = day.AddDate(0, 0, 1) {
		count++
	}
	return count
}
