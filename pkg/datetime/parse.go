// Package datetime разбирает дату/время поездки, введённые в разных форматах.
package datetime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrEmpty значение не введено
	ErrEmpty = errors.New("datetime: empty value")

	// ErrUnparseable ни один из форматов не подошёл
	ErrUnparseable = errors.New("datetime: unparseable value")
)

// isoLayouts ISO 8601 варианты, пробуются первыми
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// regionalLayouts dd/mm/yyyy [hh:mm[ am/pm]], вход предварительно переводится в верхний регистр
var regionalLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006 03:04 PM",
	"02/01/2006 3:04 PM",
	"02/01/2006 03:04PM",
	"2/1/2006 15:04",
	"2/1/2006 3:04 PM",
	"02/01/2006, 15:04",
	"02/01/2006",
	"2/1/2006",
}

var fallbackRe = regexp.MustCompile(
	`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})(?:[ ,T]+(\d{1,2})[:.](\d{2})(?::(\d{2}))?\s*([AP]M)?)?$`,
)

// Parse разбирает значение в локации loc. Порядок: ISO 8601, региональные форматы,
// ручной разбор регулярным выражением. Побеждает первый успешный вариант
func Parse(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrEmpty
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc), nil
		}
	}

	upper := strings.ToUpper(value)
	for _, layout := range regionalLayouts {
		if t, err := time.ParseInLocation(layout, upper, loc); err == nil {
			return t, nil
		}
	}

	if t, ok := parseFallback(upper, loc); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, value)
}

func parseFallback(value string, loc *time.Location) (time.Time, bool) {
	m := fallbackRe.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	hour, minute, second := 0, 0, 0
	if m[4] != "" {
		hour, _ = strconv.Atoi(m[4])
		minute, _ = strconv.Atoi(m[5])
		if m[6] != "" {
			second, _ = strconv.Atoi(m[6])
		}
	}

	switch m[7] {
	case "AM", "PM":
		if hour < 1 || hour > 12 {
			return time.Time{}, false
		}
		if m[7] == "PM" && hour != 12 {
			hour += 12
		}
		if m[7] == "AM" && hour == 12 {
			hour = 0
		}
	}

	if month < 1 || month > 12 || hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, loc)
	// time.Date нормализует 31/02 в март, такие даты отбрасываем
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}

	return t, true
}
