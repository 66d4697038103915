package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM (24 часа)
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrAmbiguousLocalTime возвращается, когда локальное время не соответствует
	// ровно одному моменту: стрелки в эту дату переводились, и время суток
	// либо существует дважды, либо не существует вовсе
	ErrAmbiguousLocalTime = errors.New("ambiguous local time")
)

// TimeString время суток в формате "HH:MM"
// Используется для передачи времени без даты между слоями и в JSON
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringInLocation создает TimeString из time.Time в указанной таймзоне
func NewTimeStringInLocation(t time.Time, loc *time.Location) TimeString {
	return TimeString(t.In(loc).Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" в TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// parse возвращает time.Time с нулевой датой
func (t TimeString) parse() (time.Time, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", err
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// IsBefore возвращает true, если время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.After(b)
}

// OnDate совмещает время суток с датой в указанной таймзоне
// Возвращает момент времени в UTC (канонический формат хранения)
//
// Время суток, попадающее на перевод стрелок, отклоняется с
// ErrAmbiguousLocalTime: несуществующее время ловится обратной проверкой
// стены часов, повторяющееся - поиском второго момента с той же стеной
// в пределах часа (переводы на нестандартный шаг не детектируются)
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := t.parse()
	if err != nil {
		return time.Time{}, err
	}
	local := time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		loc,
	)
	if !showsWallClock(local, loc, date, parsed) {
		return time.Time{}, fmt.Errorf("%w: %q does not exist on %s in %s",
			ErrAmbiguousLocalTime, string(t), date.Format("2006-01-02"), loc)
	}
	if showsWallClock(local.Add(-time.Hour), loc, date, parsed) ||
		showsWallClock(local.Add(time.Hour), loc, date, parsed) {
		return time.Time{}, fmt.Errorf("%w: %q occurs twice on %s in %s",
			ErrAmbiguousLocalTime, string(t), date.Format("2006-01-02"), loc)
	}
	return local.UTC(), nil
}

// showsWallClock проверяет, что момент candidate показывает в loc запрошенные
// дату и время суток
func showsWallClock(candidate time.Time, loc *time.Location, date, tod time.Time) bool {
	c := candidate.In(loc)
	return c.Year() == date.Year() && c.Month() == date.Month() && c.Day() == date.Day() &&
		c.Hour() == tod.Hour() && c.Minute() == tod.Minute()
}
