package create_visit

import (
	"time"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	"github.com/sgasoft/SGA-VisitService/pkg/types"
)

// resolveLocation загружает таймзону сессии
// Пустая строка означает таймзону по умолчанию
func resolveLocation(timezone, defaultTimezone string) (*time.Location, error) {
	name := timezone
	if name == "" {
		name = defaultTimezone
	}
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}

// visitWindow вычисляет UTC-границы визита из локального времени суток
// Дата берется из начала слота, приведенного к таймзоне сессии: портал
// показывает слот в локальном времени, и введенные HH:MM относятся к
// тому же локальному дню
//
// Если конец не указан, предлагается начало + час, но не позже конца
// слота (как делает форма back-office при выборе слота)
func visitWindow(
	slot *domain.VisitSlot,
	startTime, endTime types.TimeString,
	loc *time.Location,
) (startAt, endAt time.Time, err error) {
	localDate := slot.StartAt.In(loc)

	startAt, err = startTime.OnDate(localDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if endTime.IsZero() {
		endAt = startAt.Add(domain.DefaultVisitDurationMinutes * time.Minute)
		if endAt.After(slot.EndAt) {
			endAt = slot.EndAt
		}
		return startAt, endAt, nil
	}

	endAt, err = endTime.OnDate(localDate, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return startAt, endAt, nil
}
