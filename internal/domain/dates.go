package domain

import (
	"fmt"
	"time"
)

// DateLayout - формат дат во входящих запросах
const DateLayout = "2006-01-02"

// ParseDate разбирает дату в формате YYYY-MM-DD (UTC, полночь)
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", value, ErrInvalidDate)
	}
	return t, nil
}

// Today возвращает текущую дату без времени
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
