package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// KeyLayout is the canonical date key layout.
const KeyLayout = "2006-01-02"

var ErrInvalidDateKey = errors.New("model: invalid date key")

// FormatKey renders a calendar date as its canonical YYYY-MM-DD key.
func FormatKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// KeyOf formats t's local calendar date.
func KeyOf(t time.Time) string {
	y, m, d := t.Date()
	return FormatKey(y, m, d)
}

// ParseKey returns the date at noon UTC so day stepping never crosses a DST edge.
func ParseKey(key string) (time.Time, error) {
	raw := strings.TrimSpace(key)
	if len(raw) != len(KeyLayout) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	t, err := time.Parse(KeyLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// MonthPrefix is the key prefix shared by every day of the month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d-", year, int(month))
}

func IsWeekend(wd time.Weekday) bool {
	return wd == time.Sunday || wd == time.Saturday
}
