// Package icsio moves selected days in and out of iCalendar files.
package icsio

import (
	"fmt"
	"io"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/sandeepkv93/daytally/internal/model"
)

const (
	productID = "-//daytally//residency days//EN"
	uidDomain = "daytally"
)

// Export writes one all-day event per key. Keys that do not parse are skipped
// and counted. stamp is used for DTSTAMP; the zero time means now.
func Export(w io.Writer, year int, keys []string, stamp time.Time) (written, skipped int, err error) {
	if stamp.IsZero() {
		stamp = time.Now()
	}
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName(fmt.Sprintf("Days %d", year))

	for _, key := range sorted {
		day, perr := model.ParseKey(key)
		if perr != nil {
			skipped++
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		event := cal.AddEvent(EventUID(key))
		event.SetDtStampTime(stamp.UTC())
		event.SetAllDayStartAt(start)
		event.SetAllDayEndAt(start.AddDate(0, 0, 1))
		event.SetSummary("Present")
		written++
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return 0, skipped, fmt.Errorf("write calendar: %w", err)
	}
	return written, skipped, nil
}

// EventUID is stable per day so re-exports replace rather than duplicate.
func EventUID(key string) string {
	return key + "@" + uidDomain
}
