package icsio

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/sandeepkv93/daytally/internal/model"
)

// maxEventDays bounds how far a single event may expand.
const maxEventDays = 366

var ErrNoEvents = errors.New("icsio: calendar has no events")

var dateLayouts = []string{
	"20060102T150405Z",
	"20060102T150405",
	"20060102",
}

// Import returns the sorted, de-duplicated day keys covered by every event in
// r. Events without a usable DTSTART are ignored.
func Import(r io.Reader) ([]string, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}
	events := cal.Events()
	if len(events) == 0 {
		return nil, ErrNoEvents
	}

	seen := make(map[string]struct{})
	for _, event := range events {
		for _, key := range eventDays(event) {
			seen[key] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func eventDays(event *ics.VEvent) []string {
	startProp := event.GetProperty(ics.ComponentPropertyDtStart)
	if startProp == nil {
		return nil
	}
	start, allDay, ok := parseDate(startProp.Value)
	if !ok {
		return nil
	}
	first := dayOf(start)
	last := first

	if endProp := event.GetProperty(ics.ComponentPropertyDtEnd); endProp != nil {
		if end, endAllDay, ok := parseDate(endProp.Value); ok && end.After(start) {
			last = dayOf(end)
			// DTEND is exclusive for dates and for a timed end at midnight.
			if endAllDay || allDay || end.Equal(last) {
				last = last.AddDate(0, 0, -1)
			}
			if last.Before(first) {
				last = first
			}
		}
	}

	var out []string
	for d := first; !d.After(last) && len(out) < maxEventDays; d = d.AddDate(0, 0, 1) {
		out = append(out, model.KeyOf(d))
	}
	return out
}

func parseDate(value string) (time.Time, bool, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, layout == "20060102", true
		}
	}
	return time.Time{}, false, false
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
