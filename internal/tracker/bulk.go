package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/sandeepkv93/daytally/internal/model"
)

var ErrOutsideYear = errors.New("tracker: date outside calendar year")

// Toggle flips a single day. It reports false when key is not a real day.
func (t *Tracker) Toggle(key string) bool {
	k, ok := t.resolve(key)
	if !ok {
		return false
	}
	t.bulk(func() { t.toggle(k) })
	return true
}

func (t *Tracker) SelectAllDays() {
	t.bulk(func() { t.store.SelectAll(t.grid.Keys()) })
}

func (t *Tracker) DeselectAllDays() {
	t.bulk(func() { t.store.DeselectAll() })
}

// SelectMonth selects every day of month; a year other than the tracker's
// matches nothing and leaves the selection untouched.
func (t *Tracker) SelectMonth(year int, month time.Month) int {
	keys := t.grid.MonthKeys(year, month)
	if len(keys) == 0 {
		return 0
	}
	t.bulk(func() { t.store.SelectRange(keys) })
	return len(keys)
}

func (t *Tracker) DeselectMonth(year int, month time.Month) int {
	keys := t.grid.MonthKeys(year, month)
	if len(keys) == 0 {
		return 0
	}
	t.bulk(func() { t.store.DeselectRange(keys) })
	return len(keys)
}

// SelectRange selects the inclusive span between two dates of the year.
func (t *Tracker) SelectRange(from, to string) (int, error) {
	span, err := t.span(from, to)
	if err != nil {
		return 0, err
	}
	t.bulk(func() { t.store.SelectRange(span) })
	return len(span), nil
}

func (t *Tracker) DeselectRange(from, to string) (int, error) {
	span, err := t.span(from, to)
	if err != nil {
		return 0, err
	}
	t.bulk(func() { t.store.DeselectRange(span) })
	return len(span), nil
}

// Import selects every key that is a day of this year. Keys already selected
// count as neither added nor skipped.
func (t *Tracker) Import(keys []string) (added, skipped int) {
	fresh := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, raw := range keys {
		k, ok := t.resolve(raw)
		if !ok {
			skipped++
			continue
		}
		if _, dup := seen[k]; dup || t.store.Contains(k) {
			continue
		}
		seen[k] = struct{}{}
		fresh = append(fresh, k)
	}
	if skipped > 0 {
		t.logger.Debug("import skipped keys outside the year", "year", t.grid.Year, "skipped", skipped)
	}
	if len(fresh) == 0 {
		return 0, skipped
	}
	t.bulk(func() { t.store.SelectRange(fresh) })
	return len(fresh), skipped
}

// bulk ends any gesture in progress without applying it, then commits fn.
func (t *Tracker) bulk(fn func()) {
	if t.state != Idle {
		t.resetSession()
	}
	t.commit(fn)
}

func (t *Tracker) span(from, to string) ([]string, error) {
	for _, k := range []string{from, to} {
		if _, err := model.ParseKey(k); err != nil {
			return nil, err
		}
		if !t.grid.Contains(k) {
			return nil, fmt.Errorf("%w: %s not in %d", ErrOutsideYear, k, t.grid.Year)
		}
	}
	return t.grid.DaysBetween(from, to), nil
}
