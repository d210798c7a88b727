package model

import (
	"strings"
	"time"
)

// CalendarDay is one cell of a month grid. Padding cells have Empty set and
// no key; they never take part in selection.
type CalendarDay struct {
	Key     string
	Day     int
	Weekday time.Weekday
	Weekend bool
	Empty   bool
}

type Month struct {
	Year   int
	Month  time.Month
	Offset int
	Days   int
	Cells  []CalendarDay
}

// CellRef locates a real day inside Grid.Months.
type CellRef struct {
	Month int
	Index int
}

type Grid struct {
	Year   int
	Months [12]Month
	index  map[string]CellRef
	keys   []string
}

// BuildGrid lays out every month of year with weekday-aligned padding.
func BuildGrid(year int) *Grid {
	g := &Grid{
		Year:  year,
		index: make(map[string]CellRef, 366),
		keys:  make([]string, 0, 366),
	}
	for i := 0; i < 12; i++ {
		g.Months[i] = g.buildMonth(i)
	}
	return g
}

func (g *Grid) buildMonth(i int) Month {
	month := time.Month(i + 1)
	first := time.Date(g.Year, month, 1, 12, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, 0).AddDate(0, 0, -1)
	offset := int(first.Weekday())
	days := last.Day()

	cells := make([]CalendarDay, 0, offset+days)
	for p := 0; p < offset; p++ {
		cells = append(cells, CalendarDay{Empty: true})
	}
	for day := 1; day <= days; day++ {
		wd := time.Weekday((offset + day - 1) % 7)
		key := FormatKey(g.Year, month, day)
		g.index[key] = CellRef{Month: i, Index: len(cells)}
		g.keys = append(g.keys, key)
		cells = append(cells, CalendarDay{
			Key:     key,
			Day:     day,
			Weekday: wd,
			Weekend: IsWeekend(wd),
		})
	}
	return Month{
		Year:   g.Year,
		Month:  month,
		Offset: offset,
		Days:   days,
		Cells:  cells,
	}
}

func (g *Grid) Lookup(key string) (CalendarDay, bool) {
	ref, ok := g.index[key]
	if !ok {
		return CalendarDay{}, false
	}
	return g.Months[ref.Month].Cells[ref.Index], true
}

func (g *Grid) Ref(key string) (CellRef, bool) {
	ref, ok := g.index[key]
	return ref, ok
}

func (g *Grid) Contains(key string) bool {
	_, ok := g.index[key]
	return ok
}

// Keys returns every real day of the year in chronological order.
func (g *Grid) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

func (g *Grid) Len() int { return len(g.keys) }

// MonthKeys returns the keys of the given month. A year other than the
// grid's yields nothing.
func (g *Grid) MonthKeys(year int, month time.Month) []string {
	if year != g.Year || month < time.January || month > time.December {
		return nil
	}
	prefix := MonthPrefix(year, month)
	cells := g.Months[int(month)-1].Cells
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if !c.Empty && strings.HasPrefix(c.Key, prefix) {
			out = append(out, c.Key)
		}
	}
	return out
}

// DaysBetween walks one calendar day at a time from the earlier endpoint to
// the later one, inclusive, keeping only days that exist in the grid.
func (g *Grid) DaysBetween(a, b string) []string {
	start, err := ParseKey(a)
	if err != nil {
		return nil
	}
	end, err := ParseKey(b)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		start, end = end, start
	}
	out := make([]string, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := KeyOf(d)
		if g.Contains(key) {
			out = append(out, key)
		}
	}
	return out
}

// Shift moves key by days, clamped to the first and last day of the year.
func (g *Grid) Shift(key string, days int) string {
	ref, ok := g.index[key]
	if !ok || len(g.keys) == 0 {
		return key
	}
	pos := 0
	for m := 0; m < ref.Month; m++ {
		pos += g.Months[m].Days
	}
	pos += ref.Index - g.Months[ref.Month].Offset + days
	if pos < 0 {
		pos = 0
	}
	if pos >= len(g.keys) {
		pos = len(g.keys) - 1
	}
	return g.keys[pos]
}
