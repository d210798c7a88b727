package views

import (
	"time"

	"github.com/sandeepkv93/daytally/internal/model"
)

// Screen geometry. Rendering and hit-testing both derive from these, so a
// cell is drawn exactly where a click resolves to it.
const (
	CellWidth    = 3
	MonthWidth   = 7 * CellWidth
	MonthGap     = 3
	MonthsPerRow = 3
	MonthRows    = 12 / MonthsPerRow
	MonthHeight  = 3 + weekRows
	MonthStride  = MonthHeight + 1

	HeaderLine  = 0
	ToolbarLine = 1
	StatsLine   = 2
	GridTop     = 4

	GridWidth  = MonthsPerRow*MonthWidth + (MonthsPerRow-1)*MonthGap
	GridHeight = MonthRows*MonthStride - 1

	weekRows      = 6
	titleLine     = 0
	buttonLine    = 1
	weekdayLine   = 2
	firstWeekLine = 3
)

type HitKind int

const (
	HitNone HitKind = iota
	HitDay
	HitSelectMonth
	HitDeselectMonth
	HitSelectAll
	HitDeselectAll
	HitTheme
)

// Hit is what sits under a screen coordinate.
type Hit struct {
	Kind  HitKind
	Key   string
	Month time.Month
}

type button struct {
	col   int
	label string
	kind  HitKind
}

var toolbarButtons = []button{
	{0, "[select all]", HitSelectAll},
	{13, "[deselect all]", HitDeselectAll},
	{28, "[theme]", HitTheme},
}

var monthButtons = []button{
	{0, "[+all]", HitSelectMonth},
	{7, "[-all]", HitDeselectMonth},
}

func (b button) contains(x int) bool {
	return x >= b.col && x < b.col+len(b.label)
}

// HitTest resolves a terminal cell to a toolbar button, a month button or a
// day. Padding cells, gaps and everything outside the layout are HitNone.
func HitTest(g *model.Grid, x, y int) Hit {
	if x < 0 || y < 0 || g == nil {
		return Hit{}
	}
	if y == ToolbarLine {
		for _, b := range toolbarButtons {
			if b.contains(x) {
				return Hit{Kind: b.kind}
			}
		}
		return Hit{}
	}
	if !InGrid(x, y) {
		return Hit{}
	}

	row, line := (y-GridTop)/MonthStride, (y-GridTop)%MonthStride
	col, within := x/(MonthWidth+MonthGap), x%(MonthWidth+MonthGap)
	if line >= MonthHeight || within >= MonthWidth {
		return Hit{}
	}
	month := &g.Months[row*MonthsPerRow+col]

	switch {
	case line == buttonLine:
		for _, b := range monthButtons {
			if b.contains(within) {
				return Hit{Kind: b.kind, Month: month.Month}
			}
		}
	case line >= firstWeekLine:
		idx := (line-firstWeekLine)*7 + within/CellWidth
		if idx < len(month.Cells) && !month.Cells[idx].Empty {
			return Hit{Kind: HitDay, Key: month.Cells[idx].Key, Month: month.Month}
		}
	}
	return Hit{}
}

// CellAt returns the day key under x, y or "" when there is none.
func CellAt(g *model.Grid, x, y int) string {
	hit := HitTest(g, x, y)
	if hit.Kind != HitDay {
		return ""
	}
	return hit.Key
}

// InGrid reports whether x, y lies inside the rectangle holding the months.
func InGrid(x, y int) bool {
	return x >= 0 && x < GridWidth && y >= GridTop && y < GridTop+GridHeight
}

// CellPosition is the inverse of CellAt: the screen cell where key's day
// number starts.
func CellPosition(g *model.Grid, key string) (x, y int, ok bool) {
	if g == nil {
		return 0, 0, false
	}
	ref, ok := g.Ref(key)
	if !ok {
		return 0, 0, false
	}
	row, col := ref.Month/MonthsPerRow, ref.Month%MonthsPerRow
	x = col*(MonthWidth+MonthGap) + (ref.Index%7)*CellWidth
	y = GridTop + row*MonthStride + firstWeekLine + ref.Index/7
	return x, y, true
}

// MonthButtonPosition returns where the select (+) or deselect (-) button of
// month is drawn.
func MonthButtonPosition(month time.Month, selectAll bool) (x, y int) {
	i := int(month) - 1
	b := monthButtons[1]
	if selectAll {
		b = monthButtons[0]
	}
	x = (i%MonthsPerRow)*(MonthWidth+MonthGap) + b.col
	y = GridTop + (i/MonthsPerRow)*MonthStride + buttonLine
	return x, y
}

// ToolbarButtonPosition returns the column of a toolbar button, or -1.
func ToolbarButtonPosition(kind HitKind) int {
	for _, b := range toolbarButtons {
		if b.kind == kind {
			return b.col
		}
	}
	return -1
}
