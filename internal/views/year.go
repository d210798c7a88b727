package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/daytally/internal/model"
	"github.com/sandeepkv93/daytally/internal/tracker"
)

// Theme is the set of styles for one color scheme.
type Theme struct {
	Header          lipgloss.Style
	Title           lipgloss.Style
	Button          lipgloss.Style
	Weekday         lipgloss.Style
	Day             lipgloss.Style
	Weekend         lipgloss.Style
	Selected        lipgloss.Style
	PreviewSelect   lipgloss.Style
	PreviewDeselect lipgloss.Style
	Cursor          lipgloss.Style
	Anchor          lipgloss.Style
	Status          lipgloss.Style
	Error           lipgloss.Style
	Muted           lipgloss.Style
	Achieved        lipgloss.Style
	Panel           lipgloss.Style
}

var (
	darkTheme = Theme{
		Header:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Title:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		Button:          lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Weekday:         lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Day:             lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Weekend:         lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Selected:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")),
		PreviewSelect:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("2")),
		PreviewDeselect: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
		Cursor:          lipgloss.NewStyle().Reverse(true).Underline(true),
		Anchor:          lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("11")),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:           lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:           lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Achieved:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Panel:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
	lightTheme = Theme{
		Header:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1d4ed8")),
		Title:           lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#111827")),
		Button:          lipgloss.NewStyle().Foreground(lipgloss.Color("#0e7490")),
		Weekday:         lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Day:             lipgloss.NewStyle().Foreground(lipgloss.Color("#1f2937")),
		Weekend:         lipgloss.NewStyle().Foreground(lipgloss.Color("#9333ea")),
		Selected:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#2563eb")),
		PreviewSelect:   lipgloss.NewStyle().Foreground(lipgloss.Color("#1e3a8a")).Background(lipgloss.Color("#bfdbfe")),
		PreviewDeselect: lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#7f1d1d")).Background(lipgloss.Color("#fecaca")),
		Cursor:          lipgloss.NewStyle().Reverse(true).Underline(true),
		Anchor:          lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#b45309")),
		Status:          lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")),
		Error:           lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")),
		Muted:           lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
		Achieved:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#15803d")),
		Panel:           lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#9ca3af")).Padding(0, 1),
	}
)

func ThemeFor(light bool) Theme {
	if light {
		return lightTheme
	}
	return darkTheme
}

var weekdayHeader = "Su Mo Tu We Th Fr Sa "

type YearData struct {
	Grid     *model.Grid
	Snapshot tracker.Snapshot
	// Cursor and Anchor are keyboard markers; either may be empty.
	Cursor string
	Anchor string
}

// RenderYear draws the twelve month blocks, three per row, every line of a
// block padded to MonthWidth so the layout constants stay valid.
func RenderYear(data YearData) string {
	if data.Grid == nil {
		return ""
	}
	th := ThemeFor(data.Snapshot.Light)
	gap := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", MonthGap)+"\n", MonthHeight), "\n")

	rows := make([]string, 0, MonthRows)
	for r := 0; r < MonthRows; r++ {
		blocks := make([]string, 0, 2*MonthsPerRow-1)
		for c := 0; c < MonthsPerRow; c++ {
			if c > 0 {
				blocks = append(blocks, gap)
			}
			i := r*MonthsPerRow + c
			blocks = append(blocks, renderMonth(th, &data.Grid.Months[i], data.Snapshot.ByMonth[i], data))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	}
	return strings.Join(rows, "\n\n")
}

func renderMonth(th Theme, m *model.Month, count int, data YearData) string {
	lines := make([]string, 0, MonthHeight)

	name := m.Month.String()
	tally := fmt.Sprintf("%d/%d", count, m.Days)
	title := th.Title.Render(name) + strings.Repeat(" ", MonthWidth-len(name)-len(tally)) + th.Muted.Render(tally)
	lines = append(lines, title)

	buttons := th.Button.Render(monthButtons[0].label) + " " + th.Button.Render(monthButtons[1].label)
	lines = append(lines, buttons+strings.Repeat(" ", MonthWidth-monthButtons[1].col-len(monthButtons[1].label)))

	lines = append(lines, th.Weekday.Render(weekdayHeader))

	for w := 0; w < weekRows; w++ {
		var b strings.Builder
		for d := 0; d < 7; d++ {
			idx := w*7 + d
			if idx >= len(m.Cells) || m.Cells[idx].Empty {
				b.WriteString(strings.Repeat(" ", CellWidth))
				continue
			}
			cell := m.Cells[idx]
			b.WriteString(dayStyle(th, cell, data).Render(fmt.Sprintf("%2d", cell.Day)))
			b.WriteString(" ")
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// dayStyle layers markers: preview beats selection, the cursor wins over all.
func dayStyle(th Theme, cell model.CalendarDay, data YearData) lipgloss.Style {
	style := th.Day
	if cell.Weekend {
		style = th.Weekend
	}
	if data.Snapshot.IsSelected(cell.Key) {
		style = th.Selected
	}
	switch data.Snapshot.Preview[cell.Key] {
	case tracker.PreviewSelect:
		style = th.PreviewSelect
	case tracker.PreviewDeselect:
		style = th.PreviewDeselect
	}
	if cell.Key == data.Anchor {
		style = style.Inherit(th.Anchor)
	}
	if cell.Key == data.Cursor {
		style = th.Cursor.Inherit(style)
	}
	return style
}
