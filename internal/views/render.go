package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/daytally/internal/selection"
)

// AppData holds the pieces of one frame. Header, Toolbar and Stats must each
// be a single line: the grid starts at GridTop.
type AppData struct {
	Light       bool
	Header      string
	Toolbar     string
	Stats       string
	Year        string
	Palette     string
	StatusLine  string
	StatusError bool
	Help        string
	Footer      string
}

func RenderApp(data AppData) string {
	th := ThemeFor(data.Light)

	lines := []string{
		th.Header.Render(data.Header),
		data.Toolbar,
		data.Stats,
		"",
		data.Year,
		"",
	}
	if data.Palette != "" {
		lines = append(lines, data.Palette)
	}
	if data.StatusLine != "" {
		status := th.Status.Render(data.StatusLine)
		if data.StatusError {
			status = th.Error.Render(data.StatusLine)
		}
		lines = append(lines, status)
	}
	if data.Help != "" {
		lines = append(lines, th.Panel.Render(data.Help))
	}
	if data.Footer != "" {
		lines = append(lines, th.Muted.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

func RenderHeader(year int) string {
	return fmt.Sprintf("daytally %d", year)
}

// RenderToolbar lays the buttons out at the columns HitTest expects.
func RenderToolbar(light bool) string {
	th := ThemeFor(light)
	var b strings.Builder
	for _, btn := range toolbarButtons {
		if pad := btn.col - lipgloss.Width(b.String()); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(th.Button.Render(btn.label))
	}
	mode := "dark"
	if light {
		mode = "light"
	}
	b.WriteString(" " + th.Muted.Render(mode))
	return b.String()
}

type StatsData struct {
	Stats selection.Stats
	// Shown is the count to display, which may trail Stats.Count while the
	// counter animates.
	Shown       int
	ProgressBar string
	Light       bool
}

func RenderStats(data StatsData) string {
	th := ThemeFor(data.Light)
	line := fmt.Sprintf("%d / %d days", data.Shown, data.Stats.Target)
	var note string
	if data.Stats.Achieved {
		note = th.Achieved.Render("target reached")
	} else {
		note = th.Muted.Render(fmt.Sprintf("%d to go", data.Stats.Remaining))
	}
	parts := []string{th.Title.Render(line), note}
	if data.ProgressBar != "" {
		parts = append(parts, data.ProgressBar)
	}
	return strings.Join(parts, "  ")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", input)
}

func RenderMarkdown(md string, light bool) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "dark"
	if light {
		style = "light"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
