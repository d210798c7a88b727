package update

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/daytally/internal/commands"
	"github.com/sandeepkv93/daytally/internal/views"
)

// helpMarkdown documents the mouse and the palette; key bindings come from
// the help bubble.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# daytally\n\n")
	fmt.Fprintf(&b, "Count the days you spend in the country. The target is **%d** days.\n\n", m.Tracker.Stats().Target)
	b.WriteString("## Mouse\n\n")
	b.WriteString("- click a day to toggle it\n")
	b.WriteString("- drag across days to select them, or to clear them when the first day was already selected\n")
	b.WriteString("- `[+all]` and `[-all]` select or clear a month\n\n")
	b.WriteString("## Commands\n\n")
	for _, u := range commands.Usage {
		fmt.Fprintf(&b, "- `%s` %s\n", u.Syntax, u.Description)
	}
	return b.String()
}

func (m Model) renderHelpView() string {
	light := m.Tracker.LightTheme()
	full := m.helpModel
	full.ShowAll = true
	return views.RenderMarkdown(m.helpMarkdown(), light) + "\n\n" + full.View(m.Keys)
}
