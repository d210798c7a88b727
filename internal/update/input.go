package update

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daytally/internal/model"
	"github.com/sandeepkv93/daytally/internal/views"
)

// handleKey maps the keyboard onto the tracker. A keyboard range reuses the
// pointer gesture: mark presses, cursor moves drag, enter releases.
func (m Model) handleKey(msg tea.KeyMsg) Model {
	g := m.Tracker.Grid()
	switch {
	case key.Matches(msg, m.Keys.Left):
		m.moveCursor(g.Shift(m.Cursor, -1))
	case key.Matches(msg, m.Keys.Right):
		m.moveCursor(g.Shift(m.Cursor, 1))
	case key.Matches(msg, m.Keys.Up):
		m.moveCursor(g.Shift(m.Cursor, -7))
	case key.Matches(msg, m.Keys.Down):
		m.moveCursor(g.Shift(m.Cursor, 7))
	case key.Matches(msg, m.Keys.Toggle):
		if m.Anchor != "" {
			break
		}
		if m.Tracker.Toggle(m.Cursor) {
			m.Status = StatusBar{Text: fmt.Sprintf("%s %s", m.Cursor, selectedWord(m.Tracker.IsSelected(m.Cursor)))}
		}
	case key.Matches(msg, m.Keys.Mark):
		if m.mouseDown {
			break
		}
		if m.Anchor != "" {
			m = m.applyRange()
			break
		}
		m.Tracker.PointerDown(m.Cursor)
		m.Anchor = m.Cursor
		m.Status = StatusBar{Text: "range from " + m.Cursor}
	case key.Matches(msg, m.Keys.Apply):
		if m.Anchor != "" {
			m = m.applyRange()
		}
	case key.Matches(msg, m.Keys.Cancel):
		if m.Anchor != "" || m.mouseDown {
			m.Tracker.Abort()
			m.Anchor = ""
			m.mouseDown = false
			m.Status = StatusBar{Text: "range cancelled"}
		}
	case key.Matches(msg, m.Keys.SelectAll):
		m.endKeyboardRange()
		m.Tracker.SelectAllDays()
		m.Status = StatusBar{Text: fmt.Sprintf("selected all %d days", g.Len())}
	case key.Matches(msg, m.Keys.DeselectAll):
		m.endKeyboardRange()
		m.Tracker.DeselectAllDays()
		m.Status = StatusBar{Text: "selection cleared"}
	case key.Matches(msg, m.Keys.SelectMonth), key.Matches(msg, m.Keys.DeselectMonth):
		m.endKeyboardRange()
		day, err := model.ParseKey(m.Cursor)
		if err != nil {
			break
		}
		m = m.applyMonth(day.Month(), key.Matches(msg, m.Keys.SelectMonth))
	case key.Matches(msg, m.Keys.Theme):
		m = m.toggleTheme()
	case key.Matches(msg, m.Keys.Palette):
		m.endKeyboardRange()
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.helpRendered = m.renderHelpView()
		}
	}
	return m
}

func (m *Model) moveCursor(next string) {
	m.Cursor = next
	if m.Anchor != "" {
		m.Tracker.PointerMove(next)
	}
}

func (m Model) applyRange() Model {
	from, to := m.Anchor, m.Cursor
	before := m.Tracker.SelectedCount()
	m.Tracker.PointerUp()
	m.Anchor = ""
	m.Status = StatusBar{Text: fmt.Sprintf("range %s..%s applied (%+d days)", from, to, m.Tracker.SelectedCount()-before)}
	return m
}

// endKeyboardRange drops a pending keyboard range before a bulk action.
func (m *Model) endKeyboardRange() {
	if m.Anchor != "" {
		m.Tracker.Abort()
		m.Anchor = ""
	}
}

func (m Model) applyMonth(month time.Month, selectAll bool) Model {
	year := m.Tracker.Year()
	if selectAll {
		n := m.Tracker.SelectMonth(year, month)
		m.Status = StatusBar{Text: fmt.Sprintf("selected %s (%d days)", month, n)}
	} else {
		n := m.Tracker.DeselectMonth(year, month)
		m.Status = StatusBar{Text: fmt.Sprintf("cleared %s (%d days)", month, n)}
	}
	return m
}

func (m Model) toggleTheme() Model {
	light := m.Tracker.ToggleTheme()
	if m.HelpVisible {
		m.helpRendered = m.renderHelpView()
	}
	mode := "dark"
	if light {
		mode = "light"
	}
	m.Status = StatusBar{Text: "theme: " + mode}
	return m
}

func selectedWord(selected bool) string {
	if selected {
		return "selected"
	}
	return "deselected"
}

// handleMouse turns left-button presses, drags and releases into pointer
// events. Dragging out of the month grid counts as leaving it.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	g := m.Tracker.Grid()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		m.endKeyboardRange()
		hit := views.HitTest(g, msg.X, msg.Y)
		switch hit.Kind {
		case views.HitDay:
			m.mouseDown = true
			m.Cursor = hit.Key
			m.Tracker.PointerDown(hit.Key)
		case views.HitSelectMonth:
			m = m.applyMonth(hit.Month, true)
		case views.HitDeselectMonth:
			m = m.applyMonth(hit.Month, false)
		case views.HitSelectAll:
			m.Tracker.SelectAllDays()
			m.Status = StatusBar{Text: fmt.Sprintf("selected all %d days", g.Len())}
		case views.HitDeselectAll:
			m.Tracker.DeselectAllDays()
			m.Status = StatusBar{Text: "selection cleared"}
		case views.HitTheme:
			m = m.toggleTheme()
		}
	case tea.MouseActionMotion:
		if !m.mouseDown {
			return m
		}
		if !views.InGrid(msg.X, msg.Y) {
			return m.releaseMouse(false)
		}
		k := views.CellAt(g, msg.X, msg.Y)
		if k != "" {
			m.Cursor = k
		}
		m.Tracker.PointerMove(k)
	case tea.MouseActionRelease:
		return m.releaseMouse(true)
	}
	return m
}

// releaseMouse ends a mouse gesture; up is false when the pointer left the
// grid or the terminal lost focus.
func (m Model) releaseMouse(up bool) Model {
	if !m.mouseDown {
		return m
	}
	m.mouseDown = false
	m.Anchor = ""
	if up {
		m.Tracker.PointerUp()
	} else {
		m.Tracker.PointerLeave()
	}
	return m
}
