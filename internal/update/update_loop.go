package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daytally/internal/views"
)

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(fmt.Sprintf("daytally %d", m.Tracker.Year()))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		if m.Palette.Active {
			m = m.handlePaletteKey(typed)
			return m, m.counter.retarget(m.Tracker.SelectedCount())
		}
		if key.Matches(typed, m.Keys.Quit) {
			m.Quitting = true
			return m, tea.Quit
		}
		m = m.handleKey(typed)
		return m, m.counter.retarget(m.Tracker.SelectedCount())
	case tea.MouseMsg:
		m = m.handleMouse(typed)
		return m, m.counter.retarget(m.Tracker.SelectedCount())
	case tea.BlurMsg:
		m = m.releaseMouse(false)
		return m, m.counter.retarget(m.Tracker.SelectedCount())
	case tea.WindowSizeMsg:
		m.Width = typed.Width
		m.Height = typed.Height
		m.helpModel.Width = typed.Width
		return m, nil
	case countTickMsg:
		if m.counter.step(m.Tracker.SelectedCount()) {
			return m, countTickCmd()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	snap := m.Snapshot()
	header := fmt.Sprintf("%s | cursor: %s | %s", views.RenderHeader(snap.Year), m.Cursor, snap.State)
	if m.Anchor != "" {
		header += " from " + m.Anchor
	}

	helpView := ""
	if m.HelpVisible {
		helpView = m.helpRendered
	}
	return views.RenderApp(views.AppData{
		Light:   snap.Light,
		Header:  header,
		Toolbar: views.RenderToolbar(snap.Light),
		Stats: views.RenderStats(views.StatsData{
			Stats:       snap.Stats,
			Shown:       m.counter.Shown(),
			ProgressBar: m.targetProgress.ViewAs(snap.Stats.Progress),
			Light:       snap.Light,
		}),
		Year: views.RenderYear(views.YearData{
			Grid:     m.Tracker.Grid(),
			Snapshot: snap,
			Cursor:   m.Cursor,
			Anchor:   m.Anchor,
		}),
		Palette:     views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		StatusLine:  m.Status.Text,
		StatusError: m.Status.IsError,
		Help:        helpView,
		Footer:      m.helpModel.View(m.Keys),
	})
}
