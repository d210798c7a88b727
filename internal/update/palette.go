package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/daytally/internal/commands"
	"github.com/sandeepkv93/daytally/internal/icsio"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

func invalid(format string, args ...any) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m.closePalette()
	}

	tr := m.Tracker
	year := tr.Year()
	res, err := commands.Execute(cmd, commands.Handlers{
		SelectAll: func() (commands.Result, error) {
			tr.SelectAllDays()
			return commands.Result{Message: fmt.Sprintf("selected all %d days", tr.Grid().Len())}, nil
		},
		DeselectAll: func() (commands.Result, error) {
			tr.DeselectAllDays()
			return commands.Result{Message: "selection cleared"}, nil
		},
		SelectMonth: func(a commands.MonthArgs) (commands.Result, error) {
			n := tr.SelectMonth(year, a.Month)
			return commands.Result{Message: fmt.Sprintf("selected %s (%d days)", a.Month, n)}, nil
		},
		DeselectMonth: func(a commands.MonthArgs) (commands.Result, error) {
			n := tr.DeselectMonth(year, a.Month)
			return commands.Result{Message: fmt.Sprintf("cleared %s (%d days)", a.Month, n)}, nil
		},
		Select: func(a commands.RangeArgs) (commands.Result, error) {
			n, err := tr.SelectRange(a.From, a.To)
			if err != nil {
				return commands.Result{}, invalid("%v", err)
			}
			return commands.Result{Message: fmt.Sprintf("selected %d day(s)", n)}, nil
		},
		Deselect: func(a commands.RangeArgs) (commands.Result, error) {
			n, err := tr.DeselectRange(a.From, a.To)
			if err != nil {
				return commands.Result{}, invalid("%v", err)
			}
			return commands.Result{Message: fmt.Sprintf("cleared %d day(s)", n)}, nil
		},
		Theme: func(a commands.ThemeArgs) (commands.Result, error) {
			light := tr.LightTheme()
			if a.Mode == commands.ThemeToggle ||
				(a.Mode == commands.ThemeLight && !light) ||
				(a.Mode == commands.ThemeDark && light) {
				light = tr.ToggleTheme()
			}
			if light {
				return commands.Result{Message: "theme: light"}, nil
			}
			return commands.Result{Message: "theme: dark"}, nil
		},
		Goto: func(a commands.GotoArgs) (commands.Result, error) {
			if !tr.Grid().Contains(a.Key) {
				return commands.Result{}, invalid("%s is not in %d", a.Key, year)
			}
			m.Cursor = a.Key
			return commands.Result{Message: "cursor at " + a.Key}, nil
		},
		Export: func(a commands.FileArgs) (commands.Result, error) {
			n, err := icsio.ExportFile(a.Path, year, tr.SelectedDates())
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("exported %d day(s) to %s", n, a.Path)}, nil
		},
		Import: func(a commands.FileArgs) (commands.Result, error) {
			keys, err := icsio.ImportFile(a.Path)
			if err != nil {
				return commands.Result{}, err
			}
			added, skipped := tr.Import(keys)
			return commands.Result{Message: fmt.Sprintf("imported %d day(s), %d outside %d", added, skipped, year)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message}
		m.notify("Command", res.Message, "info")
	}
	if cmd.Type == commands.TypeTheme && m.HelpVisible {
		m.helpRendered = m.renderHelpView()
	}
	return m.closePalette()
}
