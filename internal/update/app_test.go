package update

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sandeepkv93/daytally/internal/storage"
	"github.com/sandeepkv93/daytally/internal/tracker"
	"github.com/sandeepkv93/daytally/internal/views"
)

func newTestModel(t *testing.T, animate bool) Model {
	t.Helper()
	tr := tracker.New(storage.NewMemoryStore(), tracker.Options{Year: 2025})
	cfg := DefaultRuntimeConfig()
	cfg.Animate = animate
	return NewModel(tr, cfg, nil)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mouseAt(t *testing.T, m Model, action tea.MouseAction, key string) tea.MouseMsg {
	t.Helper()
	x, y, ok := views.CellPosition(m.Tracker.Grid(), key)
	if !ok {
		t.Fatalf("no cell for %s", key)
	}
	return tea.MouseMsg{X: x + 1, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t, false)
	if !m.Tracker.Grid().Contains(m.Cursor) {
		t.Fatalf("cursor %q should be a day of the year", m.Cursor)
	}
	if m.Snapshot().Year != 2025 || m.Snapshot().Stats.Target != 183 {
		t.Fatalf("expected initial snapshot from tracker, got %+v", m.Snapshot())
	}
	if m.sink.renders == 0 {
		t.Fatal("expected the tracker to render into the model")
	}
}

func TestKeyboardCursorAndToggle(t *testing.T) {
	m := newTestModel(t, false)
	m.Cursor = "2025-01-01"
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Cursor != "2025-01-01" {
		t.Fatalf("cursor should clamp at year start, got %s", m.Cursor)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, runes("j"))
	if m.Cursor != "2025-01-09" {
		t.Fatalf("expected 2025-01-09, got %s", m.Cursor)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if !m.Tracker.IsSelected("2025-01-09") || !m.Snapshot().IsSelected("2025-01-09") {
		t.Fatal("space should toggle the cursor day")
	}
	if m.counter.Shown() != 1 {
		t.Fatalf("counter should jump without animation, got %d", m.counter.Shown())
	}
}

func TestKeyboardRange(t *testing.T) {
	m := newTestModel(t, false)
	m.Cursor = "2025-03-03"
	m = send(t, m, runes("v"), runes("l"), runes("l"))
	if m.Snapshot().State != tracker.Dragging || m.Snapshot().Preview["2025-03-05"] != tracker.PreviewSelect {
		t.Fatalf("expected drag preview, got %+v", m.Snapshot())
	}
	m = send(t, m, runes("l"), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Tracker.SelectedDates(); len(got) != 4 || got[0] != "2025-03-03" || got[3] != "2025-03-06" {
		t.Fatalf("unexpected range: %v", got)
	}
	if m.Anchor != "" {
		t.Fatal("anchor should clear after apply")
	}

	m = send(t, m, runes("v"), runes("j"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.Tracker.SelectedCount() != 4 || len(m.Snapshot().Preview) != 0 {
		t.Fatal("esc should drop the range without changes")
	}
}

func TestMouseDragEndToEnd(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m,
		mouseAt(t, m, tea.MouseActionPress, "2025-03-03"),
		mouseAt(t, m, tea.MouseActionMotion, "2025-03-04"),
		mouseAt(t, m, tea.MouseActionMotion, "2025-03-07"),
	)
	if m.Snapshot().State != tracker.Dragging || len(m.Snapshot().Preview) != 5 {
		t.Fatalf("expected five previewed days, got %+v", m.Snapshot().Preview)
	}
	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	if m.Tracker.SelectedCount() != 5 || m.Cursor != "2025-03-07" {
		t.Fatalf("expected 5 selected and cursor on last day, got %d %s", m.Tracker.SelectedCount(), m.Cursor)
	}

	// Starting on a selected day clears the range.
	m = send(t, m,
		mouseAt(t, m, tea.MouseActionPress, "2025-03-05"),
		mouseAt(t, m, tea.MouseActionMotion, "2025-03-10"),
		tea.MouseMsg{Action: tea.MouseActionRelease},
	)
	if got := m.Tracker.SelectedDates(); len(got) != 2 || got[1] != "2025-03-04" {
		t.Fatalf("unexpected selection after deselect drag: %v", got)
	}
}

func TestMarkKeyIgnoredDuringMouseDrag(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m,
		mouseAt(t, m, tea.MouseActionPress, "2025-04-01"),
		mouseAt(t, m, tea.MouseActionMotion, "2025-04-03"),
		runes("v"),
		tea.MouseMsg{Action: tea.MouseActionRelease},
	)
	if m.Anchor != "" {
		t.Fatalf("anchor should stay empty, got %q", m.Anchor)
	}
	if m.Tracker.SelectedCount() != 3 || m.Snapshot().State != tracker.Idle {
		t.Fatalf("mouse drag should apply on release, got %v", m.Tracker.SelectedDates())
	}

	m = send(t, m, runes("v"))
	if m.Anchor != "2025-04-03" || m.Snapshot().State != tracker.PressedNoDrag {
		t.Fatalf("expected a fresh keyboard range, anchor=%q state=%s", m.Anchor, m.Snapshot().State)
	}
}

func TestMouseClickTogglesAndLeaveFinalizes(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, mouseAt(t, m, tea.MouseActionPress, "2025-06-10"), tea.MouseMsg{Action: tea.MouseActionRelease})
	if !m.Tracker.IsSelected("2025-06-10") {
		t.Fatal("click should toggle")
	}

	m = send(t, m,
		mouseAt(t, m, tea.MouseActionPress, "2025-06-20"),
		mouseAt(t, m, tea.MouseActionMotion, "2025-06-22"),
		tea.MouseMsg{X: views.GridWidth + 5, Y: 2, Action: tea.MouseActionMotion},
	)
	if m.Tracker.SelectedCount() != 4 || m.Snapshot().State != tracker.Idle {
		t.Fatalf("leaving the grid should finalize, got %v", m.Tracker.SelectedDates())
	}
	m = send(t, m, mouseAt(t, m, tea.MouseActionMotion, "2025-06-25"), tea.MouseMsg{Action: tea.MouseActionRelease})
	if m.Tracker.SelectedCount() != 4 {
		t.Fatal("events after leave must be ignored")
	}

	m = send(t, m, mouseAt(t, m, tea.MouseActionPress, "2025-07-01"), tea.BlurMsg{})
	if m.Tracker.IsSelected("2025-07-01") || m.Snapshot().State != tracker.Idle {
		t.Fatal("blur during a bare press should discard it")
	}
}

func TestMouseButtons(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, tea.MouseMsg{X: views.ToolbarButtonPosition(views.HitSelectAll), Y: views.ToolbarLine, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Tracker.SelectedCount() != 365 {
		t.Fatalf("select all button: got %d", m.Tracker.SelectedCount())
	}

	x, y := views.MonthButtonPosition(time.February, false)
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Tracker.SelectedCount() != 337 {
		t.Fatalf("deselect month button: got %d", m.Tracker.SelectedCount())
	}

	m = send(t, m, tea.MouseMsg{X: views.ToolbarButtonPosition(views.HitTheme), Y: views.ToolbarLine, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Snapshot().Light {
		t.Fatal("theme button should switch to light")
	}

	m = send(t, m, tea.MouseMsg{X: views.ToolbarButtonPosition(views.HitDeselectAll), Y: views.ToolbarLine, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.Tracker.SelectedCount() != 337 {
		t.Fatal("right button must be ignored")
	}
}

func TestBulkKeys(t *testing.T) {
	m := newTestModel(t, false)
	m.Cursor = "2025-09-15"
	m = send(t, m, runes("m"))
	if m.Tracker.SelectedCount() != 30 {
		t.Fatalf("m should select September, got %d", m.Tracker.SelectedCount())
	}
	m = send(t, m, runes("a"), runes("M"))
	if m.Tracker.SelectedCount() != 335 {
		t.Fatalf("expected 335 after clearing September, got %d", m.Tracker.SelectedCount())
	}
	m = send(t, m, runes("x"), runes("t"))
	if m.Tracker.SelectedCount() != 0 || !m.Tracker.LightTheme() {
		t.Fatal("x should clear and t should switch theme")
	}
}

func TestPaletteCommands(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, runes("/"), runes("select-month feb"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Palette.Active {
		t.Fatal("palette should close after enter")
	}
	if m.Tracker.SelectedCount() != 28 || m.Status.IsError {
		t.Fatalf("unexpected result: count=%d status=%+v", m.Tracker.SelectedCount(), m.Status)
	}

	m = send(t, m, runes("/"), runes("select 2024-12-30 2025-01-02"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "invalid_argument") {
		t.Fatalf("expected invalid argument status, got %+v", m.Status)
	}

	m = send(t, m, runes("/"), runes("goto 2025-11-11"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Cursor != "2025-11-11" {
		t.Fatalf("goto should move cursor, got %s", m.Cursor)
	}

	m = send(t, m, runes("/"), runes("bogus"), tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "unknown_command") {
		t.Fatalf("expected unknown command status, got %+v", m.Status)
	}

	m = send(t, m, runes("/"), runes("all"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.Palette.Active || m.Tracker.SelectedCount() != 28 {
		t.Fatal("esc should close the palette without running it")
	}
}

func TestPaletteExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "days.ics")
	m := newTestModel(t, false)
	m = send(t, m, runes("/"), runes("select 2025-04-01 2025-04-03"), tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, runes("/"), runes("export "+path), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Status.IsError || !strings.Contains(m.Status.Text, "exported 3") {
		t.Fatalf("unexpected export status: %+v", m.Status)
	}

	other := newTestModel(t, false)
	other = send(t, other, runes("/"), runes("import "+path), tea.KeyMsg{Type: tea.KeyEnter})
	if other.Tracker.SelectedCount() != 3 {
		t.Fatalf("import should select 3 days, got %d (%+v)", other.Tracker.SelectedCount(), other.Status)
	}
	other = send(t, other, runes("/"), runes("import "+path+".missing"), tea.KeyMsg{Type: tea.KeyEnter})
	if !other.Status.IsError {
		t.Fatal("missing file should report an error")
	}
}

func TestCounterAnimation(t *testing.T) {
	m := newTestModel(t, true)
	updated, cmd := m.Update(runes("a"))
	m = updated.(Model)
	if cmd == nil {
		t.Fatal("expected an animation tick")
	}
	if m.counter.Shown() != 0 {
		t.Fatalf("counter should start from the old value, got %d", m.counter.Shown())
	}
	for i := 0; i < 600 && m.counter.running; i++ {
		m = send(t, m, countTickMsg(time.Now()))
	}
	if m.counter.running || m.counter.Shown() != 365 {
		t.Fatalf("counter should settle on 365, got %d", m.counter.Shown())
	}
}

func TestHelpAndView(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, runes("?"))
	if !m.HelpVisible || !strings.Contains(ansi.Strip(m.helpRendered), "select-month") {
		t.Fatal("help should list palette commands")
	}
	out := ansi.Strip(m.View())
	if !strings.Contains(out, "daytally 2025") || !strings.Contains(out, "0 / 183 days") {
		t.Fatalf("unexpected view:\n%s", out)
	}

	updated, cmd := m.Update(runes("q"))
	if cmd == nil || !updated.(Model).Quitting {
		t.Fatal("q should quit")
	}
}

func TestUpdateStatusAndError(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, SetStatusMsg{Text: "ready"})
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	m = send(t, m, AppErrorMsg{Err: errors.New("boom")})
	if m.LastError == nil || !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error status: %+v", m.Status)
	}
	if len(m.Notifications) != 2 || m.Notifications[1].Level != "error" {
		t.Fatalf("expected two notifications, got %+v", m.Notifications)
	}

	m = send(t, m, ClearStatusMsg{})
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got: %+v", m.Status)
	}
}
