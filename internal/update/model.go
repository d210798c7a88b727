package update

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/daytally/internal/model"
	"github.com/sandeepkv93/daytally/internal/tracker"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	Toggle        key.Binding
	Mark          key.Binding
	Apply         key.Binding
	Cancel        key.Binding
	SelectAll     key.Binding
	DeselectAll   key.Binding
	SelectMonth   key.Binding
	DeselectMonth key.Binding
	Theme         key.Binding
	Palette       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func DefaultKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Left:          key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
		Right:         key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous week")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Toggle:        key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle day")),
		Mark:          key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "start range")),
		Apply:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply range")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel range")),
		SelectAll:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		DeselectAll:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "deselect all")),
		SelectMonth:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "select month")),
		DeselectMonth: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "deselect month")),
		Theme:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Palette:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "command")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Mark, k.SelectMonth, k.Theme, k.Palette, k.Help, k.Quit}
}

func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Toggle, k.Mark, k.Apply, k.Cancel},
		{k.SelectAll, k.DeselectAll, k.SelectMonth, k.DeselectMonth},
		{k.Theme, k.Palette, k.Help, k.Quit},
	}
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// snapshotSink is the tracker's renderer. Model is copied on every Update, so
// the sink lives behind a pointer shared by all copies.
type snapshotSink struct {
	last    tracker.Snapshot
	renders int
}

func (s *snapshotSink) Render(snap tracker.Snapshot) {
	s.last = snap
	s.renders++
}

type Model struct {
	Tracker       *tracker.Tracker
	Cursor        string
	Anchor        string
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error
	Width         int
	Height        int

	mouseDown      bool
	logger         *log.Logger
	sink           *snapshotSink
	counter        counterAnim
	commandInput   textinput.Model
	targetProgress progress.Model
	helpModel      help.Model
	helpRendered   string
	now            func() time.Time
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// NewModel wires the TUI to tr. The tracker's listener is replaced.
func NewModel(tr *tracker.Tracker, cfg RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		Tracker: tr,
		Keys:    DefaultKeyMap(),
		logger:  logger,
		sink:    &snapshotSink{},
		now:     time.Now,
	}
	tr.SetListener(m.sink)
	m.Cursor = initialCursor(tr.Grid(), m.now())
	m.counter = newCounter(cfg.Animate, tr.SelectedCount())
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.targetProgress = progress.New(progress.WithWidth(24), progress.WithDefaultGradient())

	m.helpModel = help.New()
}

// initialCursor starts on today when it falls in the grid's year.
func initialCursor(g *model.Grid, now time.Time) string {
	if key := model.KeyOf(now); g.Contains(key) {
		return key
	}
	keys := g.Keys()
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// Snapshot is the last state the tracker reported.
func (m Model) Snapshot() tracker.Snapshot {
	return m.sink.last
}

func (m *Model) notify(title, body, level string) {
	if body == "" {
		return
	}
	n := Notification{Title: title, Body: body, Level: level, At: m.now().UTC()}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
	if level == "error" {
		m.logger.Warn(title, "detail", body)
	} else {
		m.logger.Debug(title, "detail", body)
	}
}

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}
