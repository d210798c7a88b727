// Package tracker is the selection engine: it turns pointer and touch input
// into changes to the selected-day set, keeps statistics current and tells a
// renderer about every change.
package tracker

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sandeepkv93/daytally/internal/model"
	"github.com/sandeepkv93/daytally/internal/selection"
	"github.com/sandeepkv93/daytally/internal/storage"
	"github.com/sandeepkv93/daytally/internal/theme"
)

const DefaultTouchThreshold = 10.0

type Options struct {
	Year           int
	Target         int
	TouchThreshold float64
	// KeepUnknown disables dropping persisted keys that are not in the grid.
	KeepUnknown bool
	Logger      *log.Logger
	Listener    Listener
}

// Tracker owns the grid, the selection store, the drag session and the theme.
// It is not safe for concurrent use; all input arrives on one goroutine.
type Tracker struct {
	grid      *model.Grid
	store     *selection.Store
	theme     *theme.Controller
	logger    *log.Logger
	listener  Listener
	target    int
	threshold float64
	stats     selection.Stats
	byMonth   [12]int

	state   State
	drag    dragSession
	preview map[string]PreviewMode
}

// SelectionNamespace is the KV namespace holding the selected keys of year.
func SelectionNamespace(year int) string {
	return fmt.Sprintf("calendar-selected-days-%d", year)
}

func ThemeNamespace(year int) string {
	return fmt.Sprintf("calendar-theme-%d", year)
}

// New builds the grid for opts.Year and restores persisted state from kv.
func New(kv storage.KV, opts Options) *Tracker {
	if opts.Year == 0 {
		opts.Year = time.Now().Year()
	}
	if opts.Target <= 0 {
		opts.Target = selection.DefaultTarget
	}
	if opts.TouchThreshold <= 0 {
		opts.TouchThreshold = DefaultTouchThreshold
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	t := &Tracker{
		grid:      model.BuildGrid(opts.Year),
		logger:    logger,
		listener:  opts.Listener,
		target:    opts.Target,
		threshold: opts.TouchThreshold,
		preview:   make(map[string]PreviewMode),
	}
	t.store = selection.NewStore(kv, SelectionNamespace(opts.Year), logger)
	t.theme = theme.NewController(kv, ThemeNamespace(opts.Year), logger)

	var valid func(string) bool
	if !opts.KeepUnknown {
		valid = t.grid.Contains
	}
	t.store.Load(valid)
	t.theme.Load()
	t.refreshStats()
	return t
}

// SetListener replaces the renderer and immediately sends it a snapshot.
func (t *Tracker) SetListener(l Listener) {
	t.listener = l
	t.notify()
}

func (t *Tracker) Grid() *model.Grid { return t.grid }

func (t *Tracker) Year() int { return t.grid.Year }

func (t *Tracker) State() State { return t.state }

// SelectedDates returns the selection sorted chronologically.
func (t *Tracker) SelectedDates() []string { return t.store.Keys() }

func (t *Tracker) SelectedCount() int { return t.store.Count() }

func (t *Tracker) IsSelected(key string) bool { return t.store.Contains(key) }

func (t *Tracker) Stats() selection.Stats { return t.stats }

// MonthCounts returns selected days per month, January first.
func (t *Tracker) MonthCounts() [12]int { return t.byMonth }

// Dropped reports persisted keys discarded on load because the grid lacks them.
func (t *Tracker) Dropped() int { return t.store.Dropped() }

func (t *Tracker) Preview(key string) PreviewMode { return t.preview[key] }

func (t *Tracker) LightTheme() bool { return t.theme.Light() }

func (t *Tracker) ToggleTheme() bool {
	light := t.theme.Toggle()
	t.notify()
	return light
}

func (t *Tracker) refreshStats() {
	t.stats = selection.ComputeStats(t.store.Count(), t.target)
	var byMonth [12]int
	for _, key := range t.store.Keys() {
		if ref, ok := t.grid.Ref(key); ok {
			byMonth[ref.Month]++
		}
	}
	t.byMonth = byMonth
}

// commit applies fn to the store as one unit: mutate, recompute statistics,
// notify the renderer, then persist once.
func (t *Tracker) commit(fn func()) {
	t.store.Batch(func() {
		fn()
		t.refreshStats()
		t.notify()
	})
}

func (t *Tracker) notify() {
	if t.listener == nil {
		return
	}
	t.listener.Render(t.Snapshot())
}

// resolve maps a raw key to a real grid day; anything else is "no target".
func (t *Tracker) resolve(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	day, ok := t.grid.Lookup(key)
	if !ok || day.Empty {
		return "", false
	}
	return day.Key, true
}
