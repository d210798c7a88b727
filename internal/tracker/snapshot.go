package tracker

import "github.com/sandeepkv93/daytally/internal/selection"

type PreviewMode int

const (
	PreviewNone PreviewMode = iota
	PreviewSelect
	PreviewDeselect
)

func (p PreviewMode) String() string {
	switch p {
	case PreviewSelect:
		return "select"
	case PreviewDeselect:
		return "deselect"
	default:
		return "none"
	}
}

// Snapshot is a full restatement of what a renderer needs to draw.
type Snapshot struct {
	Year     int
	Selected map[string]bool
	Preview  map[string]PreviewMode
	Stats    selection.Stats
	ByMonth  [12]int
	Light    bool
	State    State
}

func (s Snapshot) IsSelected(key string) bool { return s.Selected[key] }

// Listener receives a Snapshot after every mutation, preview change and theme
// change.
type Listener interface {
	Render(Snapshot)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Snapshot)

func (f ListenerFunc) Render(s Snapshot) { f(s) }

func (t *Tracker) Snapshot() Snapshot {
	selected := make(map[string]bool, t.store.Count())
	for _, k := range t.store.Keys() {
		selected[k] = true
	}
	preview := make(map[string]PreviewMode, len(t.preview))
	for k, v := range t.preview {
		preview[k] = v
	}
	return Snapshot{
		Year:     t.grid.Year,
		Selected: selected,
		Preview:  preview,
		Stats:    t.stats,
		ByMonth:  t.byMonth,
		Light:    t.theme.Light(),
		State:    t.state,
	}
}
