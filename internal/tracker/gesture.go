package tracker

import "math"

type State int

const (
	Idle State = iota
	PressedNoDrag
	Dragging
	Finalizing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PressedNoDrag:
		return "pressed"
	case Dragging:
		return "dragging"
	case Finalizing:
		return "finalizing"
	default:
		return "unknown"
	}
}

type inputKind int

const (
	inputPointer inputKind = iota
	inputTouch
)

// dragSession lives from press until release, leave or cancel.
// intendedSelect is fixed at press time and applies to the whole range.
type dragSession struct {
	kind           inputKind
	start          string
	current        string
	intendedSelect bool
	moved          bool
	originX        float64
	originY        float64
	span           []string
}

// PointerDown starts a gesture on key. A key that is not a real day of the
// grid (including "") is ignored.
func (t *Tracker) PointerDown(key string) {
	t.press(inputPointer, key, 0, 0)
}

// PointerMove treats any move onto a real day as a drag.
func (t *Tracker) PointerMove(key string) {
	if t.state == Idle || t.drag.kind != inputPointer {
		return
	}
	t.moveTo(key)
}

func (t *Tracker) PointerUp() {
	if t.drag.kind != inputPointer {
		return
	}
	t.release()
}

// PointerLeave ends the gesture: a drag is applied, a bare press is dropped.
func (t *Tracker) PointerLeave() {
	if t.drag.kind != inputPointer {
		return
	}
	t.cancel()
}

// TouchStart records the press point so later moves can be told apart from a tap.
func (t *Tracker) TouchStart(key string, x, y float64) {
	t.press(inputTouch, key, x, y)
}

// TouchMove only starts dragging once the displacement from the press point
// exceeds the touch threshold.
func (t *Tracker) TouchMove(key string, x, y float64) {
	if t.state == Idle || t.drag.kind != inputTouch {
		return
	}
	if !t.drag.moved && math.Hypot(x-t.drag.originX, y-t.drag.originY) > t.threshold {
		t.drag.moved = true
	}
	if !t.drag.moved {
		return
	}
	t.moveTo(key)
}

func (t *Tracker) TouchEnd() {
	if t.drag.kind != inputTouch {
		return
	}
	t.release()
}

func (t *Tracker) TouchCancel() {
	if t.drag.kind != inputTouch {
		return
	}
	t.cancel()
}

// Abort drops the current gesture without touching the selection.
func (t *Tracker) Abort() {
	if t.state == Idle {
		return
	}
	t.discard()
}

func (t *Tracker) press(kind inputKind, key string, x, y float64) {
	if t.state != Idle {
		t.cancel()
	}
	k, ok := t.resolve(key)
	if !ok {
		return
	}
	t.drag = dragSession{
		kind:           kind,
		start:          k,
		intendedSelect: !t.store.Contains(k),
		originX:        x,
		originY:        y,
	}
	t.state = PressedNoDrag
	t.notify()
}

func (t *Tracker) moveTo(key string) {
	k, ok := t.resolve(key)
	if !ok {
		return
	}
	if t.state == PressedNoDrag {
		t.state = Dragging
	}
	if k == t.drag.current {
		return
	}
	t.drag.current = k
	t.drag.span = t.grid.DaysBetween(t.drag.start, k)

	mode := PreviewDeselect
	if t.drag.intendedSelect {
		mode = PreviewSelect
	}
	t.clearPreview()
	for _, d := range t.drag.span {
		t.preview[d] = mode
	}
	t.notify()
}

func (t *Tracker) release() {
	switch t.state {
	case PressedNoDrag:
		if t.drag.kind == inputTouch && t.drag.moved {
			t.discard()
			return
		}
		start := t.drag.start
		t.finish(func() { t.toggle(start) })
	case Dragging:
		t.finish(t.applySpan())
	}
}

func (t *Tracker) cancel() {
	switch t.state {
	case Dragging:
		t.finish(t.applySpan())
	case PressedNoDrag, Finalizing:
		t.discard()
	}
}

func (t *Tracker) applySpan() func() {
	span := t.drag.span
	selectSpan := t.drag.intendedSelect
	return func() {
		if selectSpan {
			t.store.SelectRange(span)
		} else {
			t.store.DeselectRange(span)
		}
	}
}

// finish applies the gesture result and resets the session inside a single
// commit, so the renderer sees the settled state once.
func (t *Tracker) finish(apply func()) {
	t.state = Finalizing
	t.commit(func() {
		apply()
		t.resetSession()
	})
}

func (t *Tracker) discard() {
	t.resetSession()
	t.notify()
}

// resetSession clears every preview marker, not just the last span.
func (t *Tracker) resetSession() {
	t.clearPreview()
	t.drag = dragSession{}
	t.state = Idle
}

func (t *Tracker) clearPreview() {
	for k := range t.preview {
		delete(t.preview, k)
	}
}

func (t *Tracker) toggle(key string) {
	if t.store.Contains(key) {
		t.store.Deselect(key)
	} else {
		t.store.Select(key)
	}
}
