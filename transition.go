package drift

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionDelta is the geometric difference between an element's expanded
// geometry and its dock-slot geometry, expressed as the translation and
// per-axis scale that maps the source rect onto the target rect. The UI layer
// consumes it as enter/exit transition parameters so minimize and restore
// render as continuous motion rather than a cut.
type TransitionDelta struct {
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
}

// Transition is a computed shared-element transition for one element.
type Transition struct {
	ID    string
	From  Rect
	To    Rect
	Delta TransitionDelta
	// Delay staggers dock restores by the element's dock position.
	Delay float64
}

// TransitionCoordinator computes enter/exit geometry deltas between canvas
// and dock for elements tracked by a SpatialRegistry.
type TransitionCoordinator struct {
	cfg Config
	reg *SpatialRegistry
}

// NewTransitionCoordinator creates a coordinator over the given registry.
func NewTransitionCoordinator(cfg Config, reg *SpatialRegistry) *TransitionCoordinator {
	return &TransitionCoordinator{cfg: cfg.withDefaults(), reg: reg}
}

// Config returns the coordinator's effective configuration with defaults
// applied.
func (t *TransitionCoordinator) Config() Config {
	return t.cfg
}

// computeDelta maps from onto to. Zero-size sources produce unit scale so the
// delta stays finite.
func computeDelta(from, to Rect) TransitionDelta {
	d := TransitionDelta{
		TranslateX: to.X - from.X,
		TranslateY: to.Y - from.Y,
		ScaleX:     1,
		ScaleY:     1,
	}
	if from.Width > 0 {
		d.ScaleX = to.Width / from.Width
	}
	if from.Height > 0 {
		d.ScaleY = to.Height / from.Height
	}
	return d
}

// SlotRect returns the dock-slot geometry for position index on the given
// edge, for a container of the given size. Left and right docks stack
// downward; the bottom dock runs rightward.
func (t *TransitionCoordinator) SlotRect(edge DockEdge, index int, containerW, containerH float64) Rect {
	size := t.cfg.DockIconSize
	gap := t.cfg.DockGap
	margin := t.cfg.DockMargin
	offset := margin + float64(index)*(size+gap)

	switch edge {
	case DockLeft:
		return Rect{X: margin, Y: offset, Width: size, Height: size}
	case DockRight:
		return Rect{X: containerW - margin - size, Y: offset, Width: size, Height: size}
	default: // DockBottom
		return Rect{X: offset, Y: containerH - margin - size, Width: size, Height: size}
	}
}

// Exit computes the minimize transition for an element: from its preserved
// expanded geometry to its dock slot. The element must already be minimized;
// otherwise ok is false.
func (t *TransitionCoordinator) Exit(id string, containerW, containerH float64) (Transition, bool) {
	el, ok := t.reg.Element(id)
	if !ok || el.State != Minimized {
		return Transition{}, false
	}
	from := el.savedGeometry
	to := t.SlotRect(el.Edge, t.reg.DockIndex(id), containerW, containerH)
	return Transition{
		ID:    id,
		From:  from,
		To:    to,
		Delta: computeDelta(from, to),
	}, true
}

// Enter computes the restore transition for a minimized element: from its
// dock slot back to its preserved geometry, with a stagger delay of
// dock index × StaggerDelay so batch restores cascade.
func (t *TransitionCoordinator) Enter(id string, containerW, containerH float64) (Transition, bool) {
	el, ok := t.reg.Element(id)
	if !ok || el.State != Minimized {
		return Transition{}, false
	}
	index := t.reg.DockIndex(id)
	from := t.SlotRect(el.Edge, index, containerW, containerH)
	to := el.savedGeometry
	return Transition{
		ID:    id,
		From:  from,
		To:    to,
		Delta: computeDelta(from, to),
		Delay: float64(index) * t.cfg.StaggerDelay,
	}, true
}

// RectTween animates a rectangle's position and size toward a target over a
// fixed duration, with an optional start delay. Call Update each frame; Done
// is set once all four fields have landed.
type RectTween struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	delay  float64
	Done   bool
}

// NewRectTween creates a tween moving rect from its current value to the
// given target over duration seconds, starting after delay seconds.
// The rect pointer is written in place on every update.
func NewRectTween(rect *Rect, to Rect, duration, delay float64) *RectTween {
	d := float32(duration)
	rt := &RectTween{delay: delay}
	rt.tweens[0] = gween.New(float32(rect.X), float32(to.X), d, ease.OutQuint)
	rt.tweens[1] = gween.New(float32(rect.Y), float32(to.Y), d, ease.OutQuint)
	rt.tweens[2] = gween.New(float32(rect.Width), float32(to.Width), d, ease.OutQuint)
	rt.tweens[3] = gween.New(float32(rect.Height), float32(to.Height), d, ease.OutQuint)
	rt.fields[0] = &rect.X
	rt.fields[1] = &rect.Y
	rt.fields[2] = &rect.Width
	rt.fields[3] = &rect.Height
	return rt
}

// Update advances the tween by dt seconds, consuming the delay first.
func (rt *RectTween) Update(dt float64) {
	if rt.Done {
		return
	}
	if rt.delay > 0 {
		rt.delay -= dt
		if rt.delay > 0 {
			return
		}
		dt = -rt.delay
		rt.delay = 0
		if dt == 0 {
			return
		}
	}
	allDone := true
	for i, tw := range rt.tweens {
		val, finished := tw.Update(float32(dt))
		*rt.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	rt.Done = allDone
}

// Stagger returns per-element restore transitions for every element docked on
// the given edge, in dock order with cascading delays. Useful for
// restore-all interactions.
func (t *TransitionCoordinator) Stagger(edge DockEdge, containerW, containerH float64) []Transition {
	docked := t.reg.DockElements(edge)
	out := make([]Transition, 0, len(docked))
	for _, el := range docked {
		if tr, ok := t.Enter(el.ID, containerW, containerH); ok {
			out = append(out, tr)
		}
	}
	return out
}
