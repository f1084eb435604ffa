package drift

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// SourceFidelity describes a gesture source's input quality. The coarse
// fallback lacks velocity smoothing, so classification thresholds are
// reduced for it.
type SourceFidelity uint8

const (
	FidelityRich SourceFidelity = iota
	FidelityCoarse
)

// PointerSample is one pointer's state for the current frame.
type PointerSample struct {
	ID      int
	X, Y    float64
	Pressed bool
}

// WheelSample carries a frame's wheel offset and the cursor position it
// applies to. YOff is zero when no wheel input occurred.
type WheelSample struct {
	X, Y float64
	YOff float64
}

// GestureSource supplies raw per-frame input to a Gestures normalizer.
// Two implementations exist: the rich Ebitengine-polled backend and the
// caller-fed ManualSource fallback. The selection happens once at
// construction; consumers of the canonical gesture stream never see which
// one is active.
type GestureSource interface {
	// Poll appends the current frame's pointer samples to buf and returns
	// the result along with any wheel input since the previous call.
	Poll(buf []PointerSample) ([]PointerSample, WheelSample)
	// Fidelity reports the source's input quality.
	Fidelity() SourceFidelity
}

// --- Rich backend ---

// ebitenSource polls Ebitengine for mouse, touch, and wheel state each frame.
type ebitenSource struct {
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// newRichSource probes the Ebitengine input API once and returns the rich
// source. On hosts where the backend cannot initialize the probe panics;
// that is recovered and reported as an error so construction can fall back.
func newRichSource() (src *ebitenSource, err error) {
	defer func() {
		if r := recover(); r != nil {
			src = nil
			err = fmt.Errorf("input probe failed: %v", r)
		}
	}()
	_, _ = ebiten.CursorPosition()
	return &ebitenSource{}, nil
}

func (s *ebitenSource) Fidelity() SourceFidelity { return FidelityRich }

// Poll reads the mouse (pointer 0), active touches (pointers 1-9), and the
// wheel offset for this frame.
func (s *ebitenSource) Poll(buf []PointerSample) ([]PointerSample, WheelSample) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	buf = append(buf, PointerSample{
		ID: 0, X: sx, Y: sy,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	})

	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		buf = append(buf, PointerSample{ID: slot, X: float64(tx), Y: float64(ty), Pressed: true})
	}
	// Free slots whose touch lifted this frame. The normalizer observes the
	// missing sample as a release at the last known position.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !active[i] {
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}

	_, wy := ebiten.Wheel()
	return buf, WheelSample{X: sx, Y: sy, YOff: wy}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *ebitenSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// --- Manual fallback ---

// manualEvent is a single queued synthetic input event.
type manualEvent struct {
	id      int
	x, y    float64
	pressed bool
	wheel   bool
	yoff    float64
}

// ManualSource is the fallback gesture source: callers feed raw pointer,
// touch, and wheel events and each Poll consumes exactly one queued event,
// so a fed sequence plays back one event per frame. It is functionally
// inferior to the rich backend (no velocity smoothing) but API-compatible.
//
// ManualSource is also the deterministic input driver for tests and scripted
// replay.
type ManualSource struct {
	queue  []manualEvent
	state  [maxPointers]PointerSample
	active [maxPointers]bool
}

// NewManualSource creates an empty manual source.
func NewManualSource() *ManualSource {
	return &ManualSource{}
}

func (m *ManualSource) Fidelity() SourceFidelity { return FidelityCoarse }

// Press queues a primary-pointer press at the given screen coordinates.
func (m *ManualSource) Press(x, y float64) { m.feed(0, x, y, true) }

// Move queues a primary-pointer move with the pointer held down.
func (m *ManualSource) Move(x, y float64) { m.feed(0, x, y, true) }

// Release queues a primary-pointer release.
func (m *ManualSource) Release(x, y float64) { m.feed(0, x, y, false) }

// TouchPress queues a touch press for the given slot (1-9).
func (m *ManualSource) TouchPress(id int, x, y float64) { m.feed(id, x, y, true) }

// TouchMove queues a touch move for the given slot.
func (m *ManualSource) TouchMove(id int, x, y float64) { m.feed(id, x, y, true) }

// TouchRelease queues a touch release for the given slot.
func (m *ManualSource) TouchRelease(id int, x, y float64) { m.feed(id, x, y, false) }

// Wheel queues a wheel offset at the given cursor position.
func (m *ManualSource) Wheel(x, y, yoff float64) {
	m.queue = append(m.queue, manualEvent{x: x, y: y, wheel: true, yoff: yoff})
}

// Pending returns the number of queued events not yet consumed.
func (m *ManualSource) Pending() int { return len(m.queue) }

func (m *ManualSource) feed(id int, x, y float64, pressed bool) {
	if id < 0 || id >= maxPointers {
		return
	}
	m.queue = append(m.queue, manualEvent{id: id, x: x, y: y, pressed: pressed})
}

// Poll consumes at most one queued event, then reports the state of every
// live pointer. A released pointer is reported unpressed exactly once so the
// normalizer observes the release position.
func (m *ManualSource) Poll(buf []PointerSample) ([]PointerSample, WheelSample) {
	var wheel WheelSample
	if len(m.queue) > 0 {
		evt := m.queue[0]
		copy(m.queue, m.queue[1:])
		m.queue = m.queue[:len(m.queue)-1]

		if evt.wheel {
			wheel = WheelSample{X: evt.x, Y: evt.y, YOff: evt.yoff}
		} else {
			m.state[evt.id] = PointerSample{ID: evt.id, X: evt.x, Y: evt.y, Pressed: evt.pressed}
			m.active[evt.id] = true
		}
	}

	for i := range m.state {
		if !m.active[i] {
			continue
		}
		buf = append(buf, m.state[i])
		if !m.state[i].Pressed {
			m.active[i] = false
		}
	}
	return buf, wheel
}

// --- Host input helpers ---

// Keyboard drives a canvas's keyboard navigation from Ebitengine key state.
// Arrow keys pan while held; Ctrl/Cmd with 0, -, or = fire once per press.
// The zero value is ready to use; keep one per canvas.
type Keyboard struct {
	prevZero  bool
	prevMinus bool
	prevEqual bool
}

// Poll reads the current keyboard state and applies navigation to c.
// No-op while the canvas is blurred.
func (k *Keyboard) Poll(c *Canvas) {
	if !c.Focused() {
		return
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		c.ArrowPan(-1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		c.ArrowPan(1, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		c.ArrowPan(0, -1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		c.ArrowPan(0, 1)
	}

	mod := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	zero := mod && ebiten.IsKeyPressed(ebiten.KeyDigit0)
	if zero && !k.prevZero {
		c.KeyZoomReset()
	}
	k.prevZero = zero

	minus := mod && ebiten.IsKeyPressed(ebiten.KeyMinus)
	if minus && !k.prevMinus {
		c.KeyZoomOut()
	}
	k.prevMinus = minus

	equal := mod && ebiten.IsKeyPressed(ebiten.KeyEqual)
	if equal && !k.prevEqual {
		c.KeyZoomIn()
	}
	k.prevEqual = equal
}

// PollDragPan drives a canvas's drag-pan state machine from the current
// mouse state. Middle button, or left button with Shift held, pans the
// camera 1:1 with the pointer. Call once per frame; the drag ends
// unconditionally when the buttons release, so no listener is left attached.
func PollDragPan(c *Canvas) {
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)

	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	shiftLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		ebiten.IsKeyPressed(ebiten.KeyShift)
	active := c.Focused() && (middle || shiftLeft)

	switch {
	case active && !c.DragPanning():
		c.BeginDragPan(sx, sy)
	case active:
		c.DragPanTo(sx, sy)
	default:
		c.EndDragPan()
	}
}
