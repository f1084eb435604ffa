package drift

import "math"

// GestureKind tags the canonical gesture union.
type GestureKind uint8

const (
	GestureSwipe GestureKind = iota
	GesturePinch
	GestureDrag
	GesturePan
	GestureTap
	GestureLongPress
)

// String returns the gesture kind name.
func (k GestureKind) String() string {
	switch k {
	case GestureSwipe:
		return "swipe"
	case GesturePinch:
		return "pinch"
	case GestureDrag:
		return "drag"
	case GesturePan:
		return "pan"
	case GestureTap:
		return "tap"
	case GestureLongPress:
		return "longpress"
	default:
		return "unknown"
	}
}

// SwipeDirection is the dominant axis direction of a swipe.
type SwipeDirection uint8

const (
	SwipeLeft SwipeDirection = iota
	SwipeRight
	SwipeUp
	SwipeDown
)

// String returns the direction name.
func (d SwipeDirection) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	default:
		return "unknown"
	}
}

// Gesture is a canonical gesture event. Which fields are meaningful depends
// on Kind:
//
//	Swipe:     Direction, Velocity, X, Y
//	Pinch:     Scale
//	Drag:      DX, DY, Velocity, X, Y
//	Pan:       DX, DY, X, Y
//	Tap:       X, Y
//	LongPress: X, Y
//
// Gestures are ephemeral: produced and consumed per input sequence, never
// retained by this package.
type Gesture struct {
	Kind      GestureKind
	Direction SwipeDirection
	Velocity  float64 // screen units per second
	Scale     float64 // pinch scale relative to gesture start
	DX, DY    float64 // per-frame screen-space delta
	X, Y      float64 // screen position
}

// velocitySmoothing is the blend factor for the rich backend's per-frame
// velocity estimate.
const velocitySmoothing = 0.5

// gesturePointer is the per-pointer classification state.
type gesturePointer struct {
	down       bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	held       float64 // seconds since press
	maxDist    float64 // peak distance from press position
	dragging   bool
	longFired  bool
	suppressed bool // pinch member: no drag/swipe/tap on release
	vx, vy     float64
}

// gesturePinch tracks a live two-pointer pinch.
type gesturePinch struct {
	active      bool
	initialDist float64
	lastScale   float64
}

// Gestures normalizes heterogeneous device input into one canonical gesture
// stream. It selects its input strategy once at construction: the rich
// Ebitengine-polled backend when available, otherwise the coarse manual
// fallback. Consumers only ever see the canonical stream and never branch on
// which backend is active.
//
// Gestures is frame-driven: call Update once per render tick. Events are
// delivered synchronously from Update in arrival order; no two callbacks run
// concurrently.
type Gestures struct {
	cfg Config
	src GestureSource

	// OnGesture receives every classified gesture.
	OnGesture func(Gesture)
	// OnWheel receives raw wheel offsets with the cursor's screen position,
	// for anchored-zoom wiring. Wheel input maps to zoom rather than to a
	// member of the gesture union.
	OnWheel func(sx, sy, yoff float64)

	pointers [maxPointers]gesturePointer
	pinch    gesturePinch
	buf      []PointerSample
	debug    bool
}

// NewGestures creates a normalizer over the given source. Pass nil to select
// automatically: the rich backend when it loads, else the manual fallback
// with a logged warning. The fallback is functionally inferior (no velocity
// smoothing, reduced thresholds) but API-compatible.
func NewGestures(cfg Config, src GestureSource) *Gestures {
	cfg = cfg.withDefaults()
	if src == nil {
		rich, err := newRichSource()
		if err != nil {
			warnf("rich gesture backend unavailable, using fallback input: %v", err)
			src = NewManualSource()
		} else {
			src = rich
		}
	}
	return &Gestures{cfg: cfg, src: src}
}

// Source returns the selected input source.
func (g *Gestures) Source() GestureSource {
	return g.src
}

// SetDebug toggles stderr tracing of emitted gestures.
func (g *Gestures) SetDebug(enabled bool) {
	g.debug = enabled
}

// Update polls the source and advances all gesture state machines by dt
// seconds. Call once per render tick.
func (g *Gestures) Update(dt float64) {
	if dt <= 0 {
		dt = 1.0 / 60
	}

	var wheel WheelSample
	g.buf, wheel = g.src.Poll(g.buf[:0])

	var seen [maxPointers]bool
	for _, s := range g.buf {
		if s.ID < 0 || s.ID >= maxPointers {
			continue
		}
		seen[s.ID] = true
		g.processPointer(s.ID, s.X, s.Y, s.Pressed, dt)
	}
	// A pointer that was down and vanished from the sample set released at
	// its last known position.
	for id := range g.pointers {
		p := &g.pointers[id]
		if p.down && !seen[id] {
			g.processPointer(id, p.lastX, p.lastY, false, dt)
		}
	}

	g.detectPinch()

	if wheel.YOff != 0 && g.OnWheel != nil {
		g.OnWheel(wheel.X, wheel.Y, wheel.YOff)
	}
}

// processPointer runs the classification state machine for one pointer.
func (g *Gestures) processPointer(id int, x, y float64, pressed bool, dt float64) {
	p := &g.pointers[id]

	switch {
	case pressed && !p.down:
		*p = gesturePointer{down: true, startX: x, startY: y, lastX: x, lastY: y}

	case pressed && p.down:
		p.held += dt
		dx := x - p.lastX
		dy := y - p.lastY
		if dx != 0 || dy != 0 {
			p.vx += (dx/dt - p.vx) * velocitySmoothing
			p.vy += (dy/dt - p.vy) * velocitySmoothing

			dist := math.Hypot(x-p.startX, y-p.startY)
			if dist > p.maxDist {
				p.maxDist = dist
			}
			if !p.dragging && dist > g.cfg.DragDeadZone {
				p.dragging = true
			}
			if p.dragging && !p.suppressed {
				g.emitMove(p, dx, dy, x, y)
			}
		}
		// Long-press: timer elapses before release, cancelled only by
		// movement beyond the jitter threshold. Drag promotion alone does
		// not cancel; the jitter window is wider than the drag dead zone.
		if !p.longFired && !p.suppressed &&
			p.maxDist <= g.cfg.JitterThreshold && p.held >= g.cfg.LongPressDuration {
			p.longFired = true
			g.emit(Gesture{Kind: GestureLongPress, X: p.startX, Y: p.startY})
		}
		p.lastX = x
		p.lastY = y

	case !pressed && p.down:
		g.release(p, x, y)
		*p = gesturePointer{}
	}
}

// emitMove emits the per-frame movement gesture: Drag with a velocity
// estimate on the rich backend, plain Pan on the coarse fallback.
func (g *Gestures) emitMove(p *gesturePointer, dx, dy, x, y float64) {
	if g.src.Fidelity() == FidelityRich {
		g.emit(Gesture{
			Kind:     GestureDrag,
			DX:       dx,
			DY:       dy,
			Velocity: math.Hypot(p.vx, p.vy),
			X:        x,
			Y:        y,
		})
		return
	}
	g.emit(Gesture{Kind: GesturePan, DX: dx, DY: dy, X: x, Y: y})
}

// release classifies the end of a pointer sequence: swipe, tap, or nothing.
func (g *Gestures) release(p *gesturePointer, x, y float64) {
	if p.suppressed {
		return
	}
	if p.dragging {
		velocity := g.releaseVelocity(p)
		threshold := g.cfg.SwipeThreshold
		if g.src.Fidelity() == FidelityCoarse {
			threshold *= g.cfg.FallbackThresholdRatio
		}
		if velocity > threshold {
			dx := x - p.startX
			dy := y - p.startY
			g.emit(Gesture{
				Kind:      GestureSwipe,
				Direction: classifySwipe(dx, dy),
				Velocity:  velocity,
				X:         x,
				Y:         y,
			})
		}
		return
	}
	if !p.longFired {
		g.emit(Gesture{Kind: GestureTap, X: x, Y: y})
	}
}

// releaseVelocity estimates the velocity at release: the smoothed per-frame
// estimate on the rich backend, total distance over elapsed time on the
// coarse fallback.
func (g *Gestures) releaseVelocity(p *gesturePointer) float64 {
	if g.src.Fidelity() == FidelityRich {
		return math.Hypot(p.vx, p.vy)
	}
	if p.held <= 0 {
		return 0
	}
	return math.Hypot(p.lastX-p.startX, p.lastY-p.startY) / p.held
}

// classifySwipe picks the dominant axis: horizontal when |dx| > |dy| (right
// if dx > 0, else left), vertical otherwise (down if dy > 0, else up).
func classifySwipe(dx, dy float64) SwipeDirection {
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return SwipeRight
		}
		return SwipeLeft
	}
	if dy > 0 {
		return SwipeDown
	}
	return SwipeUp
}

// detectPinch tracks a two-pointer pinch across frames. While active, the
// member pointers' drag/swipe/tap classification is suppressed. On release
// the final scale is emitted only when it falls outside the
// (PinchCollapse, PinchExpand) window; values between the thresholds are
// dropped as insignificant.
func (g *Gestures) detectPinch() {
	var idx [2]int
	count := 0
	for i := range g.pointers {
		if g.pointers[i].down {
			if count < 2 {
				idx[count] = i
			}
			count++
		}
	}

	if count == 2 {
		p0 := &g.pointers[idx[0]]
		p1 := &g.pointers[idx[1]]
		dist := math.Hypot(p1.lastX-p0.lastX, p1.lastY-p0.lastY)

		if !g.pinch.active {
			g.pinch = gesturePinch{active: true, initialDist: dist, lastScale: 1}
		} else if g.pinch.initialDist > 0 {
			g.pinch.lastScale = dist / g.pinch.initialDist
		}
		p0.suppressed = true
		p1.suppressed = true
		return
	}

	if g.pinch.active && count < 2 {
		scale := g.pinch.lastScale
		g.pinch = gesturePinch{}
		if scale < g.cfg.PinchCollapse || scale > g.cfg.PinchExpand {
			g.emit(Gesture{Kind: GesturePinch, Scale: scale})
		}
	}
}

// emit delivers one gesture to the consumer.
func (g *Gestures) emit(ev Gesture) {
	if g.debug {
		tracef("gesture %s dir=%s v=%.1f scale=%.2f d=(%.1f,%.1f) at (%.0f,%.0f)",
			ev.Kind, ev.Direction, ev.Velocity, ev.Scale, ev.DX, ev.DY, ev.X, ev.Y)
	}
	if g.OnGesture != nil {
		g.OnGesture(ev)
	}
}
