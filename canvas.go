package drift

// viewMode is the two-state overview toggle.
type viewMode uint8

const (
	modeNormal viewMode = iota
	modeOverview
)

// NavigateOptions adjusts a NavigateTo call. The zero value of each field
// means "default": Zoom 0 navigates at zoom 1, Snap false animates.
type NavigateOptions struct {
	Zoom float64
	Snap bool
}

// Canvas is the viewport controller for one fluid canvas: it owns the camera,
// the area table, the container size, and the overview mode, and exposes all
// navigation and zoom operations.
//
// A Canvas is instance-scoped. Multiple canvases must use independent
// instances; nothing in this package is a global singleton. All methods are
// synchronous reducers meant to be called from a single goroutine, typically
// input-event callbacks and the per-frame Update.
//
// Navigation operations on unknown ids are silent no-ops, zoom is always
// clamped, and no method panics or returns an error in normal operation.
type Canvas struct {
	cfg Config
	cam *Camera

	areas     map[string]Area
	areaOrder []string

	containerW float64
	containerH float64

	mode        viewMode
	currentArea string
	savedCam    [3]float64 // camera snapshot (x, y, zoom) taken when entering overview

	focused bool

	dragPan      bool
	dragStartX   float64
	dragStartY   float64
	dragStartCam [2]float64

	// OnAreaChange fires whenever a navigation operation sets or clears the
	// current area. An empty id means no area is active.
	OnAreaChange func(id string)
}

// NewCanvas creates a Canvas with the given configuration. Zero config fields
// take their defaults. The container starts unmeasured (zero size) until
// Resize is called; operations that would divide by the container size are
// no-ops until then.
func NewCanvas(cfg Config) *Canvas {
	cfg = cfg.withDefaults()
	return &Canvas{
		cfg:     cfg,
		cam:     newCamera(cfg.MinZoom, cfg.MaxZoom),
		areas:   make(map[string]Area),
		focused: true,
	}
}

// Camera returns the canvas's camera. Callers may read it freely; direct
// writes bypass zoom clamping and animation cancellation, so prefer the
// Canvas operations.
func (c *Canvas) Camera() *Camera {
	return c.cam
}

// Config returns the resolved configuration.
func (c *Canvas) Config() Config {
	return c.cfg
}

// SetAreas replaces the canvas's area table. Areas are immutable descriptors;
// the slice order is preserved for overview fitting and minimap rendering.
func (c *Canvas) SetAreas(areas []Area) {
	c.areas = make(map[string]Area, len(areas))
	c.areaOrder = c.areaOrder[:0]
	for _, a := range areas {
		if _, dup := c.areas[a.ID]; dup {
			continue
		}
		c.areas[a.ID] = a
		c.areaOrder = append(c.areaOrder, a.ID)
	}
}

// Areas returns the area descriptors in registration order.
func (c *Canvas) Areas() []Area {
	out := make([]Area, 0, len(c.areaOrder))
	for _, id := range c.areaOrder {
		out = append(out, c.areas[id])
	}
	return out
}

// Area looks up an area by id.
func (c *Canvas) Area(id string) (Area, bool) {
	a, ok := c.areas[id]
	return a, ok
}

// Resize records the container's current size. Call from the host's resize
// signal. Until the first call the container is treated as unmeasured and
// size-dependent operations are no-ops.
func (c *Canvas) Resize(w, h float64) {
	c.containerW = w
	c.containerH = h
}

// ContainerSize returns the last recorded container size.
func (c *Canvas) ContainerSize() (w, h float64) {
	return c.containerW, c.containerH
}

// Focus marks the canvas as the active input target.
func (c *Canvas) Focus() { c.focused = true }

// Blur releases input focus; attached gesture and keyboard wiring stops
// mutating the camera until Focus is called again.
func (c *Canvas) Blur() { c.focused = false }

// Focused reports whether the canvas holds input focus.
func (c *Canvas) Focused() bool { return c.focused }

// CurrentArea returns the id of the active area, or "" if none.
func (c *Canvas) CurrentArea() string { return c.currentArea }

// OverviewActive reports whether the canvas is in overview mode.
func (c *Canvas) OverviewActive() bool { return c.mode == modeOverview }

// Update advances camera animation by dt seconds. Call once per render tick.
func (c *Canvas) Update(dt float64) {
	c.cam.update(dt)
}

// NavigateTo centers the named area in the container. Unknown ids are silent
// no-ops. opts may be nil for the defaults (zoom 1, animated). Sets the
// current area, exits overview mode, and fires OnAreaChange.
func (c *Canvas) NavigateTo(id string, opts *NavigateOptions) {
	area, ok := c.areas[id]
	if !ok {
		return
	}
	zoom := 1.0
	snap := false
	if opts != nil {
		if opts.Zoom != 0 {
			zoom = opts.Zoom
		}
		snap = opts.Snap
	}
	zoom = c.cam.ClampZoom(zoom)

	x := -(area.X + area.Width/2) + c.containerW/(2*zoom)
	y := -(area.Y + area.Height/2) + c.containerH/(2*zoom)

	if snap {
		c.cam.Set(x, y, zoom)
	} else {
		c.cam.AnimateTo(x, y, zoom, c.cfg.ScrollDuration)
	}

	c.mode = modeNormal
	c.currentArea = id
	c.fireAreaChange(id)
}

// ZoomToFit computes the union bounding box of the named areas and zooms so
// the box fits the container with FitPadding on each side, capped at MaxZoom.
// No-op for an empty or fully unknown id set, a zero-size box, or an
// unmeasured container.
func (c *Canvas) ZoomToFit(ids []string) {
	box, ok := c.unionBounds(ids)
	if !ok {
		return
	}
	c.fitBox(box)
}

// unionBounds returns the bounding box of the named areas. ok is false when
// no id resolves.
func (c *Canvas) unionBounds(ids []string) (Rect, bool) {
	var box Rect
	found := false
	for _, id := range ids {
		a, ok := c.areas[id]
		if !ok {
			continue
		}
		if !found {
			box = a.Bounds()
			found = true
		} else {
			box = box.Union(a.Bounds())
		}
	}
	return box, found
}

// fitBox centers box in the container at the largest zoom that keeps it fully
// visible with padding. Skips the divide and leaves the camera unchanged when
// the box or the container has no size.
func (c *Canvas) fitBox(box Rect) {
	if box.Width <= 0 || box.Height <= 0 || c.containerW <= 0 || c.containerH <= 0 {
		return
	}
	pad := c.cfg.FitPadding
	zoom := min(
		(c.containerW-2*pad)/box.Width,
		(c.containerH-2*pad)/box.Height,
		c.cfg.MaxZoom,
	)
	zoom = c.cam.ClampZoom(zoom)

	cx, cy := box.Center()
	x := -cx + c.containerW/(2*zoom)
	y := -cy + c.containerH/(2*zoom)
	c.cam.AnimateTo(x, y, zoom, c.cfg.ScrollDuration)
}

// Overview toggles overview mode. Entering fits all known areas (or falls
// back to OverviewFallbackZoom when none exist). Exiting returns the camera
// to the exact state it had when overview was entered, so a double toggle
// round-trips exactly regardless of the zoom it was entered at. The current
// area is untouched by the toggle.
func (c *Canvas) Overview() {
	if c.mode == modeOverview {
		c.mode = modeNormal
		c.cam.AnimateTo(c.savedCam[0], c.savedCam[1], c.savedCam[2], c.cfg.ScrollDuration)
		return
	}

	x, y, zoom := c.cam.target()
	c.savedCam = [3]float64{x, y, zoom}
	c.mode = modeOverview

	if len(c.areaOrder) == 0 {
		c.cam.AnimateTo(x, y, c.cfg.OverviewFallbackZoom, c.cfg.ScrollDuration)
		return
	}
	if box, ok := c.unionBounds(c.areaOrder); ok {
		c.fitBox(box)
	}
}

// Reset returns the camera to the origin at zoom 1, clears the current area,
// exits overview mode, and fires OnAreaChange with an empty id.
func (c *Canvas) Reset() {
	c.cam.AnimateTo(0, 0, 1, c.cfg.ScrollDuration)
	c.mode = modeNormal
	c.currentArea = ""
	c.fireAreaChange("")
}

// Pan applies a screen-space delta as a camera pan. The delta is divided by
// the current zoom so pan speed stays visually consistent across zoom levels.
// Pans are hard sets: any animation in flight is canceled.
func (c *Canvas) Pan(dx, dy float64) {
	z := c.cam.Zoom
	if z == 0 {
		return
	}
	c.cam.Set(c.cam.X-dx/z, c.cam.Y-dy/z, z)
}

// ZoomAt multiplies the zoom by factor, clamped to the zoom bounds, keeping
// the world point under the screen position (sx, sy) visually fixed.
func (c *Canvas) ZoomAt(sx, sy, factor float64) {
	z := c.cam.Zoom
	newZoom := c.cam.ClampZoom(z * factor)
	if newZoom == z || z == 0 {
		return
	}
	c.anchorZoom(sx, sy, newZoom)
}

// anchorZoom hard-sets the zoom to newZoom while holding the canvas-local
// point under (sx, sy) in place.
func (c *Canvas) anchorZoom(sx, sy, newZoom float64) {
	z := c.cam.Zoom
	mcx := sx/z - c.cam.X
	mcy := sy/z - c.cam.Y
	f := newZoom / z
	c.cam.Set(
		c.cam.X-mcx*(f-1)/f,
		c.cam.Y-mcy*(f-1)/f,
		newZoom,
	)
}

// WheelZoom applies one wheel notch of zoom anchored at the cursor's screen
// position. yoff > 0 zooms in by WheelStepIn, otherwise out by WheelStepOut.
func (c *Canvas) WheelZoom(sx, sy, yoff float64) {
	if yoff == 0 {
		return
	}
	step := c.cfg.WheelStepOut
	if yoff > 0 {
		step = c.cfg.WheelStepIn
	}
	c.ZoomAt(sx, sy, step)
}

// ArrowPan pans one keyboard step in the given direction. dx and dy are
// -1, 0, or +1. The step is KeyPanStep/zoom world units so keyboard panning
// feels uniform across zoom levels.
func (c *Canvas) ArrowPan(dx, dy int) {
	z := c.cam.Zoom
	if z == 0 {
		return
	}
	step := c.cfg.KeyPanStep / z
	c.cam.Set(c.cam.X-float64(dx)*step, c.cam.Y-float64(dy)*step, z)
}

// KeyZoomIn zooms in by KeyZoomIn about the container center.
func (c *Canvas) KeyZoomIn() {
	c.ZoomAt(c.containerW/2, c.containerH/2, c.cfg.KeyZoomIn)
}

// KeyZoomOut zooms out by KeyZoomOut about the container center.
func (c *Canvas) KeyZoomOut() {
	c.ZoomAt(c.containerW/2, c.containerH/2, c.cfg.KeyZoomOut)
}

// KeyZoomReset returns the zoom to 1 about the container center, keeping the
// centered world point fixed.
func (c *Canvas) KeyZoomReset() {
	if c.cam.Zoom == 1 || c.cam.Zoom == 0 {
		return
	}
	c.anchorZoom(c.containerW/2, c.containerH/2, c.cam.ClampZoom(1))
}

// BeginDragPan starts a pointer drag-pan at the given screen position,
// capturing the current camera state. Any animation in flight is canceled so
// the drag tracks the pointer 1:1.
func (c *Canvas) BeginDragPan(sx, sy float64) {
	c.cam.Set(c.cam.X, c.cam.Y, c.cam.Zoom)
	c.dragPan = true
	c.dragStartX = sx
	c.dragStartY = sy
	c.dragStartCam = [2]float64{c.cam.X, c.cam.Y}
}

// DragPanTo continues an active drag-pan; the camera is hard-set from the
// captured start state plus the pointer's world-space delta. No-op when no
// drag is active.
func (c *Canvas) DragPanTo(sx, sy float64) {
	if !c.dragPan {
		return
	}
	z := c.cam.Zoom
	if z == 0 {
		return
	}
	dx := (sx - c.dragStartX) / z
	dy := (sy - c.dragStartY) / z
	c.cam.Set(c.dragStartCam[0]-dx, c.dragStartCam[1]-dy, z)
}

// EndDragPan finishes a drag-pan. Safe to call when no drag is active; callers
// should invoke it unconditionally on pointer release or cancel.
func (c *Canvas) EndDragPan() {
	c.dragPan = false
}

// DragPanning reports whether a drag-pan is active.
func (c *Canvas) DragPanning() bool { return c.dragPan }

// AttachGestures wires a gesture normalizer into the canvas with the default
// navigation feel: drag and pan gestures pan the camera, pinch releases zoom
// about the container center, and wheel offsets drive anchored zoom. Existing
// callbacks on g keep firing after the canvas handling, so hosts can layer
// application behavior (swipe to minimize, tap to select) on top.
//
// Gesture input is ignored while the canvas is blurred.
func (c *Canvas) AttachGestures(g *Gestures) {
	prevGesture := g.OnGesture
	g.OnGesture = func(ev Gesture) {
		if c.focused {
			c.applyGesture(ev)
		}
		if prevGesture != nil {
			prevGesture(ev)
		}
	}
	prevWheel := g.OnWheel
	g.OnWheel = func(sx, sy, yoff float64) {
		if c.focused {
			c.WheelZoom(sx, sy, yoff)
		}
		if prevWheel != nil {
			prevWheel(sx, sy, yoff)
		}
	}
}

// applyGesture maps canonical gestures onto camera operations.
func (c *Canvas) applyGesture(ev Gesture) {
	switch ev.Kind {
	case GestureDrag, GesturePan:
		c.Pan(ev.DX, ev.DY)
	case GesturePinch:
		if ev.Scale > 0 {
			c.ZoomAt(c.containerW/2, c.containerH/2, ev.Scale)
		}
	}
}

// fireAreaChange invokes OnAreaChange if set.
func (c *Canvas) fireAreaChange(id string) {
	if c.OnAreaChange != nil {
		c.OnAreaChange(id)
	}
}
