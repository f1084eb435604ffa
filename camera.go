package drift

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// cameraAnim holds the active camera tween for X, Y, and Zoom, plus the
// target values so an identical re-target can be detected and skipped.
type cameraAnim struct {
	tweenX  *gween.Tween
	tweenY  *gween.Tween
	tweenZ  *gween.Tween
	doneX   bool
	doneY   bool
	doneZ   bool
	targetX float64
	targetY float64
	targetZ float64
}

// Camera is the (x, y, zoom) transform mapping world-space coordinates to
// screen-space coordinates: screen = (world + offset) * zoom. X and Y are the
// pan offset in world units; Zoom is the scale factor.
//
// Zoom is always kept inside [minZoom, maxZoom]. Out-of-range values are
// clamped on write, never rejected.
type Camera struct {
	X, Y float64
	Zoom float64

	minZoom float64
	maxZoom float64

	anim *cameraAnim
}

// newCamera creates a Camera at the origin with zoom 1 and the given bounds.
func newCamera(minZoom, maxZoom float64) *Camera {
	return &Camera{Zoom: 1.0, minZoom: minZoom, maxZoom: maxZoom}
}

// ClampZoom returns z restricted to the camera's zoom bounds.
func (c *Camera) ClampZoom(z float64) float64 {
	return clamp(z, c.minZoom, c.maxZoom)
}

// SetZoom sets the zoom level, clamped to the camera's bounds.
func (c *Camera) SetZoom(z float64) {
	c.Zoom = c.ClampZoom(z)
}

// Set hard-sets the full camera state, canceling any active animation.
// Zoom is clamped.
func (c *Camera) Set(x, y, zoom float64) {
	c.anim = nil
	c.X = x
	c.Y = y
	c.Zoom = c.ClampZoom(zoom)
}

// AnimateTo starts a tween toward the target state over duration seconds.
// A new target supersedes and cancels any animation in flight; re-animating
// toward the target already in flight is a no-op. A non-positive duration
// snaps instantly.
func (c *Camera) AnimateTo(x, y, zoom float64, duration float64) {
	zoom = c.ClampZoom(zoom)
	if duration <= 0 {
		c.Set(x, y, zoom)
		return
	}
	if a := c.anim; a != nil && a.targetX == x && a.targetY == y && a.targetZ == zoom {
		return
	}
	d := float32(duration)
	c.anim = &cameraAnim{
		tweenX:  gween.New(float32(c.X), float32(x), d, ease.OutQuint),
		tweenY:  gween.New(float32(c.Y), float32(y), d, ease.OutQuint),
		tweenZ:  gween.New(float32(c.Zoom), float32(zoom), d, ease.OutQuint),
		targetX: x,
		targetY: y,
		targetZ: zoom,
	}
}

// Animating reports whether a camera tween is in flight.
func (c *Camera) Animating() bool {
	return c.anim != nil
}

// target returns the state the camera is heading toward: the animation target
// when a tween is in flight, the current state otherwise.
func (c *Camera) target() (x, y, zoom float64) {
	if a := c.anim; a != nil {
		return a.targetX, a.targetY, a.targetZ
	}
	return c.X, c.Y, c.Zoom
}

// update advances the active animation by dt seconds. Called once per frame
// from Canvas.Update.
func (c *Camera) update(dt float64) {
	a := c.anim
	if a == nil {
		return
	}
	fdt := float32(dt)
	if !a.doneX {
		val, done := a.tweenX.Update(fdt)
		c.X = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(fdt)
		c.Y = float64(val)
		a.doneY = done
	}
	if !a.doneZ {
		val, done := a.tweenZ.Update(fdt)
		c.Zoom = c.ClampZoom(float64(val))
		a.doneZ = done
	}
	if a.doneX && a.doneY && a.doneZ {
		// Land exactly on the target; tween output is float32.
		c.X = a.targetX
		c.Y = a.targetY
		c.Zoom = a.targetZ
		c.anim = nil
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return (wx + c.X) * c.Zoom, (wy + c.Y) * c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates.
// Returns the screen point unchanged if zoom is zero (never the case for a
// camera whose zoom bounds are positive).
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	if c.Zoom == 0 {
		return sx, sy
	}
	return sx/c.Zoom - c.X, sy/c.Zoom - c.Y
}

// VisibleWorld returns the world-space rectangle currently covered by a
// container of the given size.
func (c *Camera) VisibleWorld(containerW, containerH float64) Rect {
	if c.Zoom == 0 {
		return Rect{}
	}
	return Rect{
		X:      -c.X,
		Y:      -c.Y,
		Width:  containerW / c.Zoom,
		Height: containerH / c.Zoom,
	}
}
