package drift

// Vec2 is a 2D vector used for positions, offsets, and deltas throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Area is a named, static rectangular region of world space that can be
// navigated to by id. Areas are supplied once by the host application and
// never mutated by this package.
type Area struct {
	ID     string
	Name   string
	X, Y   float64
	Width  float64
	Height float64
}

// Bounds returns the area's rectangle.
func (a Area) Bounds() Rect {
	return Rect{X: a.X, Y: a.Y, Width: a.Width, Height: a.Height}
}

// Config holds every tuned constant in the package. The zero value is usable:
// withDefaults fills in each unset field. All values are empirical feel
// parameters, not correctness parameters, so hosts are free to retune them.
type Config struct {
	// MinZoom and MaxZoom bound the camera zoom. Out-of-range requests are
	// clamped, never rejected.
	MinZoom float64
	MaxZoom float64

	// FitPadding is the padding in screen units kept around a zoom-to-fit box.
	FitPadding float64

	// WheelStepIn and WheelStepOut are the multiplicative zoom factors for a
	// single wheel notch.
	WheelStepIn  float64
	WheelStepOut float64

	// KeyPanStep is the screen-space pan distance for one arrow-key press.
	// The applied world distance is KeyPanStep / zoom.
	KeyPanStep float64

	// KeyZoomIn and KeyZoomOut are the factors for Ctrl/Cmd +/- zoom keys.
	KeyZoomIn  float64
	KeyZoomOut float64

	// ScrollDuration is the camera animation length in seconds. Zero or
	// negative snaps instantly.
	ScrollDuration float64

	// OverviewFallbackZoom is used when entering overview with no areas.
	OverviewFallbackZoom float64

	// SwipeThreshold is the minimum release velocity magnitude, in screen
	// units per second, for a drag to classify as a swipe.
	SwipeThreshold float64

	// FallbackThresholdRatio scales SwipeThreshold for the coarse input
	// fallback, which lacks velocity smoothing.
	FallbackThresholdRatio float64

	// PinchCollapse and PinchExpand bound the dead window of pinch scales.
	// A pinch releasing inside (PinchCollapse, PinchExpand) is dropped.
	PinchCollapse float64
	PinchExpand   float64

	// LongPressDuration is the hold time in seconds before a long-press fires.
	LongPressDuration float64

	// JitterThreshold is the movement in screen units that cancels a pending
	// long-press.
	JitterThreshold float64

	// DragDeadZone is the minimum movement in screen units before a press
	// becomes a drag. Releases inside the dead zone classify as taps.
	DragDeadZone float64

	// MinimapScale is the number of world units per minimap pixel.
	MinimapScale float64

	// MinimapMinSize is the floor in minimap pixels for projected area sizes,
	// keeping tiny areas clickable.
	MinimapMinSize float64

	// StaggerDelay is the per-element delay in seconds for dock restore
	// animations.
	StaggerDelay float64

	// TransitionDuration is the minimize/restore animation length in seconds.
	TransitionDuration float64

	// DockIconSize, DockGap, and DockMargin control dock slot layout.
	DockIconSize float64
	DockGap      float64
	DockMargin   float64
}

// withDefaults returns cfg with every zero field replaced by its default.
func (cfg Config) withDefaults() Config {
	if cfg.MinZoom == 0 {
		cfg.MinZoom = 0.1
	}
	if cfg.MaxZoom == 0 {
		cfg.MaxZoom = 3.0
	}
	if cfg.FitPadding == 0 {
		cfg.FitPadding = 50
	}
	if cfg.WheelStepIn == 0 {
		cfg.WheelStepIn = 1.1
	}
	if cfg.WheelStepOut == 0 {
		cfg.WheelStepOut = 0.9
	}
	if cfg.KeyPanStep == 0 {
		cfg.KeyPanStep = 50
	}
	if cfg.KeyZoomIn == 0 {
		cfg.KeyZoomIn = 1.25
	}
	if cfg.KeyZoomOut == 0 {
		cfg.KeyZoomOut = 0.8
	}
	if cfg.ScrollDuration == 0 {
		cfg.ScrollDuration = 0.35
	}
	if cfg.OverviewFallbackZoom == 0 {
		cfg.OverviewFallbackZoom = 0.3
	}
	if cfg.SwipeThreshold == 0 {
		cfg.SwipeThreshold = 500
	}
	if cfg.FallbackThresholdRatio == 0 {
		cfg.FallbackThresholdRatio = 0.3
	}
	if cfg.PinchCollapse == 0 {
		cfg.PinchCollapse = 0.7
	}
	if cfg.PinchExpand == 0 {
		cfg.PinchExpand = 1.3
	}
	if cfg.LongPressDuration == 0 {
		cfg.LongPressDuration = 0.5
	}
	if cfg.JitterThreshold == 0 {
		cfg.JitterThreshold = 10
	}
	if cfg.DragDeadZone == 0 {
		cfg.DragDeadZone = 4
	}
	if cfg.MinimapScale == 0 {
		cfg.MinimapScale = 20
	}
	if cfg.MinimapMinSize == 0 {
		cfg.MinimapMinSize = 4
	}
	if cfg.StaggerDelay == 0 {
		cfg.StaggerDelay = 0.05
	}
	if cfg.TransitionDuration == 0 {
		cfg.TransitionDuration = 0.25
	}
	if cfg.DockIconSize == 0 {
		cfg.DockIconSize = 48
	}
	if cfg.DockGap == 0 {
		cfg.DockGap = 8
	}
	if cfg.DockMargin == 0 {
		cfg.DockMargin = 12
	}
	return cfg
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
