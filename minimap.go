package drift

// Minimap projects world-space areas and the live camera rectangle into a
// fixed-scale minimap coordinate space. Scale is the number of world units
// per minimap pixel; MinSize floors projected sizes so tiny areas remain
// clickable.
type Minimap struct {
	Scale   float64
	MinSize float64
}

// NewMinimap creates a projector from the canvas configuration.
func NewMinimap(cfg Config) Minimap {
	cfg = cfg.withDefaults()
	return Minimap{Scale: cfg.MinimapScale, MinSize: cfg.MinimapMinSize}
}

// ProjectArea maps an area into minimap pixel space.
func (m Minimap) ProjectArea(a Area) Rect {
	return m.ProjectRect(a.Bounds())
}

// ProjectRect maps a world-space rectangle into minimap pixel space, flooring
// the projected size at MinSize.
func (m Minimap) ProjectRect(r Rect) Rect {
	if m.Scale == 0 {
		return Rect{}
	}
	return Rect{
		X:      r.X / m.Scale,
		Y:      r.Y / m.Scale,
		Width:  max(r.Width/m.Scale, m.MinSize),
		Height: max(r.Height/m.Scale, m.MinSize),
	}
}

// Viewport returns the minimap rectangle of the camera's visible area for a
// container of the given size.
func (m Minimap) Viewport(cam *Camera, containerW, containerH float64) Rect {
	if m.Scale == 0 || cam.Zoom == 0 {
		return Rect{}
	}
	return Rect{
		X:      -cam.X / m.Scale,
		Y:      -cam.Y / m.Scale,
		Width:  containerW / cam.Zoom / m.Scale,
		Height: containerH / cam.Zoom / m.Scale,
	}
}

// Unproject maps a minimap pixel position back into world space, for
// click-to-navigate wiring.
func (m Minimap) Unproject(px, py float64) (wx, wy float64) {
	return px * m.Scale, py * m.Scale
}
