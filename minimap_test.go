package drift

import "testing"

func TestMinimapProjectsAtFixedScale(t *testing.T) {
	m := NewMinimap(Config{}) // scale 20, floor 4

	got := m.ProjectArea(Area{ID: "a", X: 400, Y: -200, Width: 800, Height: 600})
	want := Rect{X: 20, Y: -10, Width: 40, Height: 30}
	if got != want {
		t.Errorf("projected = %+v, want %+v", got, want)
	}
}

func TestMinimapFloorsTinyAreas(t *testing.T) {
	m := NewMinimap(Config{})

	got := m.ProjectArea(Area{ID: "dot", X: 100, Y: 100, Width: 30, Height: 10})
	if got.Width != 4 || got.Height != 4 {
		t.Errorf("size = (%f,%f), want floored (4,4)", got.Width, got.Height)
	}
	// Position is not floored.
	if got.X != 5 || got.Y != 5 {
		t.Errorf("position = (%f,%f), want (5,5)", got.X, got.Y)
	}
}

func TestMinimapViewportIndicator(t *testing.T) {
	m := NewMinimap(Config{})
	cam := newCamera(0.1, 3)
	cam.Set(-300, -100, 2)

	got := m.Viewport(cam, 800, 600)
	want := Rect{
		X:      300.0 / 20,
		Y:      100.0 / 20,
		Width:  800.0 / 2 / 20,
		Height: 600.0 / 2 / 20,
	}
	if got != want {
		t.Errorf("viewport = %+v, want %+v", got, want)
	}
}

func TestMinimapUnprojectRoundTrip(t *testing.T) {
	m := NewMinimap(Config{})

	wx, wy := m.Unproject(25, 40)
	if wx != 500 || wy != 800 {
		t.Errorf("unproject = (%f,%f), want (500,800)", wx, wy)
	}
}

func TestMinimapCustomScale(t *testing.T) {
	m := NewMinimap(Config{MinimapScale: 10, MinimapMinSize: 2})

	got := m.ProjectRect(Rect{X: 100, Y: 0, Width: 15, Height: 300})
	if got.X != 10 || got.Width != 2 || got.Height != 30 {
		t.Errorf("projected = %+v", got)
	}
}
