package drift

import "testing"

func transitionFixture() (*TransitionCoordinator, *SpatialRegistry) {
	reg := NewSpatialRegistry()
	tc := NewTransitionCoordinator(Config{}, reg)
	return tc, reg
}

func TestComputeDelta(t *testing.T) {
	from := Rect{X: 100, Y: 50, Width: 400, Height: 300}
	to := Rect{X: 12, Y: 112, Width: 48, Height: 48}

	d := computeDelta(from, to)

	if d.TranslateX != -88 || d.TranslateY != 62 {
		t.Errorf("translate = (%f,%f), want (-88,62)", d.TranslateX, d.TranslateY)
	}
	if !approxEqual(d.ScaleX, 48.0/400, epsilon) || !approxEqual(d.ScaleY, 48.0/300, epsilon) {
		t.Errorf("scale = (%f,%f)", d.ScaleX, d.ScaleY)
	}
}

func TestComputeDeltaZeroSizeSource(t *testing.T) {
	d := computeDelta(Rect{X: 10, Y: 10}, Rect{X: 20, Y: 20, Width: 48, Height: 48})
	if d.ScaleX != 1 || d.ScaleY != 1 {
		t.Errorf("zero-size source scale = (%f,%f), want unit", d.ScaleX, d.ScaleY)
	}
}

func TestSlotRectPerEdge(t *testing.T) {
	tc, _ := transitionFixture()
	const cw, ch = 800.0, 600.0
	// Defaults: icon 48, gap 8, margin 12.

	tests := []struct {
		name  string
		edge  DockEdge
		index int
		want  Rect
	}{
		{"left first", DockLeft, 0, Rect{X: 12, Y: 12, Width: 48, Height: 48}},
		{"left second", DockLeft, 1, Rect{X: 12, Y: 68, Width: 48, Height: 48}},
		{"right first", DockRight, 0, Rect{X: 800 - 12 - 48, Y: 12, Width: 48, Height: 48}},
		{"bottom third", DockBottom, 2, Rect{X: 12 + 2*56, Y: 600 - 12 - 48, Width: 48, Height: 48}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tc.SlotRect(tt.edge, tt.index, cw, ch); got != tt.want {
				t.Errorf("SlotRect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExitTransition(t *testing.T) {
	tc, reg := transitionFixture()
	geom := Rect{X: 200, Y: 150, Width: 400, Height: 300}
	reg.Register("cal", "panel", geom)
	reg.Minimize("cal", DockLeft)

	tr, ok := tc.Exit("cal", 800, 600)
	if !ok {
		t.Fatal("exit transition unavailable")
	}
	if tr.From != geom {
		t.Errorf("from = %+v, want preserved geometry %+v", tr.From, geom)
	}
	if tr.To != tc.SlotRect(DockLeft, 0, 800, 600) {
		t.Errorf("to = %+v, want first left slot", tr.To)
	}
	if tr.Delta.TranslateX != tr.To.X-tr.From.X {
		t.Error("delta does not map from onto to")
	}
}

func TestEnterTransitionStaggersByDockIndex(t *testing.T) {
	tc, reg := transitionFixture()
	for _, id := range []string{"a", "b", "c"} {
		reg.Register(id, "card", Rect{X: 100, Y: 100, Width: 200, Height: 200})
		reg.Minimize(id, DockBottom)
	}

	for i, id := range []string{"a", "b", "c"} {
		tr, ok := tc.Enter(id, 800, 600)
		if !ok {
			t.Fatalf("enter transition for %q unavailable", id)
		}
		want := float64(i) * 0.05
		if !approxEqual(tr.Delay, want, epsilon) {
			t.Errorf("%q delay = %f, want %f", id, tr.Delay, want)
		}
	}
}

func TestEnterRequiresMinimized(t *testing.T) {
	tc, reg := transitionFixture()
	reg.Register("a", "card", Rect{Width: 10, Height: 10})

	if _, ok := tc.Enter("a", 800, 600); ok {
		t.Error("enter transition for expanded element")
	}
	if _, ok := tc.Exit("nope", 800, 600); ok {
		t.Error("exit transition for unknown element")
	}
}

func TestStaggerCoversWholeDock(t *testing.T) {
	tc, reg := transitionFixture()
	for _, id := range []string{"a", "b"} {
		reg.Register(id, "card", Rect{Width: 10, Height: 10})
		reg.Minimize(id, DockRight)
	}

	trs := tc.Stagger(DockRight, 800, 600)
	if len(trs) != 2 {
		t.Fatalf("stagger count = %d, want 2", len(trs))
	}
	if trs[0].ID != "a" || trs[1].ID != "b" {
		t.Errorf("stagger order = [%s %s], want [a b]", trs[0].ID, trs[1].ID)
	}
	if trs[0].Delay >= trs[1].Delay {
		t.Errorf("delays not cascading: %f >= %f", trs[0].Delay, trs[1].Delay)
	}
}

func TestRectTweenLandsOnTarget(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	to := Rect{X: 50, Y: -20, Width: 48, Height: 48}
	tw := NewRectTween(&rect, to, 0.25, 0)

	for i := 0; i < 30; i++ {
		tw.Update(1.0 / 60)
	}

	if !tw.Done {
		t.Fatal("tween not done")
	}
	if !approxEqual(rect.X, 50, 1e-3) || !approxEqual(rect.Width, 48, 1e-3) {
		t.Errorf("rect = %+v, want %+v", rect, to)
	}
}

func TestRectTweenHonorsDelay(t *testing.T) {
	rect := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tw := NewRectTween(&rect, Rect{X: 500, Width: 100, Height: 100}, 0.2, 0.5)

	tw.Update(0.3)
	if rect.X != 0 {
		t.Errorf("rect moved during delay: x = %f", rect.X)
	}

	tw.Update(0.3) // 0.1s past the delay
	if rect.X == 0 {
		t.Error("rect unchanged after delay elapsed")
	}
	tw.Update(1.0)
	if !tw.Done || !approxEqual(rect.X, 500, 1e-3) {
		t.Errorf("rect = %+v, want landed at x=500", rect)
	}
}
