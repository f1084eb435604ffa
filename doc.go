// Package drift is an infinite pan/zoom canvas core for [Ebitengine]: a
// camera model with animated transitions, a multi-device gesture normalizer,
// and a spatial registry for minimizing UI elements to screen-edge docks and
// restoring them with geometry fidelity.
//
// Drift renders nothing itself. It owns the coordinate math and the input
// state machines; the host application draws panel contents and wires
// drift's callbacks to application behavior.
//
// # Canvas
//
// A [Canvas] owns one camera and the navigable area table. All camera
// mutations are synchronous; animated transitions advance in Update:
//
//	canvas := drift.NewCanvas(drift.Config{})
//	canvas.Resize(800, 600)
//	canvas.SetAreas([]drift.Area{
//		{ID: "inbox", Name: "Inbox", X: 0, Y: 0, Width: 800, Height: 600},
//	})
//	canvas.NavigateTo("inbox", nil)
//
//	// each frame:
//	canvas.Update(1.0 / 60)
//
// Navigation to unknown ids is a silent no-op; zoom is always clamped to the
// configured bounds. A Canvas is instance-scoped; multiple canvases never
// share state.
//
// # Gestures
//
// [Gestures] fans mouse, wheel, touch, and synthetic input into one canonical
// stream. The rich Ebitengine backend is selected when it loads; otherwise a
// manual fallback takes over silently:
//
//	g := drift.NewGestures(drift.Config{}, nil)
//	g.OnGesture = func(ev drift.Gesture) {
//		if ev.Kind == drift.GestureSwipe && ev.Direction == drift.SwipeRight {
//			// minimize the focused panel, etc.
//		}
//	}
//	canvas.AttachGestures(g)
//
// # Docks
//
// A [SpatialRegistry] tracks minimize/restore lifecycle per element, and a
// [TransitionCoordinator] turns dock membership into shared-element
// transition geometry:
//
//	reg := drift.NewSpatialRegistry()
//	reg.Register("notes", "panel", drift.Rect{X: 120, Y: 80, Width: 400, Height: 300})
//	reg.Minimize("notes", drift.DockLeft)
//	geom, _ := reg.Restore("notes") // bit-for-bit the minimize-time geometry
//	_ = geom
//
// Tweens come from [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package drift
