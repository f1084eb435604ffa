package drift

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	YOff   float64 `json:"yoff,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script through a ManualSource, one queued
// event per frame, for deterministic gesture-level testing. Supported
// actions: "press", "move", "release", "click", "drag" (fromX/fromY to
// toX/toY over frames), "wheel" (x, y, yoff), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed and drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, queuing events on src. Call once per
// frame before the normalizer's Update. Waits for queued events to drain
// before advancing to the next step.
func (r *ScriptRunner) Step(src *ManualSource) {
	if r.done {
		return
	}
	if src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		src.Press(st.X, st.Y)
	case "move":
		src.Move(st.X, st.Y)
	case "release":
		src.Release(st.X, st.Y)
	case "click":
		src.Press(st.X, st.Y)
		src.Release(st.X, st.Y)
	case "drag":
		queueDrag(src, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		src.Wheel(st.X, st.Y, st.YOff)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && src.Pending() == 0 {
		r.done = true
	}
}

// queueDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func queueDrag(src *ManualSource, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	src.Press(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		src.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	src.Release(toX, toY)
}
