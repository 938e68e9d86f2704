package ssengine

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrNoInjector is returned when a TestRunner is attached to an engine whose
// backend cannot take synthetic input.
var ErrNoInjector = errors.New("ssengine: backend does not accept injected input")

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, screenshots and quit across frames
// for automated visual checks. Attach to an Engine via SetTestRunner.
//
// Actions: "screenshot" (label), "click", "press", "move", "release" (x, y),
// "drag" (fromX, fromY, toX, toY, frames), "wait" (frames), "quit".
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches runner to the engine. It advances one step per
// frame, before events are polled. A nil runner detaches.
func (e *Engine) SetTestRunner(runner *TestRunner) error {
	if runner != nil {
		if _, ok := e.backend.(Injector); !ok {
			return ErrNoInjector
		}
	}
	e.testRunner = runner
	return nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *TestRunner) step(e *Engine) {
	if r.done {
		return
	}
	inj := e.backend.(Injector)
	// Wait for pending injections to drain before advancing.
	if inj.Pending() > 0 {
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
	case "screenshot":
		e.Screenshot(st.Label)
	case "click":
		inj.InjectClick(px(st.X), px(st.Y))
	case "press":
		inj.InjectPress(px(st.X), px(st.Y))
	case "move":
		inj.InjectMove(px(st.X), px(st.Y))
	case "release":
		inj.InjectRelease(px(st.X), px(st.Y))
	case "drag":
		injectDrag(inj, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "quit":
		inj.InjectQuit()
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && inj.Pending() == 0 {
		r.done = true
	}
}

// injectDrag queues a press at (fromX, fromY), linearly interpolated moves
// and a release at (toX, toY). The sequence consumes frames frames, at
// least two.
func injectDrag(inj Injector, fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	inj.InjectPress(px(fromX), px(fromY))
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		inj.InjectMove(px(fromX+(toX-fromX)*t), px(fromY+(toY-fromY)*t))
	}
	inj.InjectRelease(px(toX), px(toY))
}

func px(v float64) int {
	return int(math.Round(v))
}
