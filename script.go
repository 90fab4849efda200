package pong

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
)

// scriptStep is a single entry of a JSON script: either an intent to apply
// or a number of frames to let pass.
type scriptStep struct {
	Intent string `json:"intent,omitempty"`
	Wait   int    `json:"wait,omitempty"`
}

// scriptFile is the top-level JSON structure of a script.
type scriptFile struct {
	Seed  uint64       `json:"seed"`
	DT    float64      `json:"dt"`
	Steps []scriptStep `json:"steps"`
}

// step is a validated scriptStep.
type step struct {
	intent Intent
	wait   int
}

// Script is a parsed, validated sequence of intents and waits together with
// the seed and frame time that make its replay deterministic.
type Script struct {
	Seed  uint64
	DT    float64
	steps []step
}

// LoadScript parses a JSON script such as
//
//	{"seed": 7, "dt": 0.0166, "steps": [{"intent": "left-up"}, {"wait": 30}]}
//
// Every step names exactly one intent or a positive wait.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, errors.New("parse script: no steps")
	}
	if f.DT <= 0 {
		return nil, fmt.Errorf("parse script: dt must be positive, got %v", f.DT)
	}
	sc := &Script{Seed: f.Seed, DT: f.DT, steps: make([]step, 0, len(f.Steps))}
	for i, st := range f.Steps {
		switch {
		case st.Intent != "" && st.Wait != 0:
			return nil, fmt.Errorf("parse script: step %d has both intent and wait", i)
		case st.Intent != "":
			in, err := ParseIntent(st.Intent)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			sc.steps = append(sc.steps, step{intent: in})
		case st.Wait > 0:
			sc.steps = append(sc.steps, step{wait: st.Wait})
		default:
			return nil, fmt.Errorf("parse script: step %d is empty", i)
		}
	}
	return sc, nil
}

// Len returns the number of steps.
func (sc *Script) Len() int {
	return len(sc.steps)
}

// NewRand returns the random source a replay of sc uses.
func (sc *Script) NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(sc.Seed, sc.Seed))
}

// Runner plays a Script against a live Session, one frame at a time.
type Runner struct {
	steps     []step
	cursor    int
	waitCount int
	done      bool
}

// Runner returns a new Runner positioned at the first step.
func (sc *Script) Runner() *Runner {
	return &Runner{steps: sc.steps}
}

// Done reports whether every step has been executed.
func (r *Runner) Done() bool {
	return r.done
}

// Step applies the intents due this frame. Call it once per frame before
// Session.Update. Consecutive intents are applied in the same frame; a wait
// of n frames counts the current frame as the first.
func (r *Runner) Step(s *Session) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		if st.wait > 0 {
			r.waitCount = st.wait - 1
			break
		}
		s.Apply(st.intent)
	}
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

// Frame is the observable result of one replayed tick.
type Frame struct {
	Tick       uint64
	LeftScore  int
	RightScore int
	Ball       Vec2
	BallVel    Vec2
	LeftY      float64
	RightY     float64
	Particles  int
}

// Replay runs sc against a fresh Session built from cfg and returns one Frame
// per tick. It stops when the script is exhausted or applies a quit intent.
func Replay(cfg Config, sc *Script) []Frame {
	s := NewSession(cfg, sc.NewRand())
	r := sc.Runner()
	var frames []Frame
	for !r.Done() {
		r.Step(s)
		if s.Quit() {
			break
		}
		s.Update(sc.DT)
		g := s.State()
		frames = append(frames, Frame{
			Tick:       g.Ticks(),
			LeftScore:  g.LeftScore,
			RightScore: g.RightScore,
			Ball:       Vec2{g.Ball.X, g.Ball.Y},
			BallVel:    Vec2{g.Ball.VelX, g.Ball.VelY},
			LeftY:      g.Left.Y,
			RightY:     g.Right.Y,
			Particles:  g.Particles.Len(),
		})
	}
	return frames
}
