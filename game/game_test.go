package game

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pong"
)

// fakeClock advances by step on every call.
type fakeClock struct {
	t    time.Time
	step time.Duration
}

func (c *fakeClock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func newTestGame(t *testing.T, run RunConfig) (*Game, *fakeKeys) {
	t.Helper()
	g := NewGame(pong.DefaultConfig(), run)
	keys := newFakeKeys()
	g.keys = keys
	clock := &fakeClock{t: time.Unix(0, 0), step: 20 * time.Millisecond}
	g.now = clock.now
	g.last = clock.t
	return g, keys
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logOutput
	logOutput = &buf
	t.Cleanup(func() { logOutput = prev })
	return &buf
}

func TestGameLayout(t *testing.T) {
	g, _ := newTestGame(t, RunConfig{Seed: 1})
	w, h := g.Layout(640, 480)
	if w != 1024 || h != 768 {
		t.Errorf("Layout = %dx%d, want 1024x768", w, h)
	}
}

func TestGameFrameTime(t *testing.T) {
	g, _ := newTestGame(t, RunConfig{Seed: 1})
	assertNear(t, "dt", g.frameTime(), 0.02)
	assertNear(t, "dt", g.frameTime(), 0.02)
}

func TestGameUpdateMovesPaddle(t *testing.T) {
	g, keys := newTestGame(t, RunConfig{Seed: 1})
	start := g.Session().State().Left.Y

	keys.press(ebiten.KeyW)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	keys.nextFrame()
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	cfg := pong.DefaultConfig()
	assertNear(t, "Left.Y", g.Session().State().Left.Y, start-2*cfg.PaddleSpeed*0.02)

	keys.release(ebiten.KeyW)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if v := g.Session().State().Left.VelY; v != 0 {
		t.Errorf("VelY after release = %v, want 0", v)
	}
}

func TestGameQuitTerminates(t *testing.T) {
	g, keys := newTestGame(t, RunConfig{Seed: 1})
	keys.press(ebiten.KeyEscape)
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update = %v, want ebiten.Termination", err)
	}
}

func TestGameResetReplacesState(t *testing.T) {
	g, keys := newTestGame(t, RunConfig{Seed: 1})
	before := g.Session().State()
	keys.press(ebiten.KeyR)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if g.Session().State() == before {
		t.Error("R should replace the game state")
	}
}

func TestGameDriverKeys(t *testing.T) {
	g, keys := newTestGame(t, RunConfig{Seed: 1})
	keys.press(ebiten.KeyF3)
	keys.press(ebiten.KeyF12)
	if err := g.Update(); err != nil {
		t.Fatal(err)
	}
	if !g.hud.showDebug {
		t.Error("F3 should open the debug panel")
	}
	if !strings.Contains(g.hud.debugText, "tick 1") {
		t.Errorf("debug text = %q", g.hud.debugText)
	}
	if len(g.shots) != 1 || g.shots[0] != "manual" {
		t.Errorf("queued shots = %v", g.shots)
	}
}

func TestGameReactsToEvents(t *testing.T) {
	g, _ := newTestGame(t, RunConfig{Seed: 1})
	g.react([]pong.Event{
		{Kind: pong.EventPaddleHit, Side: pong.SideRight},
		{Kind: pong.EventGoal, Side: pong.SideLeft},
	})
	if !g.fx.paddleGlow[1].Active() {
		t.Error("right paddle should glow")
	}
	if !g.fx.scorePulse[0].Active() {
		t.Error("left score should pulse")
	}
}

func TestGameScriptMode(t *testing.T) {
	buf := captureLog(t)
	sc, err := pong.LoadScript([]byte(`{"seed": 3, "dt": 0.01, "steps": [{"intent": "right-down"}, {"wait": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	g, keys := newTestGame(t, RunConfig{Script: sc})
	keys.press(ebiten.KeyW) // ignored while a script drives the game

	for i := 0; i < 4; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update %d: %v", i, err)
		}
	}
	st := g.Session().State()
	if st.Left.VelY != 0 {
		t.Error("keyboard should be ignored in script mode")
	}
	cfg := pong.DefaultConfig()
	want := cfg.ScreenHeight/2 - cfg.PaddleHeight/2 + 4*cfg.PaddleSpeed*0.01
	assertNear(t, "Right.Y", st.Right.Y, want)
	if !strings.Contains(buf.String(), "script finished") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestGameScriptMatchesReplay(t *testing.T) {
	sc, err := pong.LoadScript([]byte(`{"seed": 11, "dt": 0.02, "steps": [{"intent": "left-down"}, {"wait": 120}]}`))
	if err != nil {
		t.Fatal(err)
	}
	frames := pong.Replay(pong.DefaultConfig(), sc)

	g, _ := newTestGame(t, RunConfig{Script: sc})
	captureLog(t)
	for range frames {
		if err := g.Update(); err != nil {
			t.Fatal(err)
		}
	}
	last := frames[len(frames)-1]
	st := g.Session().State()
	if st.Ball.X != last.Ball.X || st.Ball.Y != last.Ball.Y || st.LeftScore != last.LeftScore {
		t.Errorf("driver diverged from replay: ball (%v, %v) vs %+v", st.Ball.X, st.Ball.Y, last)
	}
}
