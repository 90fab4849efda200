// Package game runs a pong.Session inside an Ebitengine window: it maps the
// keyboard to intents, measures frame time, draws the snapshot and plays
// event sounds.
package game

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/pong"
)

// logOutput receives driver log lines. Tests swap it for a buffer.
var logOutput io.Writer = os.Stderr

func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[pong] "+format+"\n", args...)
}

// RunConfig configures the window and the optional driver features.
type RunConfig struct {
	Title   string
	ShowFPS bool
	// Debug logs per-tick stats to stderr and starts with the F3 panel open.
	Debug bool
	// Mute disables sound. Sound is also off when no audio device exists.
	Mute bool
	// ScreenshotDir is where F12 screenshots are written.
	ScreenshotDir string
	// Script, when set, drives the session instead of the keyboard and
	// replaces the measured frame time with the script's fixed dt.
	Script *pong.Script
	// Seed seeds the random source when Script is nil.
	Seed uint64
}

// Game implements ebiten.Game around a single pong.Session.
type Game struct {
	cfg     pong.Config
	run     RunConfig
	session *pong.Session
	keys    KeySource
	runner  *pong.Runner
	now     func() time.Time
	last    time.Time

	render  *renderer
	hud     *hud
	fx      *effects
	sound   *sounds
	snap    pong.Snapshot
	intents []pong.Intent
	shots   []string
}

// NewGame builds a Game for cfg. It does not open a window.
func NewGame(cfg pong.Config, run RunConfig) *Game {
	var rng pong.Rand
	if run.Script != nil {
		rng = run.Script.NewRand()
	} else {
		rng = newRand(run.Seed)
	}
	if run.ScreenshotDir == "" {
		run.ScreenshotDir = "screenshots"
	}

	g := &Game{
		cfg:     cfg,
		run:     run,
		session: pong.NewSession(cfg, rng),
		keys:    ebitenKeys{},
		now:     time.Now,
		render:  newRenderer(cfg),
		hud:     newHUD(run.ShowFPS),
		fx:      newEffects(),
	}
	g.session.SetDebugMode(run.Debug)
	g.hud.showDebug = run.Debug
	if run.Script != nil {
		g.runner = run.Script.Runner()
	}
	g.last = g.now()
	return g
}

// Session returns the session the game drives.
func (g *Game) Session() *pong.Session {
	return g.session
}

// frameTime returns the seconds elapsed since the previous Update. In script
// mode it returns the script's fixed dt.
func (g *Game) frameTime() float64 {
	if g.run.Script != nil {
		return g.run.Script.DT
	}
	now := g.now()
	dt := now.Sub(g.last).Seconds()
	g.last = now
	return dt
}

// Update drains input, advances the simulation and reacts to its events.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.Step(g.session)
		if g.runner.Done() && !g.session.Quit() {
			logf("script finished at tick %d", g.session.State().Ticks())
			g.runner = nil
		}
	} else {
		g.intents = appendIntents(g.intents[:0], g.keys)
		for _, in := range g.intents {
			g.session.Apply(in)
		}
	}
	g.driverKeys()

	if g.session.Quit() {
		return ebiten.Termination
	}

	dt := g.frameTime()
	g.session.Update(dt)
	state := g.session.State()
	g.react(state.Events())
	g.fx.update(float32(dt))
	g.hud.update(dt, state)
	return nil
}

// driverKeys handles keys that affect the driver rather than the match.
func (g *Game) driverKeys() {
	if g.keys.IsKeyJustPressed(ebiten.KeyF12) {
		g.Screenshot("manual")
	}
	if g.keys.IsKeyJustPressed(ebiten.KeyF3) {
		g.hud.showDebug = !g.hud.showDebug
	}
	if g.keys.IsKeyJustPressed(ebiten.KeyM) && g.sound != nil {
		g.run.Mute = !g.run.Mute
	}
}

func sideIndex(s pong.Side) int {
	if s == pong.SideRight {
		return 1
	}
	return 0
}

// react starts effects and sounds for the events of the last tick.
func (g *Game) react(events []pong.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case pong.EventPaddleHit:
			g.fx.paddleHit(sideIndex(ev.Side))
		case pong.EventGoal:
			g.fx.goal(sideIndex(ev.Side))
		}
		if g.sound != nil && !g.run.Mute {
			g.sound.play(ev.Kind)
		}
	}
}

// Draw renders the current state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.State().Snapshot(&g.snap)
	g.render.draw(screen, &g.snap, g.fx)
	g.hud.draw(screen, int(g.cfg.ScreenHeight))
	g.flushScreenshots(screen)
}

// Layout keeps the logical screen at the configured table size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.ScreenWidth), int(g.cfg.ScreenHeight)
}

// Run opens a window and plays until the player quits or the window closes.
func Run(cfg pong.Config, run RunConfig) error {
	if run.Title == "" {
		run.Title = "Pong"
	}
	ebiten.SetWindowSize(int(cfg.ScreenWidth), int(cfg.ScreenHeight))
	ebiten.SetWindowTitle(run.Title)
	ebiten.SetVsyncEnabled(true)

	g := NewGame(cfg, run)
	if !run.Mute {
		g.sound = newSounds()
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
