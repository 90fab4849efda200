package pong

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// debugSummaryEvery is the tick interval between summary lines when nothing
// else happened.
const debugSummaryEvery = 60

// debugStats holds timing and counts for one tick.
// Only populated when Session.debug is true.
type debugStats struct {
	tick       uint64
	dt         float64
	updateTime time.Duration
	particles  int
	trail      int
	ballSpeed  float64
	events     []Event
}

// measureTick runs one Update on g and records how it went.
func measureTick(g *GameState, dt float64) debugStats {
	t0 := time.Now()
	g.Update(dt)
	return debugStats{
		tick:       g.Ticks(),
		dt:         dt,
		updateTime: time.Since(t0),
		particles:  g.Particles.Len(),
		trail:      g.Trail.Len(),
		ballSpeed:  g.Ball.VelX,
		events:     g.Events(),
	}
}

// debugLog prints the tick's events, plus a periodic summary line, to
// debugOutput.
func (s *Session) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	for _, ev := range stats.events {
		_, _ = fmt.Fprintf(debugOutput, "[pong] tick %d: %s side=%s at (%.1f, %.1f)\n",
			stats.tick, ev.Kind, ev.Side, ev.Pos.X, ev.Pos.Y)
	}
	if stats.tick%debugSummaryEvery != 0 {
		return
	}
	_, _ = fmt.Fprintf(debugOutput,
		"[pong] tick %d | dt: %.4f | update: %v | particles: %d | trail: %d | ball vx: %.1f\n",
		stats.tick, stats.dt, stats.updateTime, stats.particles, stats.trail, stats.ballSpeed)
}

func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventGoal:
		return "goal"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}
