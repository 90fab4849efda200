package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade animates a single value from a start to a resting value. Between
// animations Value holds the resting value.
//
// There is no global animation manager; the Game updates its fades itself.
type fade struct {
	tween *gween.Tween
	Value float64
	rest  float64
}

func newFade(rest float64) *fade {
	return &fade{Value: rest, rest: rest}
}

// Start restarts the animation from `from` back to the resting value over
// duration seconds using fn.
func (f *fade) Start(from float64, duration float32, fn ease.TweenFunc) {
	f.tween = gween.New(float32(from), float32(f.rest), duration, fn)
	f.Value = from
}

// Active reports whether an animation is running.
func (f *fade) Active() bool {
	return f.tween != nil
}

// Update advances the animation by dt seconds.
func (f *fade) Update(dt float32) {
	if f.tween == nil {
		return
	}
	v, finished := f.tween.Update(dt)
	f.Value = float64(v)
	if finished {
		f.tween = nil
		f.Value = f.rest
	}
}

const (
	scorePulseScale    = 1.6
	scorePulseDuration = 0.45
	goalFlashAlpha     = 0.25
	goalFlashDuration  = 0.3
	hitFlashDuration   = 0.15
)

// effects holds the presentation-only animations triggered by game events.
type effects struct {
	scorePulse [2]*fade // left, right digit scale
	goalFlash  *fade    // full-screen white overlay alpha
	paddleGlow [2]*fade // left, right paddle brightening
}

func newEffects() *effects {
	return &effects{
		scorePulse: [2]*fade{newFade(1), newFade(1)},
		goalFlash:  newFade(0),
		paddleGlow: [2]*fade{newFade(0), newFade(0)},
	}
}

func (e *effects) update(dt float32) {
	for i := range e.scorePulse {
		e.scorePulse[i].Update(dt)
		e.paddleGlow[i].Update(dt)
	}
	e.goalFlash.Update(dt)
}

func (e *effects) goal(side int) {
	e.scorePulse[side].Start(scorePulseScale, scorePulseDuration, ease.OutBack)
	e.goalFlash.Start(goalFlashAlpha, goalFlashDuration, ease.OutQuad)
}

func (e *effects) paddleHit(side int) {
	e.paddleGlow[side].Start(1, hitFlashDuration, ease.Linear)
}
