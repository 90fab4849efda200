package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/pong"
)

var (
	colorBackground  = pong.Color{R: 20.0 / 255, G: 20.0 / 255, B: 30.0 / 255, A: 1}
	colorCenterLine  = pong.Color{R: 100.0 / 255, G: 100.0 / 255, B: 100.0 / 255, A: 1}
	colorTrail       = pong.Color{R: 100.0 / 255, G: 200.0 / 255, B: 1, A: 1}
	colorLeftPaddle  = pong.Color{R: 100.0 / 255, G: 200.0 / 255, B: 100.0 / 255, A: 1}
	colorRightPaddle = pong.Color{R: 200.0 / 255, G: 100.0 / 255, B: 100.0 / 255, A: 1}
)

const (
	centerDash  = 10
	centerGap   = 20
	centerWidth = 4
	scoreTop    = 50
	trailWidth  = 2
)

// toRGBA converts c to the premultiplied color.RGBA ebiten expects.
func toRGBA(c pong.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lighten mixes c toward white by t in [0, 1].
func lighten(c pong.Color, t float64) pong.Color {
	return pong.Color{
		R: c.R + (1-c.R)*t,
		G: c.G + (1-c.G)*t,
		B: c.B + (1-c.B)*t,
		A: c.A,
	}
}

// trailAlpha returns the opacity of trail segment i of n; older segments are
// fainter.
func trailAlpha(i, n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(i) / float64(n)
}

// renderer draws a Snapshot. It keeps scratch buffers between frames and
// never touches the simulation.
type renderer struct {
	cfg    pong.Config
	digits []pong.Rect
}

func newRenderer(cfg pong.Config) *renderer {
	return &renderer{cfg: cfg}
}

func fillRect(dst *ebiten.Image, r pong.Rect, c pong.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), toRGBA(c), false)
}

// draw renders one frame: table, trail, paddles, ball, particles, scores and
// the goal flash, in that order.
func (r *renderer) draw(screen *ebiten.Image, snap *pong.Snapshot, fx *effects) {
	screen.Fill(toRGBA(colorBackground))

	w, h := r.cfg.ScreenWidth, r.cfg.ScreenHeight
	for y := 0.0; y < h; y += centerGap {
		fillRect(screen, pong.Rect{X: w/2 - centerWidth/2, Y: y, Width: centerWidth, Height: centerDash}, colorCenterLine)
	}

	if snap.TrailEnabled && len(snap.Trail) > 1 {
		n := len(snap.Trail)
		for i := 0; i < n-1; i++ {
			a, b := snap.Trail[i], snap.Trail[i+1]
			c := colorTrail.WithAlpha(trailAlpha(i, n))
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), trailWidth, toRGBA(c), true)
		}
	}

	fillRect(screen, snap.Left, lighten(colorLeftPaddle, fx.paddleGlow[0].Value))
	fillRect(screen, snap.Right, lighten(colorRightPaddle, fx.paddleGlow[1].Value))
	fillRect(screen, snap.Ball, pong.ColorWhite)

	for _, p := range snap.Particles {
		fillRect(screen, pong.Rect{X: p.X, Y: p.Y, Width: p.Size, Height: p.Size}, p.Color)
	}

	r.digits = appendNumberRects(r.digits[:0], snap.LeftScore, w/4, scoreTop, fx.scorePulse[0].Value)
	r.digits = appendNumberRects(r.digits, snap.RightScore, 3*w/4, scoreTop, fx.scorePulse[1].Value)
	for _, d := range r.digits {
		fillRect(screen, d, pong.ColorWhite)
	}

	if fx.goalFlash.Active() {
		fillRect(screen, pong.Rect{Width: w, Height: h}, pong.ColorWhite.WithAlpha(fx.goalFlash.Value))
	}
}
