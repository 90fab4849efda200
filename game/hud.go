package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/pong"
)

const hudRefresh = 0.5 // seconds between FPS readouts

var hudHelp = [...]string{
	"W/S: Left Paddle | Up/Down: Right Paddle",
	"T: Toggle Trail | Space: Particles | R: Reset | ESC: Quit",
	"M: Mute | F3: Debug | F12: Screenshot",
}

// hud draws the FPS readout, the key help and, when enabled, a debug panel.
// The FPS image is only redrawn every hudRefresh seconds.
type hud struct {
	img       *ebiten.Image
	sinceDraw float64
	showFPS   bool
	showDebug bool
	debugText string
}

func newHUD(showFPS bool) *hud {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &hud{
		img:       ebiten.NewImage(100, 32),
		showFPS:   showFPS,
		sinceDraw: hudRefresh,
	}
}

func (h *hud) update(dt float64, g *pong.GameState) {
	if h.showDebug {
		h.debugText = debugText(g)
	}
	if !h.showFPS {
		return
	}
	h.sinceDraw += dt
	if h.sinceDraw < hudRefresh {
		return
	}
	h.sinceDraw = 0

	h.img.Clear()
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// debugText summarizes the simulation for the F3 panel.
func debugText(g *pong.GameState) string {
	return fmt.Sprintf("tick %d\nball (%.0f, %.0f) v=(%.0f, %.0f)\nparticles %d\ntrail %d/%d",
		g.Ticks(), g.Ball.X, g.Ball.Y, g.Ball.VelX, g.Ball.VelY,
		g.Particles.Len(), g.Trail.Len(), g.Trail.Cap())
}

func (h *hud) draw(screen *ebiten.Image, height int) {
	if h.showFPS {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(10, 10)
		screen.DrawImage(h.img, op)
	}
	if h.showDebug {
		ebitenutil.DebugPrintAt(screen, h.debugText, 10, 50)
	}
	for i, line := range hudHelp {
		ebitenutil.DebugPrintAt(screen, line, 10, height-30*(len(hudHelp)-i))
	}
}
