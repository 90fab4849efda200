package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pong"
)

// KeySource reports keyboard state for the current frame.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	IsKeyJustReleased(key ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(key ebiten.Key) bool      { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) IsKeyJustPressed(key ebiten.Key) bool  { return inpututil.IsKeyJustPressed(key) }
func (ebitenKeys) IsKeyJustReleased(key ebiten.Key) bool { return inpututil.IsKeyJustReleased(key) }

// paddleKeys binds one paddle to an up and a down key.
type paddleKeys struct {
	up, down         ebiten.Key
	moveUp, moveDown pong.Intent
	stop             pong.Intent
}

var paddleBindings = [2]paddleKeys{
	{ebiten.KeyW, ebiten.KeyS, pong.IntentLeftUp, pong.IntentLeftDown, pong.IntentLeftStop},
	{ebiten.KeyArrowUp, ebiten.KeyArrowDown, pong.IntentRightUp, pong.IntentRightDown, pong.IntentRightStop},
}

// commandBindings maps single key presses to intents.
var commandBindings = []struct {
	key    ebiten.Key
	intent pong.Intent
}{
	{ebiten.KeyT, pong.IntentToggleTrail},
	{ebiten.KeySpace, pong.IntentSpawnBurst},
	{ebiten.KeyR, pong.IntentResetGame},
	{ebiten.KeyEscape, pong.IntentQuit},
}

// appendIntents translates this frame's key transitions into intents and
// appends them to dst. Releasing one paddle key while the other is still
// held turns the paddle around instead of stopping it.
func appendIntents(dst []pong.Intent, keys KeySource) []pong.Intent {
	for _, b := range paddleBindings {
		switch {
		case keys.IsKeyJustPressed(b.up):
			dst = append(dst, b.moveUp)
		case keys.IsKeyJustPressed(b.down):
			dst = append(dst, b.moveDown)
		case keys.IsKeyJustReleased(b.up), keys.IsKeyJustReleased(b.down):
			switch {
			case keys.IsKeyPressed(b.up):
				dst = append(dst, b.moveUp)
			case keys.IsKeyPressed(b.down):
				dst = append(dst, b.moveDown)
			default:
				dst = append(dst, b.stop)
			}
		}
	}
	for _, c := range commandBindings {
		if keys.IsKeyJustPressed(c.key) {
			dst = append(dst, c.intent)
		}
	}
	return dst
}
