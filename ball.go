package pong

// Ball is the square ball. X and Y are its top-left corner.
type Ball struct {
	X, Y       float64
	VelX, VelY float64
	Size       float64

	fieldHeight float64
	baseSpeed   float64
	maxVY       float64
}

// newBall places a ball centered on the field, serving right and down.
func newBall(cfg Config) Ball {
	b := Ball{
		Size:        cfg.BallSize,
		fieldHeight: cfg.ScreenHeight,
		baseSpeed:   cfg.BallBaseSpeed,
		maxVY:       cfg.BallMaxVY,
		VelX:        cfg.BallBaseSpeed,
		VelY:        cfg.BallMaxVY,
	}
	b.center(cfg.Center())
	return b
}

// Update moves the ball by dt seconds and reflects it off the top and bottom
// walls. It reports whether a wall was hit.
func (b *Ball) Update(dt float64) bool {
	b.X += b.VelX * dt
	b.Y += b.VelY * dt

	maxY := b.fieldHeight - b.Size
	switch {
	case b.Y < 0:
		b.Y = 0
		if b.VelY < 0 {
			b.VelY = -b.VelY
		}
		return true
	case b.Y > maxY:
		b.Y = maxY
		if b.VelY > 0 {
			b.VelY = -b.VelY
		}
		return true
	}
	return false
}

// Reset centers the ball on center and serves it at the base speed toward a
// random side with a random vertical component.
func (b *Ball) Reset(center Vec2, rng Rand) {
	b.center(center)
	b.VelX = b.baseSpeed
	if rng.Float64() < 0.5 {
		b.VelX = -b.baseSpeed
	}
	b.VelY = Range{-b.maxVY, b.maxVY}.Random(rng)
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() Rect {
	return Rect{b.X, b.Y, b.Size, b.Size}
}

// Center returns the midpoint of the ball.
func (b *Ball) Center() Vec2 {
	return Vec2{b.X + b.Size/2, b.Y + b.Size/2}
}

func (b *Ball) center(c Vec2) {
	b.X = c.X - b.Size/2
	b.Y = c.Y - b.Size/2
}
