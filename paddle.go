package pong

// Paddle is a vertical bat. Only Y moves; X is fixed by the side it plays on.
type Paddle struct {
	X, Y          float64
	VelY          float64
	Width, Height float64

	speed       float64
	fieldHeight float64
}

func newPaddle(cfg Config, x float64) Paddle {
	return Paddle{
		X:           x,
		Y:           cfg.ScreenHeight/2 - cfg.PaddleHeight/2,
		Width:       cfg.PaddleWidth,
		Height:      cfg.PaddleHeight,
		speed:       cfg.PaddleSpeed,
		fieldHeight: cfg.ScreenHeight,
	}
}

// Update moves the paddle by dt seconds and keeps it on screen.
func (p *Paddle) Update(dt float64) {
	p.Y = clamp(p.Y+p.VelY*dt, 0, p.fieldHeight-p.Height)
}

// MoveUp sets the paddle moving toward the top of the screen.
func (p *Paddle) MoveUp() { p.VelY = -p.speed }

// MoveDown sets the paddle moving toward the bottom of the screen.
func (p *Paddle) MoveDown() { p.VelY = p.speed }

// Stop halts the paddle.
func (p *Paddle) Stop() { p.VelY = 0 }

// Bounds returns the paddle's bounding box.
func (p *Paddle) Bounds() Rect {
	return Rect{p.X, p.Y, p.Width, p.Height}
}
