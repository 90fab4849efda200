package pong

// ParticleView is how a renderer sees one particle: a square with its fade
// already folded into the color's alpha.
type ParticleView struct {
	X, Y  float64
	Size  float64
	Color Color
}

// Snapshot is a read-only copy of everything a renderer draws in one frame.
// Reuse a Snapshot across frames to avoid reallocating its slices.
type Snapshot struct {
	Ball         Rect
	Left         Rect
	Right        Rect
	LeftScore    int
	RightScore   int
	TrailEnabled bool
	// Trail holds the recent ball centers, oldest first.
	Trail     []Vec2
	Particles []ParticleView
}

// Snapshot fills dst with the current state.
func (g *GameState) Snapshot(dst *Snapshot) {
	dst.Ball = g.Ball.Bounds()
	dst.Left = g.Left.Bounds()
	dst.Right = g.Right.Bounds()
	dst.LeftScore = g.LeftScore
	dst.RightScore = g.RightScore
	dst.TrailEnabled = g.TrailEnabled
	dst.Trail = g.Trail.AppendPoints(dst.Trail[:0])

	dst.Particles = dst.Particles[:0]
	for i := range g.Particles.particles {
		p := &g.Particles.particles[i]
		dst.Particles = append(dst.Particles, ParticleView{
			X:     p.X,
			Y:     p.Y,
			Size:  g.cfg.ParticleSize,
			Color: p.Color.WithAlpha(p.Alpha()),
		})
	}
}
