package pong

// Side identifies a player.
type Side uint8

const (
	SideNone  Side = iota // not tied to a player (wall bounces)
	SideLeft              // left paddle, scores on the right wall
	SideRight             // right paddle, scores on the left wall
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// EventKind identifies something that happened during a tick.
type EventKind uint8

const (
	EventWallBounce EventKind = iota // ball reflected off the top or bottom wall
	EventPaddleHit                   // ball returned by a paddle
	EventGoal                        // ball left the field; Side is the scorer
)

// Event is a gameplay occurrence recorded during the last tick. The
// simulation itself never reads events back; they exist for sound and
// visual feedback.
type Event struct {
	Kind EventKind
	Side Side
	Pos  Vec2
}

// GameState is the whole simulation: one ball, two paddles, the particles,
// the scores and the ball trail. It is owned by a single goroutine.
type GameState struct {
	Ball         Ball
	Left         Paddle
	Right        Paddle
	Particles    *ParticleSystem
	LeftScore    int
	RightScore   int
	TrailEnabled bool
	Trail        *Trail

	cfg    Config
	rng    Rand
	events []Event
	ticks  uint64
}

// NewGameState creates a fresh match with zero scores and the trail enabled.
func NewGameState(cfg Config, rng Rand) *GameState {
	return &GameState{
		Ball:         newBall(cfg),
		Left:         newPaddle(cfg, cfg.PaddleMargin),
		Right:        newPaddle(cfg, cfg.ScreenWidth-cfg.PaddleMargin-cfg.PaddleWidth),
		Particles:    NewParticleSystem(particleConfig(cfg)),
		TrailEnabled: true,
		Trail:        NewTrail(cfg.TrailMaxLength),
		cfg:          cfg,
		rng:          rng,
	}
}

// Config returns the configuration the state was built with.
func (g *GameState) Config() Config {
	return g.cfg
}

// Ticks returns the number of completed Update calls.
func (g *GameState) Ticks() uint64 {
	return g.ticks
}

// Events returns the events recorded by the last Update. The returned slice
// MUST NOT be retained past the next Update.
func (g *GameState) Events() []Event {
	return g.events
}

// Update advances the simulation by dt seconds. dt is clamped to
// Config.MaxFrameDelta so a stalled frame cannot tunnel the ball through a
// paddle.
func (g *GameState) Update(dt float64) {
	g.events = g.events[:0]
	if dt < 0 {
		dt = 0
	}
	if g.cfg.MaxFrameDelta > 0 && dt > g.cfg.MaxFrameDelta {
		dt = g.cfg.MaxFrameDelta
	}

	if g.Ball.Update(dt) {
		g.emit(EventWallBounce, SideNone, g.Ball.Center())
	}
	g.Left.Update(dt)
	g.Right.Update(dt)
	g.Particles.Update(dt)

	if g.TrailEnabled {
		g.Trail.Push(g.Ball.Center())
	}

	g.resolvePaddles()
	g.checkGoal()
	g.ticks++
}

// resolvePaddles bounces the ball off a paddle it is moving toward.
func (g *GameState) resolvePaddles() {
	b := &g.Ball
	bounds := b.Bounds()
	switch {
	case b.VelX < 0 && bounds.Intersects(g.Left.Bounds()):
		b.X = g.Left.X + g.Left.Width
		g.bounce(SideLeft, Vec2{b.X, b.Y + b.Size/2})
	case b.VelX > 0 && bounds.Intersects(g.Right.Bounds()):
		b.X = g.Right.X - b.Size
		g.bounce(SideRight, Vec2{b.X + b.Size, b.Y + b.Size/2})
	}
}

func (g *GameState) bounce(side Side, contact Vec2) {
	b := &g.Ball
	b.VelX = -b.VelX * g.cfg.PaddleBounceMultiplier
	if limit := g.cfg.MaxBallSpeed; limit > 0 {
		b.VelX = clamp(b.VelX, -limit, limit)
	}
	g.Particles.SpawnBurst(contact.X, contact.Y, g.cfg.ParticlesPerBurst, g.rng)
	g.emit(EventPaddleHit, side, contact)
}

// checkGoal awards a point when the ball reaches either side wall. At most
// one side scores per tick.
func (g *GameState) checkGoal() {
	b := &g.Ball
	switch {
	case b.X <= 0:
		g.RightScore++
		g.serve(SideRight)
	case b.X >= g.cfg.ScreenWidth-b.Size:
		g.LeftScore++
		g.serve(SideLeft)
	}
}

func (g *GameState) serve(scorer Side) {
	pos := g.Ball.Center()
	g.Ball.Reset(g.cfg.Center(), g.rng)
	g.Trail.Clear()
	g.emit(EventGoal, scorer, pos)
}

// SetTrailEnabled turns the trail on or off. Turning it off discards the
// stored points.
func (g *GameState) SetTrailEnabled(on bool) {
	g.TrailEnabled = on
	if !on {
		g.Trail.Clear()
	}
}

// SpawnBurstAtBall emits one particle burst from the center of the ball.
func (g *GameState) SpawnBurstAtBall() {
	c := g.Ball.Center()
	g.Particles.SpawnBurst(c.X, c.Y, g.cfg.ParticlesPerBurst, g.rng)
}

func (g *GameState) emit(kind EventKind, side Side, pos Vec2) {
	g.events = append(g.events, Event{Kind: kind, Side: side, Pos: pos})
}
