package pong

// Session owns the current GameState and applies intents to it. A reset
// replaces the state wholesale; quitting latches and freezes the simulation.
type Session struct {
	cfg   Config
	rng   Rand
	state *GameState
	quit  bool
	debug bool
}

// NewSession starts a match using cfg. rng feeds every serve and particle
// burst for the lifetime of the session, resets included.
func NewSession(cfg Config, rng Rand) *Session {
	return &Session{
		cfg:   cfg,
		rng:   rng,
		state: NewGameState(cfg, rng),
	}
}

// State returns the current match. The pointer changes after a reset.
func (s *Session) State() *GameState {
	return s.state
}

// Quit reports whether a quit intent has been applied.
func (s *Session) Quit() bool {
	return s.quit
}

// SetDebugMode enables or disables per-tick stats on stderr.
func (s *Session) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Apply executes one intent. Repeating a paddle intent is harmless.
func (s *Session) Apply(in Intent) {
	g := s.state
	switch in {
	case IntentLeftUp:
		g.Left.MoveUp()
	case IntentLeftDown:
		g.Left.MoveDown()
	case IntentLeftStop:
		g.Left.Stop()
	case IntentRightUp:
		g.Right.MoveUp()
	case IntentRightDown:
		g.Right.MoveDown()
	case IntentRightStop:
		g.Right.Stop()
	case IntentToggleTrail:
		g.SetTrailEnabled(!g.TrailEnabled)
	case IntentSpawnBurst:
		g.SpawnBurstAtBall()
	case IntentResetGame:
		s.state = NewGameState(s.cfg, s.rng)
	case IntentQuit:
		s.quit = true
	}
}

// Update advances the current match by dt seconds. It does nothing once the
// session has quit.
func (s *Session) Update(dt float64) {
	if s.quit {
		return
	}
	if !s.debug {
		s.state.Update(dt)
		return
	}
	stats := measureTick(s.state, dt)
	s.debugLog(stats)
}
