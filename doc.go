// Package pong is the simulation core of a two-paddle, one-ball Pong game.
//
// The core has no graphics dependency. A driver owns a [Session], turns raw
// input into [Intent] values, calls [Session.Update] once per frame with the
// measured frame time and draws from a [Snapshot]:
//
//	rng := rand.New(rand.NewPCG(1, 2))
//	s := pong.NewSession(pong.DefaultConfig(), rng)
//	s.Apply(pong.IntentLeftUp)
//	s.Update(1.0 / 60)
//	var snap pong.Snapshot
//	s.State().Snapshot(&snap)
//
// # Tick
//
// Each [GameState.Update] advances the ball, both paddles and the particles,
// records the trail, resolves paddle hits and then checks for goals. Paddle
// hits are only tested while the ball travels toward the paddle, so a ball
// overlapping a paddle for several frames bounces once.
//
// # Randomness
//
// Ball serves and particle bursts draw from an injected [Rand]. Two sessions
// seeded identically and fed the same intents and frame times produce the
// same trajectories; [Replay] relies on this.
//
// The Ebitengine driver lives in the game subpackage and the playable binary
// in demos/pong.
package pong
