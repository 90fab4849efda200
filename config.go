package pong

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the fixed tunables of a match. All distances are in pixels and
// all times in seconds.
type Config struct {
	ScreenWidth  float64
	ScreenHeight float64

	BallSize float64
	// BallBaseSpeed is the horizontal serve speed.
	BallBaseSpeed float64
	// BallMaxVY bounds the vertical serve speed to [-BallMaxVY, BallMaxVY).
	BallMaxVY float64
	// MaxBallSpeed caps the horizontal speed after a paddle hit.
	// Zero leaves rallies unbounded.
	MaxBallSpeed float64

	PaddleWidth  float64
	PaddleHeight float64
	// PaddleMargin is the gap between a paddle and its side of the screen.
	PaddleMargin float64
	PaddleSpeed  float64
	// PaddleBounceMultiplier scales the horizontal speed on every paddle hit.
	PaddleBounceMultiplier float64

	ParticlesPerBurst int
	// MaxParticles caps the live particle count. Zero means unbounded.
	MaxParticles       int
	ParticleLifetime   Range
	ParticleSpeed      Range
	ParticleColorFloor float64
	ParticleSize       float64
	ParticleMaxOpacity float64

	TrailMaxLength int

	// MaxFrameDelta is the largest dt a single tick will simulate. Zero
	// disables the clamp.
	MaxFrameDelta float64
}

// DefaultConfig returns the standard 1024x768 table.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:            1024,
		ScreenHeight:           768,
		BallSize:               20,
		BallBaseSpeed:          300,
		BallMaxVY:              200,
		PaddleWidth:            15,
		PaddleHeight:           100,
		PaddleMargin:           20,
		PaddleSpeed:            400,
		PaddleBounceMultiplier: 1.05,
		ParticlesPerBurst:      20,
		ParticleLifetime:       Range{0.5, 2.0},
		ParticleSpeed:          Range{50, 200},
		ParticleColorFloor:     100.0 / 255.0,
		ParticleSize:           4,
		ParticleMaxOpacity:     1,
		TrailMaxLength:         50,
		MaxFrameDelta:          0.05,
	}
}

// Center returns the middle of the screen.
func (c Config) Center() Vec2 {
	return Vec2{c.ScreenWidth / 2, c.ScreenHeight / 2}
}

// Environment variables read by LoadEnv.
const (
	EnvMaxBallSpeed      = "PONG_MAX_BALL_SPEED"
	EnvBounceMultiplier  = "PONG_BOUNCE_MULTIPLIER"
	EnvTrailMaxLength    = "PONG_TRAIL_MAX_LENGTH"
	EnvParticlesPerBurst = "PONG_PARTICLES_PER_BURST"
	EnvMaxParticles      = "PONG_MAX_PARTICLES"
	EnvMaxFrameDelta     = "PONG_MAX_FRAME_DELTA"
)

// LoadEnv applies overrides from the dotenv file at path (if it exists) and
// then from the process environment, which takes precedence. An empty path
// skips the file.
func (c *Config) LoadEnv(path string) error {
	vars := map[string]string{}
	if path != "" {
		fileVars, err := godotenv.Read(path)
		switch {
		case err == nil:
			vars = fileVars
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("read env file %s: %w", path, err)
		}
	}
	for _, key := range []string{
		EnvMaxBallSpeed, EnvBounceMultiplier, EnvTrailMaxLength,
		EnvParticlesPerBurst, EnvMaxParticles, EnvMaxFrameDelta,
	} {
		if v, ok := os.LookupEnv(key); ok {
			vars[key] = v
		}
	}
	return c.apply(vars)
}

// apply parses the known keys of vars into c.
func (c *Config) apply(vars map[string]string) error {
	floats := []struct {
		key string
		dst *float64
		min float64
	}{
		{EnvMaxBallSpeed, &c.MaxBallSpeed, 0},
		{EnvBounceMultiplier, &c.PaddleBounceMultiplier, 1},
		{EnvMaxFrameDelta, &c.MaxFrameDelta, 0},
	}
	for _, f := range floats {
		v, ok := vars[f.key]
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.key, err)
		}
		if n < f.min {
			return fmt.Errorf("parse %s: %v is below %v", f.key, n, f.min)
		}
		*f.dst = n
	}

	ints := []struct {
		key string
		dst *int
	}{
		{EnvTrailMaxLength, &c.TrailMaxLength},
		{EnvParticlesPerBurst, &c.ParticlesPerBurst},
		{EnvMaxParticles, &c.MaxParticles},
	}
	for _, f := range ints {
		v, ok := vars[f.key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", f.key, err)
		}
		if n < 0 {
			return fmt.Errorf("parse %s: %d is negative", f.key, n)
		}
		*f.dst = n
	}
	return nil
}
