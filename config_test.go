package pong

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PaddleBounceMultiplier <= 1 {
		t.Errorf("bounce multiplier %v should exceed 1", cfg.PaddleBounceMultiplier)
	}
	if cfg.MaxBallSpeed != 0 {
		t.Errorf("MaxBallSpeed = %v, want unbounded", cfg.MaxBallSpeed)
	}
	if cfg.MaxFrameDelta <= 0 {
		t.Error("MaxFrameDelta should clamp by default")
	}
	c := cfg.Center()
	assertNear(t, "center.X", c.X, 512)
	assertNear(t, "center.Y", c.Y, 384)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.env")
	data := "PONG_MAX_BALL_SPEED=900\nPONG_TRAIL_MAX_LENGTH=12\nPONG_PARTICLES_PER_BURST=5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := cfg.LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	assertNear(t, "MaxBallSpeed", cfg.MaxBallSpeed, 900)
	if cfg.TrailMaxLength != 12 || cfg.ParticlesPerBurst != 5 {
		t.Errorf("trail/burst = %d/%d", cfg.TrailMaxLength, cfg.ParticlesPerBurst)
	}
}

func TestLoadEnvProcessOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.env")
	if err := os.WriteFile(path, []byte("PONG_BOUNCE_MULTIPLIER=1.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvBounceMultiplier, "1.5")

	cfg := DefaultConfig()
	if err := cfg.LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	assertNear(t, "PaddleBounceMultiplier", cfg.PaddleBounceMultiplier, 1.5)
}

func TestLoadEnvMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Error("config changed without overrides")
	}
}

func TestLoadEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvMaxBallSpeed, "fast"},
		{EnvMaxBallSpeed, "-1"},
		{EnvBounceMultiplier, "0.5"},
		{EnvMaxParticles, "many"},
		{EnvTrailMaxLength, "-4"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			cfg := DefaultConfig()
			if err := cfg.LoadEnv(""); err == nil {
				t.Error("expected error")
			}
		})
	}
}
