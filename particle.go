package pong

import "math"

// Particle is a short-lived decorative spark. It never affects play.
type Particle struct {
	X, Y        float64
	VelX, VelY  float64
	Elapsed     float64 // seconds since spawn
	MaxLifetime float64
	Color       Color

	maxOpacity float64
}

// Update advances the particle by dt seconds and reports whether it is still
// alive.
func (p *Particle) Update(dt float64) bool {
	p.X += p.VelX * dt
	p.Y += p.VelY * dt
	p.Elapsed += dt
	return p.Elapsed < p.MaxLifetime
}

// Alpha returns the particle's opacity, fading linearly from the maximum at
// birth to zero at the end of its lifetime.
func (p *Particle) Alpha() float64 {
	return (1 - p.Elapsed/p.MaxLifetime) * p.maxOpacity
}

// ParticleConfig controls how burst particles are spawned.
type ParticleConfig struct {
	// MaxParticles caps the live count. Spawns past the cap are silently
	// dropped. Zero means unbounded.
	MaxParticles int
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial speeds in pixels per second.
	Speed Range
	// ColorFloor is the lowest value of each color channel.
	ColorFloor float64
	// MaxOpacity is the alpha at birth.
	MaxOpacity float64
}

func particleConfig(cfg Config) ParticleConfig {
	return ParticleConfig{
		MaxParticles: cfg.MaxParticles,
		Lifetime:     cfg.ParticleLifetime,
		Speed:        cfg.ParticleSpeed,
		ColorFloor:   cfg.ParticleColorFloor,
		MaxOpacity:   cfg.ParticleMaxOpacity,
	}
}

// ParticleSystem owns the live particles. Particles keep their spawn order.
type ParticleSystem struct {
	config    ParticleConfig
	particles []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg ParticleConfig) *ParticleSystem {
	return &ParticleSystem{config: cfg}
}

// Len returns the number of live particles.
func (s *ParticleSystem) Len() int {
	return len(s.particles)
}

// Particles returns the live particles. The returned slice MUST NOT be
// retained past the next Update or SpawnBurst.
func (s *ParticleSystem) Particles() []Particle {
	return s.particles
}

// Clear removes every particle.
func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
}

// SpawnBurst adds count particles at (x, y), each flying in a random
// direction.
func (s *ParticleSystem) SpawnBurst(x, y float64, count int, rng Rand) {
	colors := Range{s.config.ColorFloor, 1}
	for i := 0; i < count; i++ {
		if s.config.MaxParticles > 0 && len(s.particles) >= s.config.MaxParticles {
			return
		}
		angle := Range{0, 2 * math.Pi}.Random(rng)
		speed := s.config.Speed.Random(rng)
		life := s.config.Lifetime.Random(rng)
		if life <= 0 {
			life = 1.0
		}
		s.particles = append(s.particles, Particle{
			X:           x,
			Y:           y,
			VelX:        math.Cos(angle) * speed,
			VelY:        math.Sin(angle) * speed,
			MaxLifetime: life,
			Color: Color{
				R: colors.Random(rng),
				G: colors.Random(rng),
				B: colors.Random(rng),
				A: 1,
			},
			maxOpacity: s.config.MaxOpacity,
		})
	}
}

// Update advances every particle by dt seconds and drops the expired ones.
// Survivors are compacted in place, keeping their relative order.
func (s *ParticleSystem) Update(dt float64) {
	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		if p.Update(dt) {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}
