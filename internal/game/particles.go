package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/core"
)

// Particle is a short-lived visual effect fragment.
type Particle struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  float64 // 1.0 at birth, removed at or below zero
	Color core.Color
	Size  float64
}

// ParticleSystem owns the live particles.
type ParticleSystem struct {
	cfg   config.Particles
	rng   *rand.Rand
	items []Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem(cfg config.Particles, rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{cfg: cfg, rng: rng}
}

// Burst emits count particles radiating from pos in random directions.
func (ps *ParticleSystem) Burst(pos core.Vec, color core.Color, count int) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.cfg.MinSpeed + ps.rng.Float64()*(ps.cfg.MaxSpeed-ps.cfg.MinSpeed)
		ps.items = append(ps.items, Particle{
			Pos:   pos,
			Vel:   core.Polar(angle, speed),
			Life:  1,
			Color: color,
			Size:  ps.cfg.MinSize + ps.rng.Float64()*(ps.cfg.MaxSize-ps.cfg.MinSize),
		})
	}
}

// Step advances every particle and drops the expired ones.
func (ps *ParticleSystem) Step(dt float64) {
	alive := ps.items[:0]
	for _, p := range ps.items {
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Vel.Y += ps.cfg.Gravity * dt
		p.Life -= ps.cfg.Decay * dt
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	clear(ps.items[len(alive):])
	ps.items = alive
}

// Clear removes all particles.
func (ps *ParticleSystem) Clear() {
	ps.items = ps.items[:0]
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.items)
}

// Items returns the live particles. The slice is owned by the system.
func (ps *ParticleSystem) Items() []Particle {
	return ps.items
}
