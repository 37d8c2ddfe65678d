package game

import (
	"math"

	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/core"
)

// stepPlayer integrates the player one tick. Returns true if the player
// touched the floor of the viewport.
func stepPlayer(p *Player, cfg config.Physics, floor, dt float64) (grounded bool) {
	p.VY += cfg.Gravity * cfg.GravityDampening * dt
	p.Y += p.VY * dt
	p.Rotation = core.ClampF(p.VY*cfg.RotationFactor, -math.Pi/4, math.Pi/4)

	if p.Y+p.Radius > floor {
		p.Y = floor - p.Radius
		grounded = true
	}

	// Flying too far above the viewport stalls the player at the ceiling
	if p.Y < cfg.Ceiling {
		p.Y = cfg.Ceiling
		p.VY = 0
	}

	return grounded
}

// applyJump overrides the vertical velocity with the jump impulse.
func applyJump(p *Player, cfg config.Physics) {
	p.VY = cfg.JumpImpulse
}
