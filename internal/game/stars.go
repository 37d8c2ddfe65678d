package game

import (
	"math/rand"

	"github.com/vovakirdan/moon-runner/internal/config"
)

// seedStars scatters the background stars over the viewport.
func seedStars(cfg config.Stars, rng *rand.Rand, width, height float64) []Star {
	stars := make([]Star, cfg.Count)
	for i := range stars {
		stars[i] = Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Size:  cfg.MinSize + rng.Float64()*(cfg.MaxSize-cfg.MinSize),
			Speed: cfg.MinSpeed + rng.Float64()*(cfg.MaxSpeed-cfg.MinSpeed),
		}
	}
	return stars
}

// driftStars moves stars left and wraps them to the right edge.
func driftStars(stars []Star, width, dt float64) {
	for i := range stars {
		stars[i].X -= stars[i].Speed * dt
		if stars[i].X < 0 {
			stars[i].X = width
		}
	}
}
