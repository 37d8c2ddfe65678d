package game

import (
	"github.com/vovakirdan/moon-runner/internal/core"
)

// overlapsX reports whether the player's bounding box overlaps the
// obstacle horizontally.
func overlapsX(p Player, o Obstacle) bool {
	return p.X+p.Radius > o.X && p.X-p.Radius < o.Right()
}

// hitsObstacle reports whether the player leaves the obstacle's gap while
// overlapping it horizontally.
func hitsObstacle(p Player, o Obstacle) bool {
	if !overlapsX(p, o) {
		return false
	}
	return p.Y-p.Radius < o.TopHeight || p.Y+p.Radius > o.BottomY
}

// obstacleResult summarizes one collision pass over the obstacles.
type obstacleResult struct {
	crashed bool
	passed  int
}

// resolveObstacles tests the player against every obstacle and marks the
// ones it has cleared. Each obstacle is counted as passed at most once.
func resolveObstacles(w *World) obstacleResult {
	var res obstacleResult
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if hitsObstacle(w.Player, *o) {
			res.crashed = true
		}
		if !o.Passed && w.Player.X > o.Right() {
			o.Passed = true
			res.passed++
		}
	}
	return res
}

// resolveCollectibles marks tokens touching the player as collected and
// returns their animated positions.
func resolveCollectibles(w *World, rate, amplitude float64, out []core.Vec) []core.Vec {
	p := w.Player.Pos()
	for i := range w.Collectibles {
		c := &w.Collectibles[i]
		if c.Collected {
			continue
		}
		pos := core.Vec{X: c.X, Y: c.AnimatedY(w.Frame, rate, amplitude)}
		if core.Dist(p, pos) < w.Player.Radius+c.Radius {
			c.Collected = true
			out = append(out, pos)
		}
	}
	return out
}
