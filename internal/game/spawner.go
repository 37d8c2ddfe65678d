package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/moon-runner/internal/config"
)

// Spawner extends the obstacle timeline ahead of the player.
type Spawner struct {
	obstacles config.Obstacles
	tokens    config.Tokens
	rng       *rand.Rand
}

// NewSpawner creates a spawner drawing its randomness from rng.
func NewSpawner(obstacles config.Obstacles, tokens config.Tokens, rng *rand.Rand) *Spawner {
	return &Spawner{
		obstacles: obstacles,
		tokens:    tokens,
		rng:       rng,
	}
}

// Seed appends the initial lookahead batch. Called on every reset.
func (s *Spawner) Seed(w *World) {
	for i := 0; i < s.obstacles.Initial; i++ {
		s.Spawn(w)
	}
}

// TopUp spawns a new obstacle if the lookahead buffer is shorter than one
// spacing unit. Returns true if an obstacle was added.
func (s *Spawner) TopUp(w *World) bool {
	n := len(w.Obstacles)
	if n > 0 && w.Obstacles[n-1].X >= w.Width-s.obstacles.Spacing {
		return false
	}
	s.Spawn(w)
	return true
}

// Spawn places one obstacle after the current tail, possibly with a token
// in its gap. The viewport size is read from w on every call.
func (s *Spawner) Spawn(w *World) {
	x := w.Width
	if n := len(w.Obstacles); n > 0 {
		x = math.Max(w.Obstacles[n-1].X+s.obstacles.Spacing, w.Width)
	}

	top := float64(s.topHeight(w.Height))
	kind := KindBlock
	if s.rng.Float64() < s.obstacles.CardChance {
		kind = KindNFTCard
	}

	w.Obstacles = append(w.Obstacles, Obstacle{
		X:         x,
		TopHeight: top,
		BottomY:   top + s.obstacles.Gap,
		Width:     s.obstacles.Width,
		Kind:      kind,
	})

	if s.rng.Float64() < s.tokens.Chance {
		w.Collectibles = append(w.Collectibles, Collectible{
			X:           x + s.obstacles.Width/2,
			Y:           top + s.obstacles.Gap/2,
			Radius:      s.tokens.Radius,
			Kind:        KindToken,
			FloatOffset: s.rng.Float64() * 2 * math.Pi,
		})
	}
}

// topHeight draws an integer height uniformly from
// [minHeight, viewportH - gap - minHeight]. Viewports too short for the
// range collapse to minHeight.
func (s *Spawner) topHeight(viewportH float64) int {
	lo := s.obstacles.MinHeight
	hi := int(math.Floor(viewportH - s.obstacles.Gap - float64(lo)))
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// scroll moves obstacles and collectibles left by dx.
func scroll(w *World, dx float64) {
	for i := range w.Obstacles {
		w.Obstacles[i].X -= dx
	}
	for i := range w.Collectibles {
		w.Collectibles[i].X -= dx
	}
}

// prune drops obstacles and collectibles that left the viewport and tokens
// that were collected. Order is preserved.
func prune(w *World, obstacleCutoff, tokenCutoff float64) {
	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Right() >= obstacleCutoff {
			kept = append(kept, o)
		}
	}
	clear(w.Obstacles[len(kept):])
	w.Obstacles = kept

	tokens := w.Collectibles[:0]
	for _, c := range w.Collectibles {
		if !c.Collected && c.X >= tokenCutoff {
			tokens = append(tokens, c)
		}
	}
	clear(w.Collectibles[len(tokens):])
	w.Collectibles = tokens
}
