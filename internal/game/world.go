package game

import (
	"math"

	"github.com/vovakirdan/moon-runner/internal/core"
)

// State is the lifecycle state of a game.
type State int

const (
	StateStart    State = iota // Waiting for the first start command
	StatePlaying               // Simulation running
	StateGameOver              // Frozen after a crash, waiting for restart
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "START"
	case StatePlaying:
		return "PLAYING"
	case StateGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// ObstacleKind is the cosmetic variant of an obstacle. It has no effect on
// collision or scoring.
type ObstacleKind int

const (
	KindBlock ObstacleKind = iota
	KindNFTCard
)

// CollectibleKind is the type of a collectible. Only tokens are spawned.
type CollectibleKind int

const (
	KindToken CollectibleKind = iota
	KindPowerUp
)

// Player is the body steered by the player.
type Player struct {
	X, Y     float64
	VY       float64 // Vertical velocity, negative = up
	Radius   float64
	Rotation float64 // Visual tilt in radians, derived from VY
}

// Pos returns the player's center.
func (p Player) Pos() core.Vec {
	return core.Vec{X: p.X, Y: p.Y}
}

// Obstacle is a vertical barrier with a gap between TopHeight and BottomY.
type Obstacle struct {
	X         float64
	TopHeight float64
	BottomY   float64 // Always TopHeight + gap
	Width     float64
	Passed    bool // Set once the player has cleared the obstacle
	Kind      ObstacleKind
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Collectible is a floating token that bobs vertically around Y.
type Collectible struct {
	X, Y        float64
	Radius      float64
	Collected   bool
	Kind        CollectibleKind
	FloatOffset float64 // Bob phase in [0, 2π)
}

// AnimatedY returns the bobbing vertical position at the given frame.
func (c Collectible) AnimatedY(frame uint64, rate, amplitude float64) float64 {
	return c.Y + math.Sin(float64(frame)*rate+c.FloatOffset)*amplitude
}

// Stats holds the scoring counters.
type Stats struct {
	Score           int
	HighScore       int
	TokensCollected int
}

// Star is a background decoration. It never interacts with gameplay.
type Star struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// World is the shared mutable simulation snapshot operated on by the
// physics, spawning and collision steps.
type World struct {
	Width, Height float64 // Latest viewport size
	Frame         uint64  // Ticks since the last reset, drives the bob animation
	Player        Player
	Obstacles     []Obstacle // Ordered by ascending X
	Collectibles  []Collectible
	Stars         []Star
}
