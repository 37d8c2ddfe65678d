package game

// Snapshot is a read-only copy of the world handed to renderers.
type Snapshot struct {
	State         State
	Width, Height float64
	Frame         uint64
	Player        Player
	Obstacles     []Obstacle
	Collectibles  []Collectible
	Particles     []Particle
	Stars         []Star
	Stats         Stats

	BobRate      float64
	BobAmplitude float64
}

// TokenY returns the animated vertical position of c in this frame.
func (s Snapshot) TokenY(c Collectible) float64 {
	return c.AnimatedY(s.Frame, s.BobRate, s.BobAmplitude)
}
