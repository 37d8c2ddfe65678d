package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The simulation runs in world units (pixels); frontends map them onto
// their own surface.
type RuntimeConfig struct {
	ScreenW  int   // Surface width in the frontend's native unit (cells or pixels)
	ScreenH  int   // Surface height in the frontend's native unit
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
