// Package frame converts host frame callbacks into normalized time deltas
// and guards against duplicate tick streams.
package frame

import (
	"sync"
	"time"

	"github.com/vovakirdan/moon-runner/internal/config"
)

// Scheduler computes frame-rate-normalized deltas where 1.0 is one nominal
// frame. Each Start installs a new generation; ticks carrying an older
// generation must be dropped by the host.
type Scheduler struct {
	mu       sync.Mutex
	nominal  float64 // Milliseconds per nominal frame
	maxDelta float64 // 0 = uncapped
	gen      uint64
	running  bool
	last     time.Time
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(cfg config.Frame) *Scheduler {
	nominal := cfg.NominalMS
	if nominal <= 0 {
		nominal = config.DefaultRunnerConfig().Frame.NominalMS
	}
	return &Scheduler{nominal: nominal, maxDelta: cfg.MaxDelta}
}

// Start cancels the current generation and begins a new one. The first
// Delta of the new generation is always 1.
func (s *Scheduler) Start() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.running = true
	s.last = time.Time{}
	return s.gen
}

// Stop cancels the current generation. No generation is active afterwards.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.running = false
}

// Active reports whether gen is the live generation.
func (s *Scheduler) Active(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running && gen == s.gen
}

// Delta records now as the latest frame time and returns the elapsed time
// since the previous frame in nominal frames.
func (s *Scheduler) Delta(now time.Time) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.last
	s.last = now
	if prev.IsZero() {
		return 1
	}

	elapsed := float64(now.Sub(prev)) / float64(time.Millisecond)
	dt := elapsed / s.nominal
	if dt < 0 {
		dt = 0
	}
	if s.maxDelta > 0 && dt > s.maxDelta {
		dt = s.maxDelta
	}
	return dt
}

// Interval returns the wall-clock period for the given frame rate.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}
