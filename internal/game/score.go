package game

// ScoreTracker owns the scoring counters. The high score survives resets.
type ScoreTracker struct {
	stats Stats
}

// NewScoreTracker creates a tracker starting from a previously recorded
// high score.
func NewScoreTracker(highScore int) *ScoreTracker {
	if highScore < 0 {
		highScore = 0
	}
	return &ScoreTracker{stats: Stats{HighScore: highScore}}
}

// Pass awards n cleared obstacles. Returns true if the high score rose.
func (t *ScoreTracker) Pass(n int) bool {
	if n <= 0 {
		return false
	}
	t.stats.Score += n
	return t.raise()
}

// Collect awards one token with the given bonus. Returns true if the high
// score rose.
func (t *ScoreTracker) Collect(bonus int) bool {
	t.stats.TokensCollected++
	t.stats.Score += bonus
	return t.raise()
}

func (t *ScoreTracker) raise() bool {
	if t.stats.Score > t.stats.HighScore {
		t.stats.HighScore = t.stats.Score
		return true
	}
	return false
}

// Reset zeroes the episode counters and keeps the high score.
func (t *ScoreTracker) Reset() {
	t.stats = Stats{HighScore: t.stats.HighScore}
}

// Stats returns a copy of the counters.
func (t *ScoreTracker) Stats() Stats {
	return t.stats
}
