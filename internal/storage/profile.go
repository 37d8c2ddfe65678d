package storage

import (
	"io"

	"github.com/charmbracelet/log"
)

// ProfileScores persists the high score of a single profile. It absorbs
// storage failures so a broken database never stops a game.
type ProfileScores struct {
	store   *Store
	profile string
	logger  *log.Logger
}

// NewProfileScores binds store to profile. A nil store disables persistence.
func NewProfileScores(store *Store, profile string, logger *log.Logger) *ProfileScores {
	if profile == "" {
		profile = DefaultProfile
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ProfileScores{store: store, profile: profile, logger: logger}
}

// Profile returns the bound profile name.
func (p *ProfileScores) Profile() string {
	return p.profile
}

// LoadHighScore returns the stored high score. Missing, unreadable or
// damaged values report ok=false.
func (p *ProfileScores) LoadHighScore() (int, bool) {
	if p.store == nil {
		return 0, false
	}
	score, err := p.store.HighScore(p.profile)
	if err != nil {
		p.logger.Warn("ignoring stored high score", "profile", p.profile, "err", err)
		return 0, false
	}
	return score, score > 0
}

// SaveHighScore records score if it beats the stored value.
func (p *ProfileScores) SaveHighScore(score int) error {
	if p.store == nil {
		return nil
	}
	return p.store.RaiseHighScore(p.profile, score)
}
