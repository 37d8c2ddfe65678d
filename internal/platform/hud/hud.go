// Package hud builds the text shown over the playfield. Both frontends
// draw the same lines in their own medium.
package hud

import (
	"fmt"

	"github.com/vovakirdan/moon-runner/internal/core"
	"github.com/vovakirdan/moon-runner/internal/game"
)

// Title is the game's display name.
const Title = "BLACK MOON RUNNER"

// Line is one line of overlay text.
type Line struct {
	Text  string
	Color core.Color
}

// Overlay returns the centered panel for the current state, or nil while
// playing.
func Overlay(s game.Snapshot) []Line {
	switch s.State {
	case game.StateStart:
		return []Line{
			{Title, core.ColorBrightWhite},
			{"", core.ColorDefault},
			{"Ready for Liftoff?", core.ColorBrightCyan},
			{"Space to fly. Collect BMN tokens", core.ColorGray},
			{"and dodge the blockchain blocks.", core.ColorGray},
			{"", core.ColorDefault},
			{"[ START ENGINE ]", core.ColorBrightWhite},
			{fmt.Sprintf("High Score %d", s.Stats.HighScore), core.ColorGold},
		}
	case game.StateGameOver:
		return []Line{
			{"CRITICAL FAILURE", core.ColorBrightRed},
			{"SMART CONTRACT REVERTED", core.ColorRed},
			{"", core.ColorDefault},
			{fmt.Sprintf("Score %d", s.Stats.Score), core.ColorBrightWhite},
			{fmt.Sprintf("High Score %d", s.Stats.HighScore), core.ColorGold},
			{"", core.ColorDefault},
			{"[ RE-DEPLOY ]", core.ColorBrightWhite},
		}
	default:
		return nil
	}
}

// Score returns the score readout.
func Score(s game.Snapshot) string {
	return fmt.Sprintf("SCORE %d", s.Stats.Score)
}

// Tokens returns the token counter readout.
func Tokens(s game.Snapshot) string {
	return fmt.Sprintf("● BMN %d", s.Stats.TokensCollected)
}

// Footer returns the hint line for the current state.
func Footer(s game.Snapshot) string {
	if s.State == game.StatePlaying {
		return "TAP SCREEN OR PRESS SPACE TO FLY"
	}
	return "POWERED BY CRONOS"
}

// Width returns the widest overlay line in runes.
func Width(lines []Line) int {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.Text)))
	}
	return w
}
