package hud

import (
	"strings"
	"testing"

	"github.com/vovakirdan/moon-runner/internal/game"
)

func TestOverlayPerState(t *testing.T) {
	tests := []struct {
		state    game.State
		contains string
	}{
		{game.StateStart, "Ready for Liftoff?"},
		{game.StateGameOver, "CRITICAL FAILURE"},
	}

	for _, tc := range tests {
		lines := Overlay(game.Snapshot{State: tc.state, Stats: game.Stats{Score: 4, HighScore: 9}})
		found := false
		for _, l := range lines {
			if l.Text == tc.contains {
				found = true
			}
		}
		if !found {
			t.Errorf("Overlay(%v) missing %q", tc.state, tc.contains)
		}
	}

	if lines := Overlay(game.Snapshot{State: game.StatePlaying}); lines != nil {
		t.Errorf("Overlay(PLAYING) = %v, expected nil", lines)
	}
}

func TestGameOverShowsScores(t *testing.T) {
	lines := Overlay(game.Snapshot{State: game.StateGameOver, Stats: game.Stats{Score: 4, HighScore: 9}})

	var all []string
	for _, l := range lines {
		all = append(all, l.Text)
	}
	text := strings.Join(all, "\n")
	if !strings.Contains(text, "Score 4") || !strings.Contains(text, "High Score 9") {
		t.Errorf("Game over overlay lacks scores:\n%s", text)
	}
}

func TestReadouts(t *testing.T) {
	s := game.Snapshot{State: game.StatePlaying, Stats: game.Stats{Score: 12, TokensCollected: 3}}

	if got := Score(s); got != "SCORE 12" {
		t.Errorf("Score() = %q", got)
	}
	if got := Tokens(s); got != "● BMN 3" {
		t.Errorf("Tokens() = %q", got)
	}
	if got := Footer(s); !strings.Contains(got, "SPACE") {
		t.Errorf("Footer(PLAYING) = %q", got)
	}
}

func TestWidthCountsRunes(t *testing.T) {
	if w := Width([]Line{{Text: "ab"}, {Text: "● BMN"}}); w != 5 {
		t.Errorf("Width() = %d, expected 5", w)
	}
}
