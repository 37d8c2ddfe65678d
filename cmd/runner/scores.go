package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/moon-runner/internal/platform/tui"
	"github.com/vovakirdan/moon-runner/internal/storage"
)

var (
	flagScoresProfile string
	flagReset         bool
	flagPlain         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show or clear high scores",
	Long: `Display the best score of every profile.

On a terminal an interactive table is shown; press x to clear the
selected profile. Use --plain for text output.

Examples:
  runner scores
  runner scores --plain
  runner scores --profile alice
  runner scores --profile alice --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresProfile, "profile", "", "Only this profile")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the high score of --profile")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table even on a terminal")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagReset && flagScoresProfile == "" {
		fail("--reset needs --profile")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearHighScore(flagScoresProfile); err != nil {
			fail("clearing high score: %v", err)
		}
		fmt.Printf("High score of %q cleared.\n", flagScoresProfile)
		return
	}

	if flagScoresProfile != "" {
		score, err := store.HighScore(flagScoresProfile)
		if err != nil {
			fail("reading high score: %v", err)
		}
		fmt.Printf("Best for %s: %d\n", flagScoresProfile, score)
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fail("%v", err)
		}
		return
	}

	scores, err := store.HighScores()
	if err != nil {
		fail("retrieving scores: %v", err)
	}
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return
	}
	if err := tui.WriteScores(os.Stdout, scores); err != nil {
		fail("%v", err)
	}
}
