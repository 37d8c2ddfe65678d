package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/moon-runner/internal/audio"
	"github.com/vovakirdan/moon-runner/internal/audio/output"
	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/core"
	"github.com/vovakirdan/moon-runner/internal/game"
	"github.com/vovakirdan/moon-runner/internal/platform/tui"
	"github.com/vovakirdan/moon-runner/internal/platform/window"
	"github.com/vovakirdan/moon-runner/internal/storage"
)

// Window size used for --window, matching the classic 800x600 canvas.
const (
	windowW = 800
	windowH = 600
)

var (
	flagConfig  string
	flagWindow  bool
	flagProfile string
	flagMute    bool
	flagAssets  string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game in the terminal, or in a desktop window with --window.

Controls:
  Space/Up/W/click - Thrust (starts the game from the title screen)
  Enter/R          - Launch or re-deploy
  M                - Mute
  ?                - More keys
  Q/Esc            - Quit

Terminal play draws to the alternate screen, so logs go to --log-file.

Examples:
  runner play
  runner play --window --assets ./sounds
  runner play --profile alice --seed 42
  runner play --config ./my-runner.yaml --log-file runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Profile the high score is kept under")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
	playCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory with jump.wav, collect.wav and crash.wav")
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (terminal play)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}
	if flagAssets != "" {
		cfg.Audio.AssetsDir = flagAssets
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	logger, closeLog := playLogger()
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}
	scores := storage.NewProfileScores(store, flagProfile, logger)

	player, closeAudio := openAudio(cfg.Audio, logger)
	defer closeAudio()

	var trigger game.AudioTrigger = audio.Nop{}
	if player != nil {
		trigger = player
	}

	if flagWindow {
		rt.ScreenW, rt.ScreenH = windowW, windowH
	} else if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	opts := game.Options{
		Seed:   rt.Seed,
		Audio:  trigger,
		Scores: scores,
		Logger: logger,
	}
	logger.Debug("starting", "seed", rt.Seed, "profile", scores.Profile(), "window", flagWindow)

	if flagWindow {
		opts.Width, opts.Height = float64(rt.ScreenW), float64(rt.ScreenH)
		wopts := window.Options{
			Width:  rt.ScreenW,
			Height: rt.ScreenH,
			Frame:  cfg.Frame,
			FPS:    rt.TickRate,
			Logger: logger,
		}
		if player != nil {
			wopts.Audio = player
		}
		err = window.Run(game.New(cfg, opts), wopts)
	} else {
		opts.Width, opts.Height = tui.NewLayout(rt.ScreenW, rt.ScreenH).World()
		topts := tui.Options{
			Frame:   cfg.Frame,
			FPS:     rt.TickRate,
			Cols:    rt.ScreenW,
			Rows:    rt.ScreenH,
			Profile: scores.Profile(),
			Logger:  logger,
		}
		if player != nil {
			topts.Audio = player
		}
		err = tui.Run(game.New(cfg, opts), topts)
	}

	if err != nil {
		closeAudio()
		fail("running game: %v", err)
	}
}

// playLogger returns the logger for play. The terminal belongs to the game,
// so terminal play only logs when --log-file is given.
func playLogger() (*log.Logger, func()) {
	if flagWindow && flagLogFile == "" {
		return newLogger(os.Stderr, "runner"), func() {}
	}
	if flagLogFile == "" {
		return newLogger(io.Discard, "runner"), func() {}
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fail("cannot open log file: %v", err)
	}
	return newLogger(f, "runner"), func() { f.Close() }
}

// openAudio opens the speaker and builds the cue player. Audio is optional:
// a missing sound device only costs the sound.
func openAudio(cfg config.Audio, logger *log.Logger) (*audio.Player, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}

	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(config.DefaultRunnerConfig().Audio.SampleRate)
	}
	sp, err := output.OpenSpeaker(rate)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil, func() {}
	}

	player := audio.NewPlayer(cfg, sp, logger)
	player.SetMuted(flagMute)
	for _, cue := range audio.Cues {
		logger.Debug("audio cue", "cue", cue, "source", player.Source(cue))
	}
	return player, sp.Close
}
