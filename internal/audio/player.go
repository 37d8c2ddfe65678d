// Package audio plays the game's sound cues with beep. Each cue prefers a
// WAV asset and falls back to a synthesized tone; playback failures are
// logged and never reach the simulation.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/game"
)

// resampleQuality is passed to beep.Resample for assets recorded at a
// different sample rate.
const resampleQuality = 4

// Cues lists every cue the player knows about.
var Cues = []game.Cue{game.CueJump, game.CueCollect, game.CueCrash}

// Sink outputs finished streamers, typically the system speaker.
type Sink interface {
	Play(s beep.Streamer)
}

// Player triggers sound cues on a sink.
type Player struct {
	mu     sync.Mutex
	sink   Sink
	rate   beep.SampleRate
	gain   float64
	muted  bool
	assets map[game.Cue]*beep.Buffer
	logger *log.Logger
}

// NewPlayer creates a player for sink. Assets named <cue>.wav are loaded
// from cfg.AssetsDir when it is set; cues without a usable asset are
// synthesized.
func NewPlayer(cfg config.Audio, sink Sink, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = beep.SampleRate(config.DefaultRunnerConfig().Audio.SampleRate)
	}

	p := &Player{
		sink:   sink,
		rate:   rate,
		gain:   cfg.MasterGain,
		assets: make(map[game.Cue]*beep.Buffer),
		logger: logger,
	}

	if cfg.AssetsDir != "" {
		for _, cue := range Cues {
			path := filepath.Join(cfg.AssetsDir, cue.String()+".wav")
			buf, err := loadWAV(path, rate)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				logger.Warn("audio asset unusable, using synth", "cue", cue, "err", err)
				continue
			}
			p.assets[cue] = buf
			logger.Debug("audio asset loaded", "cue", cue, "path", path)
		}
	}

	return p
}

// SampleRate returns the output sample rate.
func (p *Player) SampleRate() beep.SampleRate {
	return p.rate
}

// Trigger plays cue unless muted.
func (p *Player) Trigger(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.muted || p.sink == nil {
		return
	}

	s := p.streamer(cue)
	if s == nil {
		p.logger.Debug("no sound for cue", "cue", cue)
		return
	}
	p.sink.Play(newVolume(s, p.gain))
}

// streamer returns the asset for cue, or its synthesized substitute.
func (p *Player) streamer(cue game.Cue) beep.Streamer {
	if buf, ok := p.assets[cue]; ok {
		return buf.Streamer(0, buf.Len())
	}
	return Synth(cue, p.rate)
}

// Source reports where cue's sound comes from: "asset" or "synth".
func (p *Player) Source(cue game.Cue) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.assets[cue]; ok {
		return "asset"
	}
	return "synth"
}

// SetMuted mutes or unmutes the player.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// ToggleMute flips the mute state and returns the new value.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = !p.muted
	return p.muted
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.muted
}

// loadWAV decodes a WAV file into memory at the given sample rate.
func loadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer s.Close()

	var src beep.Streamer = s
	if format.SampleRate != rate {
		src = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s is empty", path)
	}
	return buf, nil
}

// Nop discards every cue. Used for muted runs and remote sessions.
type Nop struct{}

// Trigger does nothing.
func (Nop) Trigger(game.Cue) {}
