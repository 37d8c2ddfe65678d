package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/moon-runner/internal/game"
)

// Synth returns the synthesized fallback for cue, before master gain.
func Synth(cue game.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case game.CueJump:
		return Tone(WaveSine, 320, 640, 100*time.Millisecond, 0.25, rate)

	case game.CueCollect:
		// Two-note chime: a rising square blip, then a triangle ping 60ms in
		blip := Tone(WaveSquare, 1200, 1600, 80*time.Millisecond, 0.18, rate)
		ping := beep.Seq(
			beep.Silence(rate.N(60*time.Millisecond)),
			Tone(WaveTriangle, 1400, 1400, 80*time.Millisecond, 0.14, rate),
		)
		return beep.Mix(blip, ping)

	case game.CueCrash:
		return Tone(WaveSaw, 150, 30, 320*time.Millisecond, 0.4, rate)

	default:
		return nil
	}
}
