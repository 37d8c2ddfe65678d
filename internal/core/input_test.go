package core

import (
	"testing"
	"time"
)

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionStart, "Start"},
		{ActionMute, "Mute"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tt.action, got, tt.want)
		}
	}
}

// hold feeds a held key: the press at start, the first repeat after delay,
// then n repeats every 30ms. It returns the activations and the time of the
// last sighting.
func hold(d *Debouncer, key string, start time.Time, delay time.Duration, n int) (int, time.Time) {
	count := 0
	if d.Accept(key, start) {
		count++
	}
	at := start.Add(delay)
	for i := 0; i <= n; i++ {
		if d.Accept(key, at) {
			count++
		}
		if i < n {
			at = at.Add(30 * time.Millisecond)
		}
	}
	return count, at
}

func TestDebouncerSuppressesRepeat(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	t0 := time.Unix(0, 0)

	if !d.Accept("space", t0) {
		t.Fatal("First press should be accepted")
	}

	// Auto-repeat stream every 30ms: all suppressed
	for i := 1; i <= 10; i++ {
		if d.Accept("space", t0.Add(time.Duration(i*30)*time.Millisecond)) {
			t.Fatalf("Repeat %d should be suppressed", i)
		}
	}

	// Released and pressed again after a pause
	if !d.Accept("space", t0.Add(300*time.Millisecond+200*time.Millisecond)) {
		t.Error("Fresh press after the window should be accepted")
	}
}

func TestDebouncerHeldKeyWithInitialDelay(t *testing.T) {
	for _, delay := range []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 600 * time.Millisecond} {
		d := NewDebouncer(0)
		got, _ := hold(d, "space", time.Unix(0, 0), delay, 20)
		if got != 1 {
			t.Errorf("delay %v: activations for one held key = %d, expected 1", delay, got)
		}
		if d.RepeatDelay() != delay {
			t.Errorf("delay %v: RepeatDelay() = %v", delay, d.RepeatDelay())
		}
	}
}

func TestDebouncerRepeatedHolds(t *testing.T) {
	d := NewDebouncer(0)
	t0 := time.Unix(0, 0)

	total := 0
	at := t0
	for i := 0; i < 3; i++ {
		n, last := hold(d, "space", at, 500*time.Millisecond, 10)
		total += n
		at = last.Add(time.Second)
	}
	if total != 3 {
		t.Errorf("Three holds gave %d activations, expected 3", total)
	}
}

func TestDebouncerTaps(t *testing.T) {
	t0 := time.Unix(0, 0)

	tests := []struct {
		name    string
		learned bool
		gap     time.Duration
		want    bool
	}{
		{"fast tap", false, 150 * time.Millisecond, true},
		{"slow tap", false, 800 * time.Millisecond, true},
		{"tap inside delay range", false, 400 * time.Millisecond, false},
		{"tap off learned delay", true, 400 * time.Millisecond, true},
		{"tap on learned delay", true, 520 * time.Millisecond, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDebouncer(0)
			start := t0
			if tt.learned {
				_, last := hold(d, "space", t0, 500*time.Millisecond, 5)
				start = last.Add(time.Second)
			}
			if !d.Accept("space", start) {
				t.Fatal("Press should be accepted")
			}
			if got := d.Accept("space", start.Add(tt.gap)); got != tt.want {
				t.Errorf("Second tap after %v accepted = %v, expected %v", tt.gap, got, tt.want)
			}
		})
	}
}

func TestDebouncerTapAfterSuppressedTap(t *testing.T) {
	d := NewDebouncer(0)
	t0 := time.Unix(0, 0)

	d.Accept("space", t0)
	if d.Accept("space", t0.Add(400*time.Millisecond)) {
		t.Fatal("Sighting at a likely repeat delay should be suppressed")
	}
	// No fast stream followed, so the key was tapped; the next tap counts.
	if !d.Accept("space", t0.Add(800*time.Millisecond)) {
		t.Error("Tap after a lone suppressed sighting should be accepted")
	}
	if d.RepeatDelay() != 0 {
		t.Errorf("RepeatDelay() = %v without a repeat stream", d.RepeatDelay())
	}
}

func TestDebouncerKeysAreIndependent(t *testing.T) {
	d := NewDebouncer(0)
	now := time.Unix(100, 0)

	if !d.Accept("space", now) || !d.Accept("up", now) {
		t.Error("Different keys should not debounce each other")
	}
	if d.Accept("space", now.Add(10*time.Millisecond)) {
		t.Error("Repeat of space should be suppressed")
	}
	if !d.Accept("up", now.Add(time.Second)) {
		t.Error("Later press of up should be accepted")
	}
}
