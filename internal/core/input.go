package core

import "time"

// Action represents a semantic player action, abstracted from physical key presses.
// Frontends translate keys, pointer presses and touches into actions.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W, pointer press, touch start
	ActionStart        // Enter - explicit start/restart from an overlay
	ActionMute         // M - toggle audio
	ActionQuit         // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Auto-repeat timing. Once a key has been held for the initial delay
// (250ms to 600ms depending on the OS setting), terminals repeat it about
// every 30ms.
const (
	DefaultRepeatWindow = 90 * time.Millisecond
	MinRepeatDelay      = 250 * time.Millisecond
	MaxRepeatDelay      = 600 * time.Millisecond
	repeatDelaySlack    = 40 * time.Millisecond
)

// Debouncer suppresses key auto-repeat for input sources that cannot
// report key releases (terminals). A held key yields one activation: the
// first sighting after a press that lands in the initial-delay range is
// taken as the first repeat, and sightings closer than the repeat window
// continue the hold. Once a hold has been seen, the measured delay replaces
// the range, so only taps matching the delay within 40ms are lost.
type Debouncer struct {
	window  time.Duration
	learned time.Duration
	keys    map[string]*keyState
}

type keyState struct {
	last    time.Time
	held    bool
	pending time.Duration // gap of a suppressed suspected first repeat
}

// NewDebouncer creates a debouncer with the given repeat window.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultRepeatWindow
	}
	return &Debouncer{
		window: window,
		keys:   make(map[string]*keyState),
	}
}

// Accept reports whether the key press at time now is a fresh activation.
func (d *Debouncer) Accept(key string, now time.Time) bool {
	st, seen := d.keys[key]
	if !seen {
		d.keys[key] = &keyState{last: now}
		return true
	}
	gap := now.Sub(st.last)
	st.last = now

	switch {
	case gap < d.window:
		if st.pending > 0 && d.learned == 0 {
			d.learned = st.pending
		}
		st.held, st.pending = true, 0
		return false
	case !st.held && st.pending == 0 && d.firstRepeat(gap):
		st.pending = gap
		return false
	default:
		st.held, st.pending = false, 0
		return true
	}
}

func (d *Debouncer) firstRepeat(gap time.Duration) bool {
	if d.learned > 0 {
		diff := gap - d.learned
		return diff >= -repeatDelaySlack && diff <= repeatDelaySlack
	}
	return gap >= MinRepeatDelay && gap <= MaxRepeatDelay
}

// RepeatDelay returns the measured initial auto-repeat delay, or 0 if no
// hold has been observed yet.
func (d *Debouncer) RepeatDelay() time.Duration {
	return d.learned
}
