package game

import "github.com/vovakirdan/moon-runner/internal/core"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventStart     EventKind = iota // A new episode began
	EventJump                       // Jump impulse applied
	EventPass                       // An obstacle was cleared
	EventCollect                    // A token was collected
	EventCrash                      // The player hit an obstacle or the floor
	EventHighScore                  // The high score increased
)

// String returns a human-readable name for the event.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventJump:
		return "jump"
	case EventPass:
		return "pass"
	case EventCollect:
		return "collect"
	case EventCrash:
		return "crash"
	case EventHighScore:
		return "highscore"
	default:
		return "unknown"
	}
}

// Event is emitted by the engine for frontends and collaborators.
type Event struct {
	Kind  EventKind
	Pos   core.Vec // Where it happened, when meaningful
	Value int      // Score after the event, or the new high score
}

// CommandKind identifies an external stimulus.
type CommandKind int

const (
	CmdJump CommandKind = iota
	CmdStart
	CmdResize
)

// Command is an external stimulus applied at the next tick boundary.
type Command struct {
	Kind          CommandKind
	Width, Height float64 // CmdResize only
}

// JumpCommand returns a jump command.
func JumpCommand() Command { return Command{Kind: CmdJump} }

// StartCommand returns a start/restart command.
func StartCommand() Command { return Command{Kind: CmdStart} }

// ResizeCommand returns a viewport resize command.
func ResizeCommand(width, height float64) Command {
	return Command{Kind: CmdResize, Width: width, Height: height}
}

// Cue is a sound effect requested by the engine.
type Cue int

const (
	CueJump Cue = iota
	CueCollect
	CueCrash
)

// String returns the cue name. It doubles as the asset file stem.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCollect:
		return "collect"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// AudioTrigger plays sound cues. Implementations must not block the tick
// and must swallow their own failures.
type AudioTrigger interface {
	Trigger(cue Cue)
}

// ScoreStore persists the high score between sessions.
type ScoreStore interface {
	// LoadHighScore returns the recorded high score. ok is false when
	// nothing usable is stored.
	LoadHighScore() (score int, ok bool)
	SaveHighScore(score int) error
}
