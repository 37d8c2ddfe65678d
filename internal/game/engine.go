// Package game implements the runner simulation: physics, obstacle
// spawning, collision, particles, scoring and the game lifecycle.
//
// The engine is single-writer. Frontends either call its methods from the
// goroutine that ticks it or Enqueue commands from anywhere; queued
// commands are applied at the start of the next tick.
package game

import (
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/core"
)

// Burst colors.
const (
	PlayerColor = core.ColorWhite
	TokenColor  = core.ColorPurple
)

// Options configures an Engine.
type Options struct {
	Seed          int64
	Width, Height float64      // Initial viewport size in world units
	Audio         AudioTrigger // Optional
	Scores        ScoreStore   // Optional; the high score starts at zero without it
	Logger        *log.Logger  // Optional
}

// Engine runs one game session.
type Engine struct {
	cfg    config.RunnerConfig
	logger *log.Logger
	audio  AudioTrigger
	scores ScoreStore

	state     State
	world     World
	spawner   *Spawner
	particles *ParticleSystem
	score     *ScoreTracker
	fx        *rand.Rand // Stars and particles, kept apart from gameplay draws

	mu    sync.Mutex
	queue []Command

	events []Event // Accumulates until the next Tick returns
	spare  []Event
	hits   []core.Vec
	raised bool
}

// New creates an engine in the START state.
func New(cfg config.RunnerConfig, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	e := &Engine{
		cfg:       cfg,
		logger:    logger,
		audio:     opts.Audio,
		scores:    opts.Scores,
		state:     StateStart,
		spawner:   NewSpawner(cfg.Obstacles, cfg.Tokens, rng),
		particles: NewParticleSystem(cfg.Particles, rand.New(rand.NewSource(opts.Seed+1))),
		fx:        rand.New(rand.NewSource(opts.Seed + 2)),
	}

	high := 0
	if e.scores != nil {
		if v, ok := e.scores.LoadHighScore(); ok {
			high = v
		}
	}
	e.score = NewScoreTracker(high)

	e.Resize(opts.Width, opts.Height)
	e.placePlayer()
	return e
}

// Enqueue schedules a command for the next tick. Safe for concurrent use.
func (e *Engine) Enqueue(cmd Command) {
	e.mu.Lock()
	e.queue = append(e.queue, cmd)
	e.mu.Unlock()
}

// Jump applies the jump impulse while playing, or starts a new episode
// otherwise.
func (e *Engine) Jump() {
	if e.state != StatePlaying {
		e.Start()
		return
	}
	applyJump(&e.world.Player, e.cfg.Physics)
	e.emit(Event{Kind: EventJump, Pos: e.world.Player.Pos()})
}

// Start begins a new episode from START or GAME_OVER. It does nothing while
// playing.
func (e *Engine) Start() {
	if e.state == StatePlaying {
		return
	}
	e.reset()
	e.setState(StatePlaying)
	e.emit(Event{Kind: EventStart})
}

// Resize records the new viewport size. Stars are seeded the first time a
// non-empty viewport is reported; obstacles and the player are untouched.
func (e *Engine) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	e.world.Width, e.world.Height = width, height
	if len(e.world.Stars) == 0 && width > 0 && height > 0 {
		e.world.Stars = seedStars(e.cfg.Stars, e.fx, width, height)
	}
}

// Tick advances the session by dt nominal frames and returns the events
// that occurred since the previous tick, including those of direct Jump and
// Start calls. The returned slice is only valid until the next call.
func (e *Engine) Tick(dt float64) []Event {
	e.raised = false

	e.drain()
	e.world.Frame++

	if e.state == StatePlaying {
		e.simulate(dt)
	}

	e.dispatch()

	out := e.events
	e.events = e.spare[:0]
	e.spare = out
	return out
}

func (e *Engine) drain() {
	e.mu.Lock()
	cmds := e.queue
	e.queue = nil
	e.mu.Unlock()

	for _, cmd := range cmds {
		switch cmd.Kind {
		case CmdJump:
			e.Jump()
		case CmdStart:
			e.Start()
		case CmdResize:
			e.Resize(cmd.Width, cmd.Height)
		}
	}
}

// simulate runs one PLAYING tick. A crash freezes the world at the end of
// the tick that detected it, so the crash burst gets one particle step.
func (e *Engine) simulate(dt float64) {
	w := &e.world

	grounded := stepPlayer(&w.Player, e.cfg.Physics, w.Height, dt)

	e.spawner.TopUp(w)
	scroll(w, e.cfg.Physics.ScrollSpeed*dt)

	res := resolveObstacles(w)
	for i := 0; i < res.passed; i++ {
		e.raised = e.score.Pass(1) || e.raised
		e.emit(Event{Kind: EventPass, Pos: w.Player.Pos(), Value: e.score.Stats().Score})
	}

	e.hits = resolveCollectibles(w, e.cfg.Tokens.BobRate, e.cfg.Tokens.BobAmplitude, e.hits[:0])
	for _, pos := range e.hits {
		e.raised = e.score.Collect(e.cfg.Tokens.Bonus) || e.raised
		e.particles.Burst(pos, TokenColor, e.cfg.Particles.Count)
		e.emit(Event{Kind: EventCollect, Pos: pos, Value: e.score.Stats().Score})
	}

	prune(w, e.cfg.Obstacles.Cutoff, e.cfg.Tokens.Cutoff)

	crashed := grounded || res.crashed
	if crashed {
		e.particles.Burst(w.Player.Pos(), PlayerColor, e.cfg.Particles.Count)
		e.emit(Event{Kind: EventCrash, Pos: w.Player.Pos(), Value: e.score.Stats().Score})
	}

	e.particles.Step(dt)
	driftStars(w.Stars, w.Width, dt)

	if crashed {
		e.setState(StateGameOver)
	}
}

// dispatch forwards the tick's events to the audio and score collaborators.
func (e *Engine) dispatch() {
	if e.raised {
		high := e.score.Stats().HighScore
		e.emit(Event{Kind: EventHighScore, Value: high})
		if e.scores != nil {
			if err := e.scores.SaveHighScore(high); err != nil {
				e.logger.Warn("failed to save high score", "score", high, "err", err)
			}
		}
	}

	if e.audio == nil {
		return
	}
	for _, ev := range e.events {
		switch ev.Kind {
		case EventJump:
			e.audio.Trigger(CueJump)
		case EventCollect:
			e.audio.Trigger(CueCollect)
		case EventCrash:
			e.audio.Trigger(CueCrash)
		}
	}
}

func (e *Engine) reset() {
	w := &e.world
	clear(w.Obstacles)
	w.Obstacles = w.Obstacles[:0]
	clear(w.Collectibles)
	w.Collectibles = w.Collectibles[:0]
	w.Frame = 0
	e.particles.Clear()
	e.score.Reset()
	e.placePlayer()
	e.spawner.Seed(w)
}

func (e *Engine) placePlayer() {
	e.world.Player = Player{
		X:      e.world.Width * e.cfg.Player.XRatio,
		Y:      e.world.Height / 2,
		Radius: e.cfg.Player.Radius,
	}
}

func (e *Engine) setState(s State) {
	if e.state == s {
		return
	}
	e.logger.Debug("state changed", "from", e.state, "to", s, "score", e.score.Stats().Score)
	e.state = s
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Stats returns the scoring counters.
func (e *Engine) Stats() Stats {
	return e.score.Stats()
}

// Snapshot returns a copy of the world for rendering.
func (e *Engine) Snapshot() Snapshot {
	w := e.world
	return Snapshot{
		State:        e.state,
		Width:        w.Width,
		Height:       w.Height,
		Frame:        w.Frame,
		Player:       w.Player,
		Obstacles:    append([]Obstacle(nil), w.Obstacles...),
		Collectibles: append([]Collectible(nil), w.Collectibles...),
		Particles:    append([]Particle(nil), e.particles.Items()...),
		Stars:        append([]Star(nil), w.Stars...),
		Stats:        e.score.Stats(),
		BobRate:      e.cfg.Tokens.BobRate,
		BobAmplitude: e.cfg.Tokens.BobAmplitude,
	}
}
