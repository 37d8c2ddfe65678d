package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/core"
	"github.com/vovakirdan/moon-runner/internal/frame"
	"github.com/vovakirdan/moon-runner/internal/game"
)

// Muter toggles sound output. *audio.Player implements it.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options configures a Model.
type Options struct {
	Frame         config.Frame
	FPS           int
	Cols, Rows    int    // Terminal size before the first resize message
	Profile       string // Shown on the HUD
	Audio         Muter  // Optional
	ScreenshotDir string // Defaults to ~/.moonrunner/screenshots
	Logger        *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	engine   *game.Engine
	sched    *frame.Scheduler
	gen      uint64
	interval time.Duration

	layout Layout
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	repeat *core.Debouncer

	audio         Muter
	profile       string
	screenshotDir string
	logger        *log.Logger
	now           func() time.Time
	quitting      bool
}

// NewModel creates a model driving engine. It starts a new scheduler
// generation, so ticks from any previous model are ignored.
func NewModel(engine *game.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = config.UserPath("screenshots")
	}

	layout := NewLayout(opts.Cols, opts.Rows)
	sched := frame.NewScheduler(opts.Frame)
	h := help.New()
	h.Width = layout.Cols

	return Model{
		engine:        engine,
		sched:         sched,
		gen:           sched.Start(),
		interval:      frame.Interval(opts.FPS),
		layout:        layout,
		screen:        core.NewScreen(layout.Cols, layout.Rows),
		keys:          DefaultKeyMap(),
		help:          h,
		repeat:        core.NewDebouncer(core.DefaultRepeatWindow),
		audio:         opts.Audio,
		profile:       opts.Profile,
		screenshotDir: dir,
		logger:        logger,
		now:           time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.gen, m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.engine.Enqueue(game.JumpCommand())
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.sched.Stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionJump:
		// Terminals repeat held keys; only fresh presses thrust.
		if !m.repeat.Accept(msg.String(), m.now()) {
			m.logger.Debug("key repeat suppressed", "key", msg.String(), "delay", m.repeat.RepeatDelay())
			break
		}
		m.engine.Enqueue(game.JumpCommand())

	case core.ActionStart:
		m.engine.Enqueue(game.StartCommand())

	case core.ActionMute:
		if m.audio != nil {
			muted := m.audio.ToggleMute()
			m.logger.Debug("audio toggled", "muted", muted)
		}
	}

	return m, nil
}

// handleResize adapts the screen buffer and forwards the new viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.layout = NewLayout(msg.Width, msg.Height)
	m.screen.Resize(m.layout.Cols, m.layout.Rows)
	m.help.Width = msg.Width

	w, h := m.layout.World()
	m.engine.Enqueue(game.ResizeCommand(w, h))
	return m, nil
}

// handleTick advances the simulation unless the tick belongs to a stopped
// generation.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.sched.Active(msg.Gen) {
		return m, nil
	}

	dt := m.sched.Delta(msg.Time)
	for _, ev := range m.engine.Tick(dt) {
		switch ev.Kind {
		case game.EventCrash:
			m.logger.Debug("crashed", "score", m.engine.Stats().Score)
		case game.EventHighScore:
			m.logger.Debug("new high score", "score", ev.Value)
		}
	}

	return m, tickCmd(msg.Gen, m.interval)
}

// status returns the right-hand HUD text.
func (m Model) status() string {
	s := fmt.Sprintf("BEST %d", m.engine.Stats().HighScore)
	if m.profile != "" {
		s += "  @" + m.profile
	}
	if m.audio != nil && m.audio.Muted() {
		s += "  muted"
	}
	return s
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", fmt.Errorf("screenshot: no home directory")
	}
	m.layout.Draw(m.screen, m.engine.Snapshot(), m.status())

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	name := fmt.Sprintf("runner_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(m.screenshotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.layout.Draw(m.screen, m.engine.Snapshot(), m.status())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given engine.
func Run(engine *game.Engine, opts Options) error {
	model := NewModel(engine, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks thrust like the space bar
	)

	_, err := p.Run()
	model.sched.Stop()
	return err
}
