// Package window runs the game in a desktop window using Ebitengine.
// The world is drawn one world unit per pixel.
package window

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/moon-runner/internal/config"
	"github.com/vovakirdan/moon-runner/internal/core"
	"github.com/vovakirdan/moon-runner/internal/frame"
	"github.com/vovakirdan/moon-runner/internal/game"
	"github.com/vovakirdan/moon-runner/internal/platform/hud"
)

// Debug font metrics of ebitenutil.DebugPrint.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background = color.RGBA{0x05, 0x05, 0x10, 0xFF}
	panelFill  = color.RGBA{0x00, 0x0A, 0x24, 0xE0}
)

// Muter toggles sound output. *audio.Player implements it.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options configures the window.
type Options struct {
	Width, Height int // Initial window size in pixels
	Frame         config.Frame
	FPS           int
	Audio         Muter // Optional
	Logger        *log.Logger
}

// Game adapts an engine to ebiten.Game.
type Game struct {
	engine  *game.Engine
	sched   *frame.Scheduler
	gen     uint64
	audio   Muter
	logger  *log.Logger
	width   int
	height  int
	touches []ebiten.TouchID
}

// New creates a window game driving engine.
func New(engine *game.Engine, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sched := frame.NewScheduler(opts.Frame)
	return &Game{
		engine: engine,
		sched:  sched,
		gen:    sched.Start(),
		audio:  opts.Audio,
		logger: logger,
	}
}

// Update reads input and advances the simulation by one host frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.sched.Stop()
		return ebiten.Termination
	}

	if g.jumpPressed() {
		g.engine.Enqueue(game.JumpCommand())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.engine.Enqueue(game.StartCommand())
	}
	if g.audio != nil && inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.logger.Debug("audio toggled", "muted", g.audio.ToggleMute())
	}

	if !g.sched.Active(g.gen) {
		return nil
	}
	for _, ev := range g.engine.Tick(g.sched.Delta(time.Now())) {
		if ev.Kind == game.EventHighScore {
			g.logger.Debug("new high score", "score", ev.Value)
		}
	}
	return nil
}

func (g *Game) jumpPressed() bool {
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	return len(g.touches) > 0
}

// Layout reports the window size as the logical screen and forwards
// changes to the engine.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.engine.Enqueue(game.ResizeCommand(float64(outsideWidth), float64(outsideHeight)))
	}
	return outsideWidth, outsideHeight
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.engine.Snapshot()
	screen.Fill(background)

	for i, st := range s.Stars {
		alpha := starAlpha(s.Frame, i)
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Size), color.RGBA{0xFF, 0xFF, 0xFF, alpha}, true)
	}

	for _, o := range s.Obstacles {
		drawObstacle(screen, o, s.Height)
	}

	tokenColor := game.TokenColor.RGBA()
	for _, c := range s.Collectibles {
		if c.Collected {
			continue
		}
		y := float32(s.TokenY(c))
		vector.DrawFilledCircle(screen, float32(c.X), y, float32(c.Radius), tokenColor, true)
		vector.StrokeCircle(screen, float32(c.X), y, float32(c.Radius)-3, 2, core.ColorGold.RGBA(), true)
	}

	for _, p := range s.Particles {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), fade(p.Color.RGBA(), p.Life), true)
	}

	drawPlayer(screen, s)

	ebitenutil.DebugPrintAt(screen, hud.Score(s), 12, 8)
	ebitenutil.DebugPrintAt(screen, tokenLabel(s), 12, 8+glyphH)
	status := fmt.Sprintf("BEST %d", s.Stats.HighScore)
	if g.audio != nil && g.audio.Muted() {
		status += "  muted"
	}
	ebitenutil.DebugPrintAt(screen, status, int(s.Width)-12-len(status)*glyphW, 8)

	footer := hud.Footer(s)
	ebitenutil.DebugPrintAt(screen, footer, (int(s.Width)-len(footer)*glyphW)/2, int(s.Height)-glyphH-8)

	drawOverlay(screen, hud.Overlay(s), s.Width, s.Height)
}

func drawObstacle(screen *ebiten.Image, o game.Obstacle, height float64) {
	fill := core.ColorGreen.RGBA()
	if o.Kind == game.KindNFTCard {
		fill = core.ColorPurple.RGBA()
	}
	edge := core.ColorNavy.RGBA()

	for _, r := range obstacleRects(o, height) {
		vector.DrawFilledRect(screen, r[0], r[1], r[2], r[3], fill, false)
		vector.StrokeRect(screen, r[0], r[1], r[2], r[3], 2, edge, false)
	}
}

// obstacleRects returns the top and bottom columns as x, y, w, h.
// Empty columns are omitted.
func obstacleRects(o game.Obstacle, height float64) [][4]float32 {
	var rects [][4]float32
	if o.TopHeight > 0 {
		rects = append(rects, [4]float32{float32(o.X), 0, float32(o.Width), float32(o.TopHeight)})
	}
	if o.BottomY < height {
		rects = append(rects, [4]float32{float32(o.X), float32(o.BottomY), float32(o.Width), float32(height - o.BottomY)})
	}
	return rects
}

func drawPlayer(screen *ebiten.Image, s game.Snapshot) {
	p := s.Player
	body := game.PlayerColor.RGBA()
	if s.State == game.StateGameOver {
		body = core.ColorRed.RGBA()
	}
	cx, cy := float32(p.X), float32(p.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(p.Radius), body, true)

	nose := core.Polar(p.Rotation, p.Radius*1.4)
	vector.StrokeLine(screen, cx, cy, cx+float32(nose.X), cy+float32(nose.Y), 3, core.ColorCyan.RGBA(), true)

	if s.State == game.StatePlaying {
		tail := core.Polar(p.Rotation+math.Pi, p.Radius*(1.2+0.3*float64(s.Frame%4)/3))
		vector.StrokeLine(screen, cx, cy, cx+float32(tail.X), cy+float32(tail.Y), 4, core.ColorOrange.RGBA(), true)
	}
}

func drawOverlay(screen *ebiten.Image, lines []hud.Line, width, height float64) {
	if len(lines) == 0 {
		return
	}
	boxW := float32(hud.Width(lines)*glyphW + 48)
	boxH := float32(len(lines)*glyphH + 32)
	x := (float32(width) - boxW) / 2
	y := (float32(height) - boxH) / 2

	vector.DrawFilledRect(screen, x, y, boxW, boxH, panelFill, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 2, core.ColorPurple.RGBA(), false)
	for i, line := range lines {
		lx := int(x) + (int(boxW)-len([]rune(line.Text))*glyphW)/2
		ebitenutil.DebugPrintAt(screen, line.Text, lx, int(y)+16+i*glyphH)
	}
}

// tokenLabel is the token counter without the bullet, which the debug
// font cannot draw.
func tokenLabel(s game.Snapshot) string {
	return fmt.Sprintf("BMN %d", s.Stats.TokensCollected)
}

// fade scales the alpha of c by life in [0, 1].
func fade(c color.RGBA, life float64) color.RGBA {
	l := core.ClampF(life, 0, 1)
	// Premultiplied alpha
	return color.RGBA{
		R: uint8(float64(c.R) * l),
		G: uint8(float64(c.G) * l),
		B: uint8(float64(c.B) * l),
		A: uint8(float64(c.A) * l),
	}
}

// starAlpha makes every seventh star twinkle slowly.
func starAlpha(frame uint64, i int) uint8 {
	if i%7 != 0 {
		return 0xB0
	}
	phase := math.Sin(float64(frame)*0.05 + float64(i))
	return uint8(0x80 + 0x7F*(phase+1)/2)
}

// Run opens the window and blocks until it is closed.
func Run(engine *game.Engine, opts Options) error {
	g := New(engine, opts)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(hud.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	err := ebiten.RunGame(g)
	g.sched.Stop()
	return err
}
