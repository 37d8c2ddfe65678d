package tui

import (
	"math"

	"github.com/vovakirdan/moon-runner/internal/core"
	"github.com/vovakirdan/moon-runner/internal/game"
	"github.com/vovakirdan/moon-runner/internal/platform/hud"
)

// World units covered by one terminal cell. Cells are roughly twice as
// tall as they are wide, so the mapping keeps the world's aspect ratio.
const (
	CellW = 8
	CellH = 16
)

// Glyphs used by the terminal renderer.
const (
	GroundChar    = '═'
	BlockChar     = '█'
	CardChar      = '▓'
	TopCapChar    = '▀'
	BottomCapChar = '▄'
	TokenChar     = '◉'
	StarChar      = '·'
	TwinkleChar   = '*'
)

// Layout maps terminal dimensions onto the screen buffer and the world.
// Row 0 holds the HUD, the last screen row is the ground and everything in
// between is the play area. The help line is drawn below the buffer.
type Layout struct {
	Cols int
	Rows int // Screen buffer rows, one less than the terminal
}

// NewLayout creates a layout for a terminal of the given size.
func NewLayout(termCols, termRows int) Layout {
	return Layout{Cols: max(termCols, 0), Rows: max(termRows-1, 0)}
}

// PlayRows returns the number of rows available to the world.
func (l Layout) PlayRows() int {
	return max(l.Rows-2, 0)
}

// World returns the viewport size in world units.
func (l Layout) World() (w, h float64) {
	return float64(l.Cols * CellW), float64(l.PlayRows() * CellH)
}

// Cell converts a world position to a screen cell.
func (l Layout) Cell(x, y float64) (cx, cy int) {
	return int(math.Floor(x / CellW)), 1 + int(math.Floor(y/CellH))
}

// Draw renders the snapshot into dst, which must match the layout size.
// status is right-aligned on the HUD row.
func (l Layout) Draw(dst *core.Screen, s game.Snapshot, status string) {
	dst.Clear()
	if dst.Empty() {
		return
	}

	l.drawStars(dst, s)
	for _, o := range s.Obstacles {
		l.drawObstacle(dst, o)
	}
	for _, c := range s.Collectibles {
		if c.Collected {
			continue
		}
		x, y := l.Cell(c.X, s.TokenY(c))
		l.plot(dst, x, y, TokenChar, game.TokenColor)
	}
	for _, p := range s.Particles {
		x, y := l.Cell(p.Pos.X, p.Pos.Y)
		l.plot(dst, x, y, particleGlyph(p.Life), p.Color)
	}
	l.drawPlayer(dst, s)

	ground := l.Rows - 1
	for x := range l.Cols {
		dst.SetColored(x, ground, GroundChar, core.ColorNavy)
	}

	l.drawHUD(dst, s, status)
	l.drawOverlay(dst, hud.Overlay(s))
}

// plot sets a cell only inside the play area.
func (l Layout) plot(dst *core.Screen, x, y int, r rune, c core.Color) {
	if y < 1 || y > l.PlayRows() {
		return
	}
	dst.SetColored(x, y, r, c)
}

func (l Layout) drawStars(dst *core.Screen, s game.Snapshot) {
	for i, st := range s.Stars {
		x, y := l.Cell(st.X, st.Y)
		r := StarChar
		if st.Size > 2 && (s.Frame/20+uint64(i))%4 == 0 {
			r = TwinkleChar
		}
		l.plot(dst, x, y, r, core.ColorGray)
	}
}

func (l Layout) drawObstacle(dst *core.Screen, o game.Obstacle) {
	fill, color := BlockChar, core.ColorGreen
	if o.Kind == game.KindNFTCard {
		fill, color = CardChar, core.ColorPurple
	}

	left := int(math.Floor(o.X / CellW))
	right := int(math.Ceil(o.Right()/CellW)) - 1
	rows := l.PlayRows()

	// Rows are covered when any part of them lies inside a column.
	topRows := int(math.Ceil(o.TopHeight / CellH))
	bottomRow := int(math.Floor(o.BottomY / CellH))

	for x := left; x <= right; x++ {
		for r := 0; r < min(topRows, rows); r++ {
			g := fill
			if r == topRows-1 && math.Mod(o.TopHeight, CellH) != 0 && math.Mod(o.TopHeight, CellH) <= CellH/2 {
				g = TopCapChar
			}
			dst.SetColored(x, 1+r, g, color)
		}
		for r := max(bottomRow, 0); r < rows; r++ {
			g := fill
			if r == bottomRow && math.Mod(o.BottomY, CellH) >= CellH/2 {
				g = BottomCapChar
			}
			dst.SetColored(x, 1+r, g, color)
		}
	}
}

func (l Layout) drawPlayer(dst *core.Screen, s game.Snapshot) {
	p := s.Player
	x, y := l.Cell(p.X, p.Y)

	glyph := '▶'
	switch {
	case p.Rotation < -0.2:
		glyph = '↗'
	case p.Rotation > 0.2:
		glyph = '↘'
	}
	color := game.PlayerColor
	if s.State == game.StateGameOver {
		color = core.ColorBrightRed
	}
	l.plot(dst, x, y, glyph, color)

	if s.State == game.StatePlaying {
		flame := '~'
		if s.Frame%6 < 3 {
			flame = '≈'
		}
		l.plot(dst, x-1, y, flame, core.ColorOrange)
	}
}

func (l Layout) drawHUD(dst *core.Screen, s game.Snapshot, status string) {
	score := hud.Score(s)
	dst.DrawText(1, 0, score, core.ColorBrightWhite)
	dst.DrawText(3+len(score), 0, hud.Tokens(s), game.TokenColor)
	if status != "" {
		dst.DrawText(l.Cols-1-len([]rune(status)), 0, status, core.ColorGray)
	}
}

// drawOverlay draws the state panel centered over the play area.
func (l Layout) drawOverlay(dst *core.Screen, lines []hud.Line) {
	if len(lines) == 0 {
		return
	}
	boxW := hud.Width(lines) + 4
	boxH := len(lines) + 2
	box := core.NewRect((l.Cols-boxW)/2, 1+(l.PlayRows()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorPurple)
	for i, line := range lines {
		x := box.X + (boxW-len([]rune(line.Text)))/2
		dst.DrawText(x, box.Y+1+i, line.Text, line.Color)
	}
}

func particleGlyph(life float64) rune {
	switch {
	case life > 0.66:
		return '•'
	case life > 0.33:
		return '·'
	default:
		return '.'
	}
}
