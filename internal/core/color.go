package core

import "image/color"

// Color represents a foreground color for a screen cell or a particle.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPurple
	ColorGold
	ColorNavy
)

// ANSI returns the 256-color palette index for the color.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightMagenta:
		return "13"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorPurple:
		return "99"
	case ColorGold:
		return "214"
	case ColorNavy:
		return "17"
	default:
		return ""
	}
}

// RGBA returns a true-color approximation for pixel frontends.
func (c Color) RGBA() color.RGBA {
	switch c {
	case ColorRed, ColorBrightRed:
		return color.RGBA{0xEF, 0x44, 0x44, 0xFF}
	case ColorGreen, ColorBrightGreen:
		return color.RGBA{0x4A, 0xDE, 0x80, 0xFF}
	case ColorYellow, ColorBrightYellow:
		return color.RGBA{0xFA, 0xCC, 0x15, 0xFF}
	case ColorBlue, ColorBrightBlue:
		return color.RGBA{0x00, 0xA3, 0xFF, 0xFF}
	case ColorMagenta, ColorBrightMagenta:
		return color.RGBA{0xD9, 0x46, 0xEF, 0xFF}
	case ColorCyan, ColorBrightCyan:
		return color.RGBA{0x22, 0xD3, 0xEE, 0xFF}
	case ColorOrange:
		return color.RGBA{0xF9, 0x73, 0x16, 0xFF}
	case ColorGray:
		return color.RGBA{0x8A, 0x8A, 0x8A, 0xFF}
	case ColorPurple:
		return color.RGBA{0x99, 0x45, 0xFF, 0xFF}
	case ColorGold:
		return color.RGBA{0xF0, 0xB9, 0x0B, 0xFF}
	case ColorNavy:
		return color.RGBA{0x00, 0x2D, 0x74, 0xCC}
	default:
		return color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	}
}
