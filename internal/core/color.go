package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color.
// It marshals to and from "#RRGGBB" text so it can live in config files.
type Color struct {
	R, G, B uint8
}

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#RRGGBB" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("core: invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Palette holds the colors used to draw the board.
type Palette struct {
	Background Color `yaml:"background"`
	Border     Color `yaml:"border"`
	Apple      Color `yaml:"apple"`
	Snake      Color `yaml:"snake"`
	Text       Color `yaml:"text"`
}

// DefaultPalette returns the classic black board with a green snake,
// a red apple and cyan cell borders.
func DefaultPalette() Palette {
	return Palette{
		Background: RGB(0, 0, 0),
		Border:     RGB(93, 216, 228),
		Apple:      RGB(255, 0, 0),
		Snake:      RGB(0, 255, 0),
		Text:       RGB(255, 255, 255),
	}
}
