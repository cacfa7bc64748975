// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board    BoardConfig  `yaml:"board"`
	Snake    SnakeOptions `yaml:"snake"`
	TickRate int          `yaml:"tick_rate"` // Moves per second
	Rules    core.Rules   `yaml:"rules"`
	Colors   ColorConfig  `yaml:"colors"`
}

// BoardConfig defines the board geometry in abstract units.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SnakeOptions defines snake parameters.
type SnakeOptions struct {
	InitialLength int `yaml:"initial_length"` // 0 keeps the variant's default
}

// ColorConfig holds the palette as "#RRGGBB" strings.
type ColorConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Apple      string `yaml:"apple"`
	Snake      string `yaml:"snake"`
	Text       string `yaml:"text"`
}

// Grid returns the board geometry.
func (c SnakeConfig) Grid() core.Grid {
	return core.NewGrid(c.Board.Width, c.Board.Height, c.Board.CellSize)
}

// Palette parses the configured colors.
func (c SnakeConfig) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"background", c.Colors.Background, &p.Background},
		{"border", c.Colors.Border, &p.Border},
		{"apple", c.Colors.Apple, &p.Apple},
		{"snake", c.Colors.Snake, &p.Snake},
		{"text", c.Colors.Text, &p.Text},
	}
	for _, f := range fields {
		col, err := core.ParseHex(f.src)
		if err != nil {
			return core.Palette{}, fmt.Errorf("%w: colors.%s: %v", ErrInvalid, f.name, err)
		}
		*f.dst = col
	}
	return p, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.CellSize <= 0:
		return fmt.Errorf("%w: board.cell_size must be positive, got %d", ErrInvalid, b.CellSize)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size must be positive, got %dx%d", ErrInvalid, b.Width, b.Height)
	case b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0:
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell_size %d",
			ErrInvalid, b.Width, b.Height, b.CellSize)
	case c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	case c.Snake.InitialLength < 0:
		return fmt.Errorf("%w: snake.initial_length must not be negative, got %d",
			ErrInvalid, c.Snake.InitialLength)
	case c.Snake.InitialLength > c.Grid().Cols():
		// The starting chain lies on a single row.
		return fmt.Errorf("%w: snake.initial_length %d does not fit a row of %d cells",
			ErrInvalid, c.Snake.InitialLength, c.Grid().Cols())
	}

	_, err := c.Palette()
	return err
}

// Runtime validates the configuration and converts it into the settings a
// game is reset with.
func (c SnakeConfig) Runtime(screenW, screenH int, seed int64) (core.RuntimeConfig, error) {
	if err := c.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}
	palette, err := c.Palette()
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	return core.RuntimeConfig{
		ScreenW:       screenW,
		ScreenH:       screenH,
		TickRate:      c.TickRate,
		Seed:          seed,
		Board:         c.Grid(),
		InitialLength: c.Snake.InitialLength,
		Palette:       palette,
		Rules:         c.Rules,
	}, nil
}
