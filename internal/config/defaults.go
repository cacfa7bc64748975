package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	p := core.DefaultPalette()
	return SnakeConfig{
		Board: BoardConfig{
			Width:    640,
			Height:   480,
			CellSize: 20,
		},
		TickRate: 20,
		Rules: core.Rules{
			AvoidVacatedTail:    true,
			ReplaceAppleOnReset: true,
		},
		Colors: ColorConfig{
			Background: p.Background.Hex(),
			Border:     p.Border.Hex(),
			Apple:      p.Apple.Hex(),
			Snake:      p.Snake.Hex(),
			Text:       p.Text.Hex(),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
