//go:build raylib

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a native window",
	Long: `Open a window sized to the board and play there.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart the round
  Q or close   - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(windowCmd)
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID := snake.DefaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, closeLog, err := newLogger(os.Stderr, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	snakeCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}
	cfg, err := snakeCfg.Runtime(0, 0, flagSeed)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown variant %q: %w", gameID, err)
	}
	return window.Run(game, cfg, logger)
}
