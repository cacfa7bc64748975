package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start with an interactive variant picker.

Use arrow keys or j/k to navigate, Enter to select a variant.
After quitting a game you return to the menu.

Examples:
  snake menu
  snake menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := terminalRuntime(logger)
	if err != nil {
		return err
	}

	// Menu loop
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}

		// Keep any size changes from the menu
		cfg = result.Config

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		logger.Info("variant selected", "game", result.GameID)

		if err := tui.Run(game, cfg, logger); err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
	}
}
