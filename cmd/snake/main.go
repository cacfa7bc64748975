// snake is the classic wrap-around Snake game for the terminal.
//
// Usage:
//
//	snake play [variant]  - Play a variant (default: classic)
//	snake menu            - Pick a variant interactively
//	snake list            - List available variants
//	snake config          - Print the effective configuration
//	snake serve           - Start SSH server for remote play
//	snake window          - Play in a native window (raylib builds only)
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate from the config
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the wrap-around snake game for your terminal",
	Long: `Snake steers around a board whose edges wrap, grows by eating apples
and starts over when it bites itself.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  list     - Show all variants
  config   - Print the effective configuration
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play chain --fps 10
  snake menu --seed 42
  snake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate in moves per second (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closeFn, nil
}

// loadConfig reads the config file and applies the --fps override.
func loadConfig(logger *log.Logger) (config.SnakeConfig, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	logger.Debug("config loaded", "source", source, "tick_rate", cfg.TickRate)
	return cfg, nil
}

// terminalRuntime loads the config and sizes it to the current terminal.
func terminalRuntime(logger *log.Logger) (core.RuntimeConfig, error) {
	cfg, err := loadConfig(logger)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return cfg.Runtime(width, height, flagSeed)
}
