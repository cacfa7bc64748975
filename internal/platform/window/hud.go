// Package window runs a game in a native window using raylib. The raylib
// front-end is only built with the "raylib" build tag; the layout helpers
// here are shared with it.
package window

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// HUDHeight is the height in pixels of the status bar above the board.
const HUDHeight = 32

// Size returns the window size needed for a board.
func Size(board core.Grid) (width, height int) {
	return board.Width, board.Height + HUDHeight
}

// HUDText formats the status bar.
func HUDText(title string, st core.GameState) string {
	text := fmt.Sprintf("%s  Length: %d  Apples: %d  Best: %d  Resets: %d",
		title, st.Length, st.Score, st.Best, st.Resets)
	if st.Paused {
		text += "  [paused]"
	}
	return text
}

// TerminalConfig adapts cfg so a game laid out for character screens sees
// exactly enough room for its board.
func TerminalConfig(cfg core.RuntimeConfig) core.RuntimeConfig {
	cfg.ScreenW = cfg.Board.Cols() * core.CellWidth
	cfg.ScreenH = cfg.Board.Rows() + 2
	return cfg
}
