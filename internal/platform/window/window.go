//go:build raylib

package window

import (
	"errors"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const fontSize = 20

// Canvas draws board cells as filled squares with a one-pixel border.
type Canvas struct {
	Grid    core.Grid
	OffsetY int32 // Window row of the board's top edge
}

// Fill paints the whole board with bg.
func (c Canvas) Fill(bg core.Color) {
	rl.DrawRectangle(0, c.OffsetY, int32(c.Grid.Width), int32(c.Grid.Height), toRL(bg))
}

// DrawCell paints one cell with the given fill and border.
func (c Canvas) DrawCell(at core.Cell, fill, border core.Color) {
	x, y := int32(at.X), int32(at.Y)+c.OffsetY
	size := int32(c.Grid.CellSize)
	rl.DrawRectangle(x, y, size, size, toRL(fill))
	rl.DrawRectangleLines(x, y, size, size, toRL(border))
}

func toRL(c core.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

var keyActions = []struct {
	key    int32
	action core.Action
}{
	{rl.KeyUp, core.ActionUp},
	{rl.KeyW, core.ActionUp},
	{rl.KeyDown, core.ActionDown},
	{rl.KeyS, core.ActionDown},
	{rl.KeyLeft, core.ActionLeft},
	{rl.KeyA, core.ActionLeft},
	{rl.KeyRight, core.ActionRight},
	{rl.KeyD, core.ActionRight},
	{rl.KeyP, core.ActionPause},
	{rl.KeyR, core.ActionRestart},
	{rl.KeyQ, core.ActionQuit},
}

// pollInput collects the keys pressed since the previous frame, in table order.
func pollInput(frame *core.InputFrame) {
	frame.Clear()
	for _, k := range keyActions {
		if rl.IsKeyPressed(k.key) {
			frame.Set(k.action)
		}
	}
}

// Run opens a window sized to the board and plays game until the window is
// closed or Q is pressed. The frame rate is the tick rate: one move per frame.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}

	w, h := Size(cfg.Board)
	rl.InitWindow(int32(w), int32(h), game.Title())
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return errors.New("window: cannot open a window")
	}
	rl.SetExitKey(0) // Esc does not close the window
	rl.SetTargetFPS(int32(cfg.TickRate))

	game.Reset(TerminalConfig(cfg))
	canvas := Canvas{Grid: cfg.Board, OffsetY: HUDHeight}
	text := toRL(cfg.Palette.Text)
	frame := core.NewInputFrame()

	logger.Info("window opened", "game", game.ID(), "width", w, "height", h, "fps", cfg.TickRate)
	for !rl.WindowShouldClose() {
		pollInput(&frame)
		if frame.Has(core.ActionQuit) {
			break
		}

		res := game.Step(frame)
		if res.Collided {
			logger.Debug("snake bit itself", "resets", res.State.Resets)
		}
		if res.Ate {
			logger.Debug("apple eaten", "length", res.State.Length)
		}

		rl.BeginDrawing()
		rl.ClearBackground(toRL(cfg.Palette.Background))
		game.Draw(canvas)
		rl.DrawText(HUDText(game.Title(), res.State), 8, (HUDHeight-fontSize)/2, fontSize, text)
		if res.State.Paused {
			msg := "Paused - press P to continue"
			tw := rl.MeasureText(msg, fontSize)
			rl.DrawText(msg, (int32(w)-tw)/2, int32(h)/2, fontSize, text)
		}
		rl.EndDrawing()
	}
	logger.Info("window closed", "game", game.ID())
	return nil
}
