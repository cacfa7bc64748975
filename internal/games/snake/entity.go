package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Entity is a colored object positioned on the board.
type Entity struct {
	Position core.Cell
	Color    core.Color
}

// Draw paints the entity's cell with a border.
func (e Entity) Draw(c core.Canvas, border core.Color) {
	c.DrawCell(e.Position, e.Color, border)
}
