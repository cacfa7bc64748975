package core

// Canvas is the drawing surface a game board is rendered onto.
// Coordinates are board cells; how a cell maps to pixels or characters is up
// to the implementation.
type Canvas interface {
	// Fill paints the whole board with the background color.
	Fill(bg Color)

	// DrawCell paints one cell with the given fill and a one-unit border.
	DrawCell(at Cell, fill, border Color)
}

// CellWidth is how many terminal columns one board cell occupies.
// Terminal characters are roughly twice as tall as they are wide.
const CellWidth = 2

// ScreenCanvas draws board cells into a Screen. Each cell becomes CellWidth
// characters: the border color draws a "[]" pair over the fill color.
type ScreenCanvas struct {
	Screen  *Screen
	Grid    Grid
	OriginX int // Screen column of the board's left edge
	OriginY int // Screen row of the board's top edge
}

// Fill paints every board cell with bg.
func (c ScreenCanvas) Fill(bg Color) {
	blank := ScreenCell{Rune: ' ', Fg: bg, Bg: bg, Colored: true}
	w := c.Grid.Cols() * CellWidth
	for y := range c.Grid.Rows() {
		for x := range w {
			c.Screen.SetCell(c.OriginX+x, c.OriginY+y, blank)
		}
	}
}

// DrawCell paints one board cell. When fill and border match the cell is drawn
// as a solid block, which is how a cell is erased back to the background.
func (c ScreenCanvas) DrawCell(at Cell, fill, border Color) {
	col, row := c.Grid.Index(at)
	x := c.OriginX + col*CellWidth
	y := c.OriginY + row

	left, right := '[', ']'
	if fill == border {
		left, right = ' ', ' '
	}
	c.Screen.SetCell(x, y, ScreenCell{Rune: left, Fg: border, Bg: fill, Colored: true})
	c.Screen.SetCell(x+1, y, ScreenCell{Rune: right, Fg: border, Bg: fill, Colored: true})
}
