// Package core provides fundamental types and utilities for the snake platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Cell is a grid-aligned board position. Coordinates are expressed in board
// units, so both X and Y are multiples of the grid's cell size.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is a unit step on the grid.
type Direction struct {
	DX, DY int
}

// The four movement directions. Screen Y grows downwards.
var (
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d and other point in opposite directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// WrapMove steps c one cell in direction d on a width x height board and wraps
// around the edges, so the board behaves like a torus.
func WrapMove(c Cell, d Direction, cellSize, width, height int) Cell {
	return Cell{
		X: mod(c.X+d.DX*cellSize, width),
		Y: mod(c.Y+d.DY*cellSize, height),
	}
}

// mod is the non-negative remainder of a / b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Grid maps board coordinates onto discrete cells of a fixed size.
type Grid struct {
	Width    int // Board width in board units
	Height   int // Board height in board units
	CellSize int // Edge length of one cell in board units
}

// NewGrid creates a grid for a width x height board split into cellSize cells.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// Cols returns the number of cell columns.
func (g Grid) Cols() int {
	return g.Width / g.CellSize
}

// Rows returns the number of cell rows.
func (g Grid) Rows() int {
	return g.Height / g.CellSize
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols() * g.Rows()
}

// Center returns the cell at the middle of the board, snapped to the lattice.
func (g Grid) Center() Cell {
	return g.CellAt(g.Cols()/2, g.Rows()/2)
}

// CellAt returns the cell at the given column and row.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

// Index returns the column and row of a cell.
func (g Grid) Index(c Cell) (col, row int) {
	return c.X / g.CellSize, c.Y / g.CellSize
}

// Contains reports whether c is an aligned cell inside the board.
func (g Grid) Contains(c Cell) bool {
	if c.X < 0 || c.Y < 0 || c.X >= g.Width || c.Y >= g.Height {
		return false
	}
	return c.X%g.CellSize == 0 && c.Y%g.CellSize == 0
}

// Move steps c one cell in direction d with wrap-around.
func (g Grid) Move(c Cell, d Direction) Cell {
	return WrapMove(c, d, g.CellSize, g.Width, g.Height)
}

// Rect represents an axis-aligned rectangle in screen characters.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
