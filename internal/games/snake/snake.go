package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered run of cells with the head at index 0.
//
// The embedded Entity holds the head position and the body color.
type Snake struct {
	Entity

	grid          core.Grid
	initialLength int

	positions     []core.Cell
	length        int // Target length; the body grows towards it one move at a time
	direction     core.Direction
	nextDirection core.Direction // Buffered, applied on the next Advance
	lastRemoved   core.Cell
	hasRemoved    bool
}

// NewSnake creates a snake on grid and places it at its starting position.
// The starting chain lies on one row, so initialLength is clamped to
// [1, grid.Cols()].
func NewSnake(grid core.Grid, initialLength int, color core.Color) *Snake {
	s := &Snake{
		Entity:        Entity{Color: color},
		grid:          grid,
		initialLength: max(min(initialLength, grid.Cols()), 1),
	}
	s.Reset()
	return s
}

// Reset puts the snake back at the board centre heading right.
// A chain longer than one cell trails off to the left of the head.
func (s *Snake) Reset() {
	head := s.grid.Center()
	s.positions = make([]core.Cell, 0, s.initialLength)
	s.positions = append(s.positions, head)
	for len(s.positions) < s.initialLength {
		s.positions = append(s.positions, s.grid.Move(s.positions[len(s.positions)-1], core.Left))
	}

	s.Position = head
	s.length = s.initialLength
	s.direction = core.Right
	s.nextDirection = core.Right
	s.lastRemoved = core.Cell{}
	s.hasRemoved = false
}

// SetNextDirection buffers d for the next move. A reversal onto the neck is
// ignored and reported by returning false.
func (s *Snake) SetNextDirection(d core.Direction) bool {
	if d.IsOpposite(s.direction) {
		return false
	}
	s.nextDirection = d
	return true
}

// Advance moves the snake one cell and reports whether it bit itself.
//
// The tail cell counts as free when it is vacated on this same move, so a
// snake may chase its own tail. On collision the move is discarded and the
// snake is reset.
func (s *Snake) Advance() (collided bool) {
	s.direction = s.nextDirection
	newHead := s.grid.Move(s.Head(), s.direction)

	body := s.positions
	if len(body) >= s.length {
		body = body[:len(body)-1]
	}
	if slices.Contains(body, newHead) {
		s.Reset()
		return true
	}

	s.positions = slices.Insert(s.positions, 0, newHead)
	s.Position = newHead

	if len(s.positions) > s.length {
		last := len(s.positions) - 1
		s.lastRemoved = s.positions[last]
		s.hasRemoved = true
		s.positions = s.positions[:last]
	} else {
		s.hasRemoved = false
	}
	return false
}

// Grow raises the target length by one. The body catches up on the next Advance.
func (s *Snake) Grow() {
	s.length++
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.positions[0]
}

// Positions returns a copy of the occupied cells, head first.
func (s *Snake) Positions() []core.Cell {
	return slices.Clone(s.positions)
}

// Len returns the number of occupied cells.
func (s *Snake) Len() int {
	return len(s.positions)
}

// Length returns the target length.
func (s *Snake) Length() int {
	return s.length
}

// InitialLength returns the length the snake has after Reset.
func (s *Snake) InitialLength() int {
	return s.initialLength
}

// Direction returns the direction applied on the last move.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// NextDirection returns the buffered direction.
func (s *Snake) NextDirection() core.Direction {
	return s.nextDirection
}

// LastRemoved returns the tail cell vacated by the last move, if any.
func (s *Snake) LastRemoved() (core.Cell, bool) {
	return s.lastRemoved, s.hasRemoved
}

// Occupies reports whether any segment sits on c.
func (s *Snake) Occupies(c core.Cell) bool {
	return slices.Contains(s.positions, c)
}

// Draw paints every segment.
func (s *Snake) Draw(c core.Canvas, border core.Color) {
	for _, p := range s.positions {
		c.DrawCell(p, s.Color, border)
	}
}
