package snake

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Apple is the single piece of food on the board.
type Apple struct {
	Entity

	grid core.Grid
	rng  *rand.Rand
}

// NewApple creates an apple that draws its positions from rng.
// Call RandomizePosition to place it.
func NewApple(grid core.Grid, color core.Color, rng *rand.Rand) *Apple {
	return &Apple{
		Entity: Entity{Color: color},
		grid:   grid,
		rng:    rng,
	}
}

// RandomizePosition samples uniformly random cells until one is neither in
// occupied nor in avoid.
//
// There is no attempt limit: if every cell is excluded the call never returns.
func (a *Apple) RandomizePosition(occupied []core.Cell, avoid ...core.Cell) {
	for {
		c := a.grid.CellAt(a.rng.Intn(a.grid.Cols()), a.rng.Intn(a.grid.Rows()))
		if slices.Contains(occupied, c) || slices.Contains(avoid, c) {
			continue
		}
		a.Position = c
		return
	}
}
