package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StateRunning     GameStateType = "running"
	StateReset       GameStateType = "reset" // The snake was reset on this tick
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick         uint64
	Variant      string
	Length       int // Occupied cells
	TargetLength int
	Head         core.Cell
	Dir          core.Direction
	NextDir      core.Direction
	Apple        core.Cell
	ApplesEaten  int
	Best         int
	Resets       int
	Rounds       int
	State        GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := g.state
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:         g.tick,
		Variant:      g.variant.ID,
		Length:       g.snake.Len(),
		TargetLength: g.snake.Length(),
		Head:         g.snake.Head(),
		Dir:          g.snake.Direction(),
		NextDir:      g.snake.NextDirection(),
		Apple:        g.apple.Position,
		ApplesEaten:  g.applesEaten,
		Best:         g.best,
		Resets:       g.resets,
		Rounds:       len(g.rounds),
		State:        state,
	}
}
