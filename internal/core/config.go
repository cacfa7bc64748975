package core

// Rules selects the optional behaviors of the game loop.
type Rules struct {
	// AvoidVacatedTail keeps a freshly placed apple off the cell the tail
	// left on the same tick.
	AvoidVacatedTail bool `yaml:"avoid_vacated_tail"`

	// ReplaceAppleOnReset moves the apple when a self-collision resets the snake.
	ReplaceAppleOnReset bool `yaml:"replace_apple_on_reset"`
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW       int     // Screen width in characters
	ScreenH       int     // Screen height in characters
	TickRate      int     // Simulation ticks per second
	Seed          int64   // RNG seed for deterministic gameplay
	Board         Grid    // Board geometry
	InitialLength int     // Starting snake length; 0 keeps the variant's default
	Palette       Palette // Board colors
	Rules         Rules
}

// DefaultConfig returns a RuntimeConfig for a 640x480 board of 20-unit cells
// running at 20 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  30,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
		Board:    NewGrid(640, 480, 20),
		Palette:  DefaultPalette(),
		Rules: Rules{
			AvoidVacatedTail:    true,
			ReplaceAppleOnReset: true,
		},
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Apples eaten in the current round
	Length int  // Current snake length
	Best   int  // Longest snake this session
	Resets int  // Self-collision resets this session
	Paused bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State    GameState
	Collided bool // The snake bit itself and was reset this tick
	Ate      bool // The snake ate the apple this tick
}
