// Package snake implements the classic wrap-around Snake game: a snake that
// steers around a toroidal board, grows by eating apples and starts over when
// it bites itself.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // Status line plus separator

// Variant describes one registered flavor of the game.
type Variant struct {
	ID            string
	Title         string
	InitialLength int  // Cells the snake starts with
	Incremental   bool // Redraw only the cells that changed each tick
}

// Round is one finished life of the snake within a session.
type Round struct {
	Number  int
	Length  int    // Snake length when the round ended
	Apples  int    // Apples eaten during the round
	Ticks   int    // Moves made during the round
	EndedBy string // "self-collision" or "restart"
}

const (
	endedByCollision = "self-collision"
	endedByRestart   = "restart"
)

// Game implements the Snake game.
type Game struct {
	variant Variant
	rng     *rand.Rand
	tick    uint64

	grid    core.Grid
	palette core.Palette
	rules   core.Rules

	snake *Snake
	apple *Apple
	state GameStateType

	// Session counters, kept in memory only
	applesEaten int // Current round
	roundTicks  int // Current round
	best        int
	resets      int
	rounds      []Round

	paused   bool
	tooSmall bool

	screenW int
	screenH int
	originX int
	originY int

	fullRedraw bool // Next frame must be a full Render
}

// New creates a game for the given variant. Call Reset before stepping it.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Reset initializes the board, the snake and the apple, and clears the
// session counters.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	defaults := core.DefaultConfig()
	if cfg.Board.CellSize <= 0 {
		cfg.Board = defaults.Board
	}
	if cfg.Palette == (core.Palette{}) {
		cfg.Palette = defaults.Palette
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.grid = cfg.Board
	g.palette = cfg.Palette
	g.rules = cfg.Rules

	length := g.variant.InitialLength
	if cfg.InitialLength > 0 {
		length = cfg.InitialLength
	}
	g.snake = NewSnake(g.grid, length, g.palette.Snake)
	g.apple = NewApple(g.grid, g.palette.Apple, g.rng)
	g.apple.RandomizePosition(g.snake.Positions())

	g.state = StateRunning
	g.applesEaten = 0
	g.roundTicks = 0
	g.best = g.snake.Len()
	g.resets = 0
	g.rounds = nil
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes where the board sits on screen.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height

	boardW := g.grid.Cols() * core.CellWidth
	boardH := g.grid.Rows()
	g.tooSmall = width < boardW || height < boardH+hudHeight
	g.originX = (width - boardW) / 2
	g.originY = hudHeight
	g.fullRedraw = true
}

// Step advances the game by one tick: input, move, collision, apple.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.fullRedraw = true
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.endRound(g.snake.Len(), endedByRestart)
		g.snake.Reset()
		g.apple.RandomizePosition(g.snake.Positions())
		g.state = StateReset
		g.fullRedraw = true
		return core.StepResult{State: g.State()}
	}

	g.state = StateRunning
	for _, d := range in.Directions() {
		g.snake.SetNextDirection(d)
	}

	lengthBefore := g.snake.Len()
	if g.snake.Advance() {
		g.resets++
		g.endRound(lengthBefore, endedByCollision)
		if g.rules.ReplaceAppleOnReset || g.snake.Occupies(g.apple.Position) {
			g.apple.RandomizePosition(g.snake.Positions())
		}
		g.state = StateReset
		g.fullRedraw = true
		return core.StepResult{State: g.State(), Collided: true}
	}
	g.roundTicks++

	ate := false
	if g.snake.Head() == g.apple.Position {
		g.snake.Grow()
		g.applesEaten++
		g.placeApple()
		ate = true
	}
	g.best = max(g.best, g.snake.Len())

	return core.StepResult{State: g.State(), Ate: ate}
}

// placeApple moves the apple off the snake and, when the rules ask for it,
// off the cell the tail has just left.
func (g *Game) placeApple() {
	occupied := g.snake.Positions()
	if last, ok := g.snake.LastRemoved(); ok && g.rules.AvoidVacatedTail {
		g.apple.RandomizePosition(occupied, last)
		return
	}
	g.apple.RandomizePosition(occupied)
}

func (g *Game) endRound(length int, reason string) {
	g.rounds = append(g.rounds, Round{
		Number:  len(g.rounds) + 1,
		Length:  length,
		Apples:  g.applesEaten,
		Ticks:   g.roundTicks,
		EndedBy: reason,
	})
	g.applesEaten = 0
	g.roundTicks = 0
}

// Rounds returns the rounds finished so far this session.
func (g *Game) Rounds() []Round {
	out := make([]Round, len(g.rounds))
	copy(out, g.rounds)
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.applesEaten,
		Length: g.snake.Len(),
		Best:   g.best,
		Resets: g.resets,
		Paused: g.paused,
	}
}

// Draw paints the board: background, apple, then the snake.
func (g *Game) Draw(c core.Canvas) {
	c.Fill(g.palette.Background)
	g.apple.Draw(c, g.palette.Border)
	g.snake.Draw(c, g.palette.Border)
}

// Render redraws the whole screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)
	g.fullRedraw = false

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.grid.Cols()*core.CellWidth, g.grid.Rows()+hudHeight))
		return
	}

	g.Draw(g.canvas(dst))

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderDelta redraws only the vacated tail, the new head, the apple and the
// HUD. It returns false without drawing when a full Render is needed.
func (g *Game) renderDelta(dst *core.Screen) bool {
	if g.fullRedraw || g.paused || g.tooSmall {
		return false
	}
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		return false
	}

	c := g.canvas(dst)
	if last, ok := g.snake.LastRemoved(); ok {
		c.DrawCell(last, g.palette.Background, g.palette.Background)
	}
	c.DrawCell(g.snake.Head(), g.palette.Snake, g.palette.Border)
	g.apple.Draw(c, g.palette.Border)

	dst.ClearRow(0)
	g.renderHUD(dst)
	return true
}

func (g *Game) canvas(dst *core.Screen) core.ScreenCanvas {
	return core.ScreenCanvas{
		Screen:  dst,
		Grid:    g.grid,
		OriginX: g.originX,
		OriginY: g.originY,
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Length: %d  Apples: %d  Best: %d  Resets: %d",
		g.variant.Title, g.snake.Len(), g.applesEaten, g.best, g.resets)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
