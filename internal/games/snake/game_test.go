package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func newTestGame(t *testing.T, v Variant, seed int64) *Game {
	t.Helper()
	g := New(v)
	g.Reset(testConfig(seed))
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetPlacesSnakeAndApple(t *testing.T) {
	g := newTestGame(t, Classic, 1)

	snap := g.Snapshot()
	if snap.Head != (core.Cell{X: 320, Y: 240}) {
		t.Errorf("Head = %v, want (320,240)", snap.Head)
	}
	if snap.Length != 1 || snap.State != StateRunning {
		t.Errorf("Length=%d State=%s, want 1 running", snap.Length, snap.State)
	}
	if g.snake.Occupies(snap.Apple) {
		t.Errorf("apple %v placed on the snake", snap.Apple)
	}
	if !testGrid.Contains(snap.Apple) {
		t.Errorf("apple %v is off the grid", snap.Apple)
	}
}

func TestStepMovesOneCell(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	g.apple.Position = core.Cell{X: 0, Y: 0}

	res := g.Step(input())
	if res.Collided || res.Ate {
		t.Fatalf("unexpected result %+v", res)
	}
	if g.snake.Head() != (core.Cell{X: 340, Y: 240}) {
		t.Errorf("Head = %v, want (340,240)", g.snake.Head())
	}
	if last, ok := g.snake.LastRemoved(); !ok || last != (core.Cell{X: 320, Y: 240}) {
		t.Errorf("LastRemoved = %v, %v; want (320,240)", last, ok)
	}
}

func TestStepEatsApple(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	g.apple.Position = core.Cell{X: 340, Y: 240}

	res := g.Step(input())
	if !res.Ate {
		t.Fatal("expected the apple to be eaten")
	}

	snap := g.Snapshot()
	if snap.TargetLength != 2 {
		t.Errorf("TargetLength = %d, want 2", snap.TargetLength)
	}
	if snap.ApplesEaten != 1 {
		t.Errorf("ApplesEaten = %d, want 1", snap.ApplesEaten)
	}
	for _, c := range []core.Cell{{X: 340, Y: 240}, {X: 320, Y: 240}} {
		if snap.Apple == c {
			t.Errorf("apple respawned on %v", c)
		}
	}

	g.Step(input())
	if g.snake.Len() != 2 {
		t.Errorf("Len() = %d on the next tick, want 2", g.snake.Len())
	}
	if g.State().Best != 2 {
		t.Errorf("Best = %d, want 2", g.State().Best)
	}
}

func TestStepIgnoresReversal(t *testing.T) {
	g := newTestGame(t, Classic, 1)

	g.Step(input(core.ActionLeft))
	if g.snake.Direction() != core.Right {
		t.Errorf("Direction = %v, want right", g.snake.Direction())
	}
	if g.snake.Head() != (core.Cell{X: 340, Y: 240}) {
		t.Errorf("Head = %v, want (340,240)", g.snake.Head())
	}
}

func TestStepLastAcceptedDirectionWins(t *testing.T) {
	g := newTestGame(t, Classic, 1)

	g.Step(input(core.ActionUp, core.ActionLeft))
	if g.snake.Direction() != core.Up {
		t.Errorf("Direction = %v, want up", g.snake.Direction())
	}

	g.Step(input(core.ActionLeft, core.ActionDown))
	if g.snake.Direction() != core.Left {
		t.Errorf("Direction = %v, want left", g.snake.Direction())
	}
}

func TestStepSelfCollision(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	g.snake = newTestSnake([]core.Cell{
		{X: 20, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 40}, {X: 20, Y: 40}, {X: 0, Y: 40},
	}, 5, core.Left)
	g.snake.initialLength = 1
	g.apple.Position = testGrid.Center()

	res := g.Step(input(core.ActionDown))
	if !res.Collided {
		t.Fatal("expected a collision")
	}

	snap := g.Snapshot()
	if snap.State != StateReset {
		t.Errorf("State = %s, want reset", snap.State)
	}
	if snap.Length != 1 || snap.Head != testGrid.Center() || snap.Dir != core.Right {
		t.Errorf("snake not reset: %+v", snap)
	}
	if g.snake.Occupies(snap.Apple) {
		t.Errorf("apple %v left on the reset snake", snap.Apple)
	}
	if snap.Resets != 1 {
		t.Errorf("Resets = %d, want 1", snap.Resets)
	}

	rounds := g.Rounds()
	if len(rounds) != 1 || rounds[0].Length != 5 || rounds[0].EndedBy != endedByCollision {
		t.Errorf("Rounds() = %+v, want one self-collision round of length 5", rounds)
	}

	g.Step(input())
	if g.Snapshot().State != StateRunning {
		t.Error("state should return to running after the reset tick")
	}
}

func TestChainOnNarrowBoard(t *testing.T) {
	cfg := testConfig(1)
	cfg.Board = core.NewGrid(40, 200, 20)
	g := New(Chain)
	g.Reset(cfg)

	positions := g.snake.Positions()
	seen := make(map[core.Cell]bool)
	for _, p := range positions {
		if seen[p] {
			t.Fatalf("starting cells overlap: %v", positions)
		}
		seen[p] = true
	}

	for i := range 10 {
		if res := g.Step(input()); res.Collided {
			t.Fatalf("tick %d: unexpected collision, positions %v", i+1, g.snake.Positions())
		}
	}
}

func TestResetKeepsAppleWithoutReplaceRule(t *testing.T) {
	hook := []core.Cell{
		{X: 20, Y: 20}, {X: 40, Y: 20}, {X: 40, Y: 40}, {X: 20, Y: 40}, {X: 0, Y: 40},
	}

	tests := []struct {
		name  string
		apple core.Cell
		moved bool
	}{
		{"apple away from the start", core.Cell{X: 600, Y: 400}, false},
		{"apple on the start cell", testGrid.Center(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, Classic, 1)
			g.rules = core.Rules{}
			g.snake = newTestSnake(hook, 5, core.Left)
			g.snake.initialLength = 1
			g.apple.Position = tc.apple

			if res := g.Step(input(core.ActionDown)); !res.Collided {
				t.Fatal("expected a collision")
			}

			got := g.Snapshot().Apple
			if tc.moved {
				if got == tc.apple || g.snake.Occupies(got) {
					t.Errorf("apple at %v should have moved off the reset snake", got)
				}
			} else if got != tc.apple {
				t.Errorf("apple moved to %v, want it left at %v", got, tc.apple)
			}
		})
	}
}

func TestAppleAfterEatingVacatedTail(t *testing.T) {
	// Three cells in a row: after eating, the only free cells are the
	// start cell the tail just left and the cell behind it.
	cfg := testConfig(0)
	cfg.Board = core.NewGrid(60, 20, 20)
	start := core.Cell{X: 20, Y: 0}
	eaten := core.Cell{X: 40, Y: 0}

	eat := func(seed int64, avoid bool) core.Cell {
		cfg.Seed = seed
		cfg.Rules.AvoidVacatedTail = avoid
		g := New(Classic)
		g.Reset(cfg)
		g.apple.Position = eaten
		if res := g.Step(input()); !res.Ate {
			t.Fatalf("seed %d: expected the apple to be eaten", seed)
		}
		return g.apple.Position
	}

	onTail := false
	for seed := int64(1); seed <= 50; seed++ {
		if got := eat(seed, true); got != (core.Cell{X: 0, Y: 0}) {
			t.Fatalf("seed %d: apple at %v with the vacated tail avoided", seed, got)
		}
		if eat(seed, false) == start {
			onTail = true
		}
	}
	if !onTail {
		t.Error("apple never landed on the vacated tail with the rule off")
	}
}

func TestRestartEndsRound(t *testing.T) {
	g := newTestGame(t, Chain, 1)
	g.Step(input(core.ActionUp))

	res := g.Step(input(core.ActionRestart))
	if res.Collided {
		t.Error("restart is not a collision")
	}

	snap := g.Snapshot()
	if snap.Head != testGrid.Center() || snap.Length != 3 {
		t.Errorf("Head=%v Length=%d, want centre and 3", snap.Head, snap.Length)
	}
	if snap.Resets != 0 {
		t.Errorf("Resets = %d, want 0", snap.Resets)
	}
	rounds := g.Rounds()
	if len(rounds) != 1 || rounds[0].EndedBy != endedByRestart || rounds[0].Ticks != 1 {
		t.Errorf("Rounds() = %+v", rounds)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, Classic, 1)

	g.Step(input(core.ActionPause))
	head := g.snake.Head()
	if !g.State().Paused || g.Snapshot().State != StatePaused {
		t.Fatal("game should be paused")
	}

	for range 5 {
		g.Step(input(core.ActionUp))
	}
	if g.snake.Head() != head {
		t.Error("snake moved while paused")
	}

	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
	if g.snake.Head() == head {
		t.Error("snake should move on the resuming tick")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	g.Resize(40, 20)

	head := g.snake.Head()
	g.Step(input())
	if g.snake.Head() != head {
		t.Error("snake moved while the window is too small")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(40, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small overlay")
	}

	g.Resize(80, 30)
	g.Step(input())
	if g.snake.Head() == head {
		t.Error("snake should move again after growing the window")
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight,
	}

	run := func() Snapshot {
		g := newTestGame(t, Chain, 12345)
		for i := range 500 {
			var in core.InputFrame
			if i%7 == 0 {
				in.Set(inputs[(i/7)%len(inputs)])
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	if s1, s2 := run(), run(); s1 != s2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestRenderHUDAndBoard(t *testing.T) {
	g := newTestGame(t, Classic, 1)
	g.apple.Position = core.Cell{X: 620, Y: 460}
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Snake", "Length: 1", "Resets: 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// Board is 64 columns wide, centered in 80: origin at column 8, row 2.
	head := screen.GetCell(8+16*core.CellWidth, 2+12)
	if head.Rune != '[' || head.Bg != core.DefaultPalette().Snake {
		t.Errorf("head cell = %+v", head)
	}
	corner := screen.GetCell(8, 2)
	if !corner.Colored || corner.Bg != core.DefaultPalette().Background {
		t.Errorf("board corner = %+v", corner)
	}
	apple := screen.GetCell(8+31*core.CellWidth+1, 2+23)
	if apple.Rune != ']' || apple.Bg != core.DefaultPalette().Apple {
		t.Errorf("apple cell = %+v", apple)
	}
	if margin := screen.GetCell(7, 2); margin.Colored {
		t.Errorf("column left of the board is styled: %+v", margin)
	}
}

func TestRenderDeltaMatchesFullRender(t *testing.T) {
	v := Incremental
	g := &incrementalGame{New(v)}
	cfg := testConfig(99)
	cfg.Board = core.NewGrid(200, 200, 20)
	cfg.ScreenW, cfg.ScreenH = 30, 14
	g.Reset(cfg)

	delta := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	full := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(delta)

	turns := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}
	deltas := 0
	for i := range 400 {
		var in core.InputFrame
		if i%3 == 0 {
			in.Set(turns[(i/3)%len(turns)])
		}
		g.Step(in)

		if g.RenderDelta(delta) {
			deltas++
		} else {
			g.Render(delta)
		}
		g.Render(full)

		for y := range cfg.ScreenH {
			for x := range cfg.ScreenW {
				if got, want := delta.GetCell(x, y), full.GetCell(x, y); got != want {
					t.Fatalf("tick %d: cell (%d,%d) = %+v, want %+v", i, x, y, got, want)
				}
			}
		}
	}
	if deltas == 0 {
		t.Error("no incremental frames were drawn")
	}
}

func TestRenderDeltaRefusesAfterResize(t *testing.T) {
	g := &incrementalGame{New(Incremental)}
	g.Reset(testConfig(1))
	screen := core.NewScreen(80, 30)
	g.Render(screen)

	g.Step(input())
	if !g.RenderDelta(screen) {
		t.Fatal("expected an incremental frame")
	}

	g.Resize(90, 30)
	g.Step(input())
	if g.RenderDelta(screen) {
		t.Error("delta drawn after a resize")
	}
}

func TestDrawCanvas(t *testing.T) {
	g := newTestGame(t, Chain, 1)
	c := &recordingCanvas{}
	g.Draw(c)

	if c.fills != 1 {
		t.Errorf("Fill called %d times, want 1", c.fills)
	}
	// Apple plus three segments.
	if len(c.cells) != 4 {
		t.Errorf("DrawCell called %d times, want 4", len(c.cells))
	}
}

type recordingCanvas struct {
	fills int
	cells []core.Cell
}

func (c *recordingCanvas) Fill(core.Color) { c.fills++ }

func (c *recordingCanvas) DrawCell(at core.Cell, _, _ core.Color) {
	c.cells = append(c.cells, at)
}

func TestRegisteredVariants(t *testing.T) {
	for _, v := range Variants() {
		g, err := registry.Create(v.ID)
		if err != nil {
			t.Fatalf("Create(%q): %v", v.ID, err)
		}
		if g.ID() != v.ID || g.Title() != v.Title {
			t.Errorf("Create(%q) = %s %q", v.ID, g.ID(), g.Title())
		}

		_, isDelta := g.(registry.DeltaRenderer)
		if isDelta != v.Incremental {
			t.Errorf("%s: DeltaRenderer = %v, want %v", v.ID, isDelta, v.Incremental)
		}
	}

	if !registry.Exists(DefaultVariant) {
		t.Errorf("default variant %q not registered", DefaultVariant)
	}
}
