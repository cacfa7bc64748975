package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string {
	return g.id
}

func (g stubGame) Title() string {
	return strings.ToUpper(g.id)
}

func (stubGame) Reset(core.RuntimeConfig) {}

func (stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (stubGame) Render(*core.Screen) {}

func (stubGame) Draw(core.Canvas) {}

func (stubGame) Resize(int, int) {}

func (stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegistry(t *testing.T) {
	for _, id := range []string{"zeta", "alpha"} {
		Register(id, func() Game { return stubGame{id: id} })
	}

	list := List()
	if len(list) < 2 {
		t.Fatalf("List() = %v", list)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}

	g, err := Create("alpha")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "alpha" || g.Title() != "ALPHA" {
		t.Errorf("Create(alpha) = %s %q", g.ID(), g.Title())
	}
	if !Exists("zeta") {
		t.Error("zeta should exist")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
	if Exists("missing") {
		t.Error("missing should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register("dup", func() Game { return stubGame{id: "dup"} })
}
