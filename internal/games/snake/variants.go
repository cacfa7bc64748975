package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Registered variants. They differ in starting length and redraw strategy
// only; movement, collision and apple rules are shared.
var (
	Classic = Variant{
		ID:            "classic",
		Title:         "Snake",
		InitialLength: 1,
	}
	Chain = Variant{
		ID:            "chain",
		Title:         "Snake (Chain)",
		InitialLength: 3,
	}
	Incremental = Variant{
		ID:            "incremental",
		Title:         "Snake (Incremental)",
		InitialLength: 1,
		Incremental:   true,
	}
)

// DefaultVariant is played when none is named.
const DefaultVariant = "classic"

// Variants lists every registered variant.
func Variants() []Variant {
	return []Variant{Classic, Chain, Incremental}
}

func init() {
	for _, v := range Variants() {
		registry.Register(v.ID, func() registry.Game {
			if v.Incremental {
				return &incrementalGame{New(v)}
			}
			return New(v)
		})
	}
}

// incrementalGame exposes RenderDelta so the platform redraws only changed cells.
// Plain variants hide it and are always fully redrawn.
type incrementalGame struct {
	*Game
}

// RenderDelta implements registry.DeltaRenderer.
func (g *incrementalGame) RenderDelta(dst *core.Screen) bool {
	return g.Game.renderDelta(dst)
}

var _ registry.DeltaRenderer = (*incrementalGame)(nil)
