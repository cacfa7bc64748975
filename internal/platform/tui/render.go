package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styleKey identifies the look of a run of cells.
type styleKey struct {
	fg, bg  core.Color
	colored bool
}

// Renderer converts Screen buffers into styled text. Styles are cached per
// color pair.
type Renderer struct {
	lg     *lipgloss.Renderer
	plain  lipgloss.Style
	help   lipgloss.Style
	styles map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer bound to lg. Unstyled cells, such as the
// HUD, are drawn in the text color. A nil lg uses lipgloss's default renderer.
func NewRenderer(lg *lipgloss.Renderer, text core.Color) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		plain:  lg.NewStyle().Foreground(lipgloss.Color(text.Hex())),
		help:   lg.NewStyle().Foreground(lipgloss.Color("241")),
		styles: make(map[styleKey]lipgloss.Style),
	}
}

func (r *Renderer) style(k styleKey) lipgloss.Style {
	if !k.colored {
		return r.plain
	}
	st, ok := r.styles[k]
	if !ok {
		st = r.lg.NewStyle().
			Foreground(lipgloss.Color(k.fg.Hex())).
			Background(lipgloss.Color(k.bg.Hex()))
		r.styles[k] = st
	}
	return st
}

// Help styles the help footer with the renderer's color profile.
func (r *Renderer) Help(s string) string {
	return r.help.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{fg: cell.Fg, bg: cell.Bg, colored: cell.Colored}

			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{fg: cell.Fg, bg: cell.Bg, colored: cell.Colored}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the default lipgloss renderer and palette.
func RenderScreen(s *core.Screen) string {
	return NewRenderer(nil, core.DefaultPalette().Text).Render(s)
}
