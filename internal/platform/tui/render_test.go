package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func testScreen() *core.Screen {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "Hi")
	c := core.ScreenCanvas{Screen: s, Grid: core.NewGrid(40, 20, 20), OriginX: 2, OriginY: 1}
	c.Fill(core.DefaultPalette().Background)
	c.DrawCell(core.Cell{X: 0, Y: 0}, core.DefaultPalette().Snake, core.DefaultPalette().Border)
	return s
}

func TestRendererPlainText(t *testing.T) {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.Ascii)

	s := testScreen()
	got := NewRenderer(lg, core.DefaultPalette().Text).Render(s)
	if got != s.String() {
		t.Errorf("Render() = %q, want %q", got, s.String())
	}
}

func TestRendererColors(t *testing.T) {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.TrueColor)

	got := NewRenderer(lg, core.DefaultPalette().Text).Render(testScreen())
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", got)
	}
	if !strings.Contains(got, "[]") {
		t.Errorf("snake cell missing from %q", got)
	}
	if lines := strings.Count(got, "\n"); lines != 1 {
		t.Errorf("got %d line breaks, want 1", lines)
	}
}

func TestRendererHelpUsesProfile(t *testing.T) {
	plain := lipgloss.NewRenderer(io.Discard)
	plain.SetColorProfile(termenv.Ascii)
	if got := NewRenderer(plain, core.DefaultPalette().Text).Help("q quit"); got != "q quit" {
		t.Errorf("Help() = %q, want plain text for an ascii session", got)
	}

	color := lipgloss.NewRenderer(io.Discard)
	color.SetColorProfile(termenv.ANSI256)
	if got := NewRenderer(color, core.DefaultPalette().Text).Help("q quit"); !strings.Contains(got, "\x1b[") {
		t.Errorf("Help() = %q, want ANSI sequences for a 256-color session", got)
	}
}
