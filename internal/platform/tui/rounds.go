package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// roundsReporter is implemented by games that keep a history of finished rounds.
type roundsReporter interface {
	Rounds() []snake.Round
}

// roundsView lists the rounds finished this session in a table.
// Nothing here is persisted; the table is rebuilt from the game each time
// it is opened.
type roundsView struct {
	table  table.Model
	rounds int
	width  int
	height int
}

func newRoundsView(width, height int) roundsView {
	v := roundsView{width: width, height: height}
	v.table = v.createTable()
	return v
}

// createTable creates a new table with appropriate columns.
func (v *roundsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 7},
		{Title: "Length", Width: 8},
		{Title: "Apples", Width: 8},
		{Title: "Moves", Width: 8},
		{Title: "Ended by", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(v.height-8, 3)), // Leave room for title, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// SetRounds replaces the table rows, newest round first.
func (v *roundsView) SetRounds(rounds []snake.Round) {
	rows := make([]table.Row, 0, len(rounds))
	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", r.Number),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Apples),
			fmt.Sprintf("%d", r.Ticks),
			r.EndedBy,
		})
	}
	v.rounds = len(rows)
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// SetSize adapts the table to a new terminal size.
func (v *roundsView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.table.SetHeight(max(height-8, 3))
}

// Update passes scrolling keys to the table.
func (v roundsView) Update(msg tea.Msg) (roundsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

// View renders the table or empty message under a title.
func (v roundsView) View(title string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(title, v.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if v.rounds == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(boxStyle.Render(emptyStyle.Render("No rounds finished yet.")))
		return b.String()
	}

	b.WriteString(boxStyle.Render(v.table.View()))
	return b.String()
}
