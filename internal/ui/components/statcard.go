package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/concursados/internal/ui/theme"
)

// StatCard renders a labelled value in a bordered card, used on the
// dashboard grid.
type StatCard struct {
	Label string
	Value string
	Icon  string
	Width int
}

// View renders the card.
func (c StatCard) View() string {
	value := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(c.Icon + " " + c.Value)

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(c.Label)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(c.Width-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(value + "\n" + label)
}

// StatRow lays out cards horizontally.
func StatRow(cards ...StatCard) string {
	views := make([]string, len(cards))
	for i, c := range cards {
		views[i] = c.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
