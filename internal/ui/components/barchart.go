package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/concursados/internal/ui/theme"
)

// BarChart renders labelled horizontal bars scaled to the largest value.
type BarChart struct {
	Labels []string
	Values []float64
	Width  int
	Unit   string
}

// View renders the chart, one bar per label.
func (b BarChart) View() string {
	max := 0.0
	for _, v := range b.Values {
		if v > max {
			max = v
		}
	}

	barWidth := b.Width - 14
	if barWidth < 8 {
		barWidth = 8
	}

	var s strings.Builder
	for i, label := range b.Labels {
		v := 0.0
		if i < len(b.Values) {
			v = b.Values[i]
		}

		filled := 0
		if max > 0 {
			filled = int(v / max * float64(barWidth))
		}
		if filled > barWidth {
			filled = barWidth
		}

		bar := lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(theme.Border).
				Render(strings.Repeat("░", barWidth-filled))

		s.WriteString(fmt.Sprintf("%-4s %s %s\n",
			label,
			bar,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("%.1f%s", v, b.Unit)),
		))
	}
	return strings.TrimRight(s.String(), "\n")
}
