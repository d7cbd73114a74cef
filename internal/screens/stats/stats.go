package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/concursados/internal/router"
	"github.com/abhisek/concursados/internal/screen"
	"github.com/abhisek/concursados/internal/store"
	"github.com/abhisek/concursados/internal/ui/components"
	"github.com/abhisek/concursados/internal/ui/layout"
	"github.com/abhisek/concursados/internal/ui/theme"
)

var weekdayLabels = []string{"Seg", "Ter", "Qua", "Qui", "Sex", "Sáb", "Dom"}

// StatsScreen shows the candidate's accumulated progress: counters, accuracy
// and the weekly study-hours chart.
type StatsScreen struct {
	store *store.Store
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(st *store.Store) *StatsScreen {
	return &StatsScreen{store: st}
}

func (s *StatsScreen) Title() string {
	return "Estatísticas"
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	stats := s.store.Stats()

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("RELATÓRIO DE DESEMPENHO")

	accuracy := 0.0
	if stats.QuestionsAnswered > 0 {
		accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered) * 100
	}

	cardWidth := 20
	row1 := components.StatRow(
		components.StatCard{Label: "XP Total", Value: fmt.Sprintf("%d", stats.XP), Icon: "✦", Width: cardWidth},
		components.StatCard{Label: "Sequência", Value: fmt.Sprintf("%d dias", stats.Streak), Icon: "★", Width: cardWidth},
		components.StatCard{Label: "Precisão", Value: fmt.Sprintf("%.0f%%", accuracy), Icon: "◎", Width: cardWidth},
	)
	row2 := components.StatRow(
		components.StatCard{Label: "Questões", Value: fmt.Sprintf("%d", stats.QuestionsAnswered), Icon: "▣", Width: cardWidth},
		components.StatCard{Label: "Redações", Value: fmt.Sprintf("%d", stats.EssaysSubmitted), Icon: "✎", Width: cardWidth},
		components.StatCard{Label: "Downloads", Value: fmt.Sprintf("%d", stats.PDFsDownloaded), Icon: "⬇", Width: cardWidth},
	)

	chartTitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("HORAS DE ESTUDO — SEMANA ATUAL")

	chart := components.BarChart{
		Labels: weekdayLabels,
		Values: stats.StudyHours[:],
		Width:  46,
		Unit:   "h",
	}

	sections := []string{
		title,
		"",
		row1,
		row2,
		"",
		chartTitle,
		"",
		chart.View(),
	}

	idle := true
	for _, h := range stats.StudyHours {
		if h > 0 {
			idle = false
			break
		}
	}
	if idle {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).
				Render("Nenhuma hora registrada esta semana. Hora de treinar, soldado."))
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
