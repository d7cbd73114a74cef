package dashboard

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

// Factories produces the screens reachable from the dashboard menu, in menu
// order. Each entry is built lazily when the candidate selects it.
type Factories struct {
	Plan        func() screen.Screen
	Questions   func() screen.Screen
	Essay       func() screen.Screen
	Stats       func() screen.Screen
	PDFs        func() screen.Screen
	Tfm         func() screen.Screen
	Logic       func() screen.Screen
	Informatics func() screen.Screen
}

// DashboardScreen is the main hub: progress summary plus the mission menu.
type DashboardScreen struct {
	store *store.Store
	menu  components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard wired to the given screen factories.
func New(st *store.Store, f Factories) *DashboardScreen {
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := factory()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}
	}

	items := []components.MenuItem{
		{Label: "Plano de Estudos do Dia", Action: push(f.Plan)},
		{Label: "Simulado de Questões", Action: push(f.Questions)},
		{Label: "Redação", Action: push(f.Essay)},
		{Label: "Estatísticas", Action: push(f.Stats)},
		{Label: "Provas Anteriores (PDF)", Action: push(f.PDFs)},
		{Label: "TFM - Treino Físico Militar", Action: push(f.Tfm)},
		{Label: "Desafio de Lógica", Action: push(f.Logic)},
		{Label: "Informática Diária", Action: push(f.Informatics)},
	}

	return &DashboardScreen{
		store: st,
		menu:  components.NewMenu(items),
	}
}

func (d *DashboardScreen) Title() string {
	return "QG"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Selecionar"},
		{Key: "1-9", Description: "Atalho"},
		{Key: "Ctrl+C", Description: "Sair"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Digit shortcuts are handled globally by the app model.
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	profile := d.store.Profile()
	stats := d.store.Stats()

	var greeting string
	if profile != nil {
		greeting = fmt.Sprintf("Soldado %s — Alvo: %s", profile.Name, profile.TargetExam)
	}

	header := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(greeting)

	cardWidth := 18
	cards := components.StatRow(
		components.StatCard{Label: "XP", Value: fmt.Sprintf("%d", stats.XP), Icon: "✦", Width: cardWidth},
		components.StatCard{Label: "Sequência", Value: fmt.Sprintf("%d dias", stats.Streak), Icon: "★", Width: cardWidth},
		components.StatCard{Label: "Questões", Value: fmt.Sprintf("%d", stats.QuestionsAnswered), Icon: "▣", Width: cardWidth},
		components.StatCard{Label: "Acertos", Value: fmt.Sprintf("%d", stats.CorrectAnswers), Icon: "✓", Width: cardWidth},
	)

	menuTitle := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("MISSÕES DISPONÍVEIS")

	sections := []string{
		header,
		"",
		cards,
		"",
		menuTitle,
		"",
		d.menu.View(),
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
