package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/concursados/internal/content"
	"github.com/abhisek/concursados/internal/router"
	"github.com/abhisek/concursados/internal/screen"
	"github.com/abhisek/concursados/internal/store"
	"github.com/abhisek/concursados/internal/ui/components"
	"github.com/abhisek/concursados/internal/ui/layout"
	"github.com/abhisek/concursados/internal/ui/theme"
)

const genTimeout = 60 * time.Second

type challengeMsg struct {
	Seq       int
	Challenge *content.LogicChallenge
	Fallback  bool
}

// LogicScreen presents one generated logical-reasoning puzzle at a time.
type LogicScreen struct {
	store   *store.Store
	service *content.Service

	seq       int
	loading   bool
	fallback  bool
	challenge *content.LogicChallenge
	choice    components.MultiChoice
	answered  bool
}

var _ screen.Screen = (*LogicScreen)(nil)
var _ screen.KeyHintProvider = (*LogicScreen)(nil)

// New creates a LogicScreen.
func New(st *store.Store, svc *content.Service) *LogicScreen {
	return &LogicScreen{
		store:   st,
		service: svc,
		loading: true,
	}
}

func (l *LogicScreen) Title() string {
	return "Desafio de Lógica"
}

func (l *LogicScreen) Init() tea.Cmd {
	return l.generate()
}

func (l *LogicScreen) KeyHints() []layout.KeyHint {
	if l.answered {
		return []layout.KeyHint{
			{Key: "n", Description: "Novo desafio"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Responder"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (l *LogicScreen) generate() tea.Cmd {
	l.seq++
	seq := l.seq
	l.loading = true
	l.answered = false

	svc := l.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
		defer cancel()

		ch, err := svc.GenerateLogicChallenge(ctx)
		if err != nil {
			return challengeMsg{Seq: seq, Challenge: content.FallbackChallenge(), Fallback: true}
		}
		return challengeMsg{Seq: seq, Challenge: ch}
	}
}

func (l *LogicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case challengeMsg:
		if msg.Seq != l.seq {
			return l, nil
		}
		l.loading = false
		l.challenge = msg.Challenge
		l.fallback = msg.Fallback
		l.choice = components.NewMultiChoice(msg.Challenge.Question, msg.Challenge.Options, msg.Challenge.CorrectIndex)
		return l, nil

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	return l, nil
}

func (l *LogicScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if l.loading {
		return l, nil
	}

	if l.answered {
		if key == "n" {
			return l, l.generate()
		}
		return l, nil
	}

	var cmd tea.Cmd
	l.choice, cmd = l.choice.Update(msg)
	if l.choice.Submitted {
		l.answered = true
		// The offline fallback puzzle does not score.
		if !l.fallback {
			_, _ = l.store.RecordAnswer(l.choice.IsCorrect())
		}
	}
	return l, cmd
}

func (l *LogicScreen) View(width, height int) string {
	if l.loading {
		msg := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Gerando desafio de lógica...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var sections []string

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(l.challenge.Title)
	sections = append(sections, title)

	if l.fallback {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).
			Render("⚠ Sem conexão com o QG"))
	}
	sections = append(sections, "")

	scenario := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 24).
		Render(l.challenge.Scenario)
	sections = append(sections, scenario, "")

	sections = append(sections, l.choice.View())

	if l.answered {
		sections = append(sections, "")
		if l.choice.IsCorrect() {
			sections = append(sections, theme.Correct.Render(
				fmt.Sprintf("Correto! +%d XP", store.XPCorrectAnswer)))
		} else {
			sections = append(sections, theme.Incorrect.Render("Errado."))
		}
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Width(width-24).
			Render(l.challenge.Explanation))
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
