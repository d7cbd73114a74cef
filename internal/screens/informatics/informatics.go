package informatics

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

type dailyMsg struct {
	Seq   int
	Daily *content.InformaticsDaily
	Err   error
}

// InformaticsScreen shows the daily informatics tip (with keyboard shortcut)
// followed by a one-question quiz on it.
type InformaticsScreen struct {
	store   *store.Store
	service *content.Service

	seq      int
	loading  bool
	errMsg   string
	daily    *content.InformaticsDaily
	choice   components.MultiChoice
	quizOpen bool
	answered bool
}

var _ screen.Screen = (*InformaticsScreen)(nil)
var _ screen.KeyHintProvider = (*InformaticsScreen)(nil)

// New creates an InformaticsScreen.
func New(st *store.Store, svc *content.Service) *InformaticsScreen {
	return &InformaticsScreen{
		store:   st,
		service: svc,
		loading: true,
	}
}

func (i *InformaticsScreen) Title() string {
	return "Informática"
}

func (i *InformaticsScreen) Init() tea.Cmd {
	return i.generate()
}

func (i *InformaticsScreen) KeyHints() []layout.KeyHint {
	switch {
	case i.loading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
		}
	case i.errMsg != "":
		return []layout.KeyHint{
			{Key: "r", Description: "Tentar de novo"},
			{Key: "Esc", Description: "Voltar"},
		}
	case !i.quizOpen:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Fazer o quiz"},
			{Key: "r", Description: "Nova dica"},
			{Key: "Esc", Description: "Voltar"},
		}
	case i.answered:
		return []layout.KeyHint{
			{Key: "r", Description: "Nova dica"},
			{Key: "Esc", Description: "Voltar"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navegar"},
			{Key: "Enter", Description: "Responder"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
}

func (i *InformaticsScreen) generate() tea.Cmd {
	i.seq++
	seq := i.seq
	i.loading = true

	svc := i.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
		defer cancel()

		daily, err := svc.GenerateInformaticsDaily(ctx)
		return dailyMsg{Seq: seq, Daily: daily, Err: err}
	}
}

func (i *InformaticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dailyMsg:
		if msg.Seq != i.seq {
			return i, nil
		}
		i.loading = false
		if msg.Err != nil {
			i.errMsg = msg.Err.Error()
			return i, nil
		}
		i.daily = msg.Daily
		q := msg.Daily.QuizQuestion
		i.choice = components.NewMultiChoice(q.Stem, q.Options, q.CorrectIndex)
		return i, nil

	case tea.KeyMsg:
		return i.handleKey(msg)
	}

	return i, nil
}

func (i *InformaticsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return i, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if key == "r" && !i.loading {
		// A new request supersedes whatever is in flight.
		i.errMsg = ""
		i.daily = nil
		i.quizOpen = false
		i.answered = false
		return i, i.generate()
	}
	if i.loading || i.errMsg != "" {
		return i, nil
	}

	if !i.quizOpen {
		if key == "enter" {
			i.quizOpen = true
		}
		return i, nil
	}

	if i.answered {
		return i, nil
	}

	var cmd tea.Cmd
	i.choice, cmd = i.choice.Update(msg)
	if i.choice.Submitted {
		i.answered = true
		_, _ = i.store.RecordAnswer(i.choice.IsCorrect())
	}
	return i, cmd
}

func (i *InformaticsScreen) View(width, height int) string {
	if i.loading {
		msg := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Preparando a dica de informática do dia...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}
	if i.errMsg != "" {
		msg := lipgloss.NewStyle().Foreground(theme.Error).
			Render("Falha ao gerar a dica do dia.\n\n" + i.errMsg)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var sections []string
	wrap := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 24)

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("INFORMÁTICA — " + i.daily.Topic)
	sections = append(sections, title, "")
	sections = append(sections, wrap.Render(i.daily.Tip))

	if i.daily.Shortcut != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
				Render("Atalho: "+i.daily.Shortcut))
	}

	if !i.quizOpen {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("Enter para responder o quiz do dia"))
	} else {
		sections = append(sections, "", i.choice.View())
		if i.answered {
			if i.choice.IsCorrect() {
				sections = append(sections, theme.Correct.Render(
					fmt.Sprintf("Correto! +%d XP", store.XPCorrectAnswer)))
			} else {
				sections = append(sections, theme.Incorrect.Render("Errado."))
			}
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.TextDim).Width(width-24).
				Render(i.daily.QuizQuestion.Explanation))
		}
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
