package plan

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
	"github.com/abhisek/concursados/internal/ui/layout"
	"github.com/abhisek/concursados/internal/ui/theme"
)

const genTimeout = 60 * time.Second

type planReadyMsg struct {
	Seq      int
	Plan     *content.StudyPlan
	Fallback bool
	Err      error
}

// PlanScreen generates and displays the daily study plan. Selecting a task
// starts a focused study session for its subject and topic.
type PlanScreen struct {
	store        *store.Store
	service      *content.Service
	startSession func(subject, topic string) screen.Screen

	seq      int
	loading  bool
	fallback bool
	plan     *content.StudyPlan
	selected int
	errMsg   string
}

var _ screen.Screen = (*PlanScreen)(nil)
var _ screen.KeyHintProvider = (*PlanScreen)(nil)

// New creates a PlanScreen. startSession builds the session screen for the
// chosen task.
func New(st *store.Store, svc *content.Service, startSession func(subject, topic string) screen.Screen) *PlanScreen {
	return &PlanScreen{
		store:        st,
		service:      svc,
		startSession: startSession,
		loading:      true,
	}
}

func (p *PlanScreen) Title() string {
	return "Plano de Estudos"
}

func (p *PlanScreen) Init() tea.Cmd {
	return p.generate()
}

func (p *PlanScreen) KeyHints() []layout.KeyHint {
	if p.loading {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "Enter", Description: "Iniciar sessão"},
		{Key: "r", Description: "Gerar novo plano"},
		{Key: "Esc", Description: "Voltar"},
	}
}

// generate requests a fresh plan. Responses from superseded requests are
// dropped by sequence number.
func (p *PlanScreen) generate() tea.Cmd {
	p.seq++
	seq := p.seq
	p.loading = true
	p.fallback = false

	profile := p.store.Profile()
	exam, hours, level := "ENEM", 2, string(store.LevelBeginner)
	if profile != nil {
		exam, hours, level = profile.TargetExam, profile.DailyHours, string(profile.Level)
	}

	svc := p.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
		defer cancel()

		plan, err := svc.GeneratePlan(ctx, exam, hours, level)
		if err != nil {
			return planReadyMsg{Seq: seq, Plan: content.FallbackPlan(), Fallback: true, Err: err}
		}
		return planReadyMsg{Seq: seq, Plan: plan}
	}
}

func (p *PlanScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		if msg.Seq != p.seq {
			return p, nil
		}
		p.loading = false
		p.plan = msg.Plan
		p.fallback = msg.Fallback
		p.selected = 0
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
		} else {
			p.errMsg = ""
		}
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

func (p *PlanScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if p.loading || p.plan == nil {
		return p, nil
	}

	switch key {
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(p.plan.Tasks)-1 {
			p.selected++
		}
	case "r":
		return p, p.generate()
	case "enter":
		if p.selected < len(p.plan.Tasks) {
			task := p.plan.Tasks[p.selected]
			session := p.startSession(task.Subject, task.Topic)
			return p, func() tea.Msg {
				return router.PushScreenMsg{Screen: session}
			}
		}
	}

	return p, nil
}

func taskTypeLabel(t content.TaskType) string {
	switch t {
	case content.TaskTheory:
		return "Teoria"
	case content.TaskQuestions:
		return "Questões"
	case content.TaskRevision:
		return "Revisão"
	}
	return string(t)
}

func (p *PlanScreen) View(width, height int) string {
	if p.loading {
		return renderLoading(width, height, "Gerando plano de batalha...")
	}

	var sections []string

	day := "Hoje"
	if p.plan.Day != "" {
		day = p.plan.Day
	}
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("PLANO DE ESTUDOS — " + day)
	sections = append(sections, title)

	if p.fallback {
		warn := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("⚠ Sem contato com o QG — plano de contingência ativado")
		sections = append(sections, warn)
	}
	sections = append(sections, "")

	for i, task := range p.plan.Tasks {
		line := fmt.Sprintf("%s · %s  (%d min · %s)",
			task.Subject, task.Topic, task.DurationMinutes, taskTypeLabel(task.Type))

		if i == p.selected {
			sections = append(sections, theme.Selected.Render("▸ "+line))
		} else {
			sections = append(sections, theme.Unselected.Render("  "+line))
		}
	}

	sections = append(sections, "")
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Enter inicia uma sessão de estudo focada na tarefa")
	sections = append(sections, hint)

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderLoading(width, height int, text string) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(text)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}
