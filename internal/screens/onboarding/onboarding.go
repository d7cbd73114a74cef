package onboarding

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

// step is the current wizard step.
type step int

const (
	stepName step = iota
	stepExam
	stepHours
	stepLevel
	stepConfirm
)

const (
	minDailyHours = 1
	maxDailyHours = 12
)

// OnboardingScreen walks a first-time candidate through recruitment: name,
// target exam, daily study hours, preparation level and a final confirmation
// summary. It replaces itself with the dashboard once the profile is saved.
type OnboardingScreen struct {
	store            *store.Store
	dashboardFactory func() screen.Screen

	step      step
	nameInput components.TextInput
	hourInput components.TextInput
	selected  int
	errMsg    string

	name  string
	exam  string
	hours int
	level store.Level
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen.
func New(st *store.Store, dashboardFactory func() screen.Screen) *OnboardingScreen {
	return &OnboardingScreen{
		store:            st,
		dashboardFactory: dashboardFactory,
		nameInput:        components.NewTextInput("Nome de guerra", false, 30),
		hourInput:        components.NewTextInput("Horas por dia", true, 2),
	}
}

func (o *OnboardingScreen) Title() string {
	return "Alistamento"
}

func (o *OnboardingScreen) Init() tea.Cmd {
	return o.nameInput.Init()
}

func (o *OnboardingScreen) KeyHints() []layout.KeyHint {
	switch o.step {
	case stepName, stepHours:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirmar"},
		}
	case stepConfirm:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Alistar"},
			{Key: "Esc", Description: "Voltar"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navegar"},
			{Key: "Enter", Description: "Confirmar"},
		}
	}
}

func (o *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o.forwardToInput(msg)
	}

	switch o.step {
	case stepName:
		if kmsg.String() == "enter" {
			name := strings.TrimSpace(o.nameInput.Value())
			if name == "" {
				o.errMsg = "Informe seu nome, recruta."
				return o, nil
			}
			o.name = name
			o.errMsg = ""
			o.step = stepExam
			o.selected = 0
			return o, nil
		}
		return o.forwardToInput(msg)

	case stepExam:
		exams := store.TargetExams()
		switch kmsg.String() {
		case "up", "k":
			if o.selected > 0 {
				o.selected--
			}
		case "down", "j":
			if o.selected < len(exams)-1 {
				o.selected++
			}
		case "enter":
			o.exam = exams[o.selected]
			o.step = stepHours
			return o, o.hourInput.Init()
		}
		return o, nil

	case stepHours:
		if kmsg.String() == "enter" {
			h, err := o.hourInput.NumericValue()
			if err != nil || h < minDailyHours || h > maxDailyHours {
				o.errMsg = fmt.Sprintf("Entre %d e %d horas.", minDailyHours, maxDailyHours)
				return o, nil
			}
			o.hours = h
			o.errMsg = ""
			o.step = stepLevel
			o.selected = 0
			return o, nil
		}
		return o.forwardToInput(msg)

	case stepLevel:
		levels := store.Levels()
		switch kmsg.String() {
		case "up", "k":
			if o.selected > 0 {
				o.selected--
			}
		case "down", "j":
			if o.selected < len(levels)-1 {
				o.selected++
			}
		case "enter":
			o.level = levels[o.selected]
			o.step = stepConfirm
		}
		return o, nil

	case stepConfirm:
		switch kmsg.String() {
		case "enter":
			return o.enlist()
		case "esc":
			o.step = stepLevel
		}
		return o, nil
	}

	return o, nil
}

// enlist persists the profile and moves to the dashboard.
func (o *OnboardingScreen) enlist() (screen.Screen, tea.Cmd) {
	err := o.store.SaveProfile(store.UserProfile{
		Name:       o.name,
		TargetExam: o.exam,
		DailyHours: o.hours,
		Level:      o.level,
	})
	if err != nil {
		o.errMsg = "Falha ao salvar perfil: " + err.Error()
		return o, nil
	}

	dashboard := o.dashboardFactory()
	return o, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: dashboard}
	}
}

func (o *OnboardingScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch o.step {
	case stepName:
		o.nameInput, cmd = o.nameInput.Update(msg)
	case stepHours:
		o.hourInput, cmd = o.hourInput.Update(msg)
	}
	return o, cmd
}

func (o *OnboardingScreen) View(width, height int) string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ALISTAMENTO")

	progress := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Etapa %d de %d", int(o.step)+1, int(stepConfirm)+1))

	var body string
	switch o.step {
	case stepName:
		body = o.renderPrompt("Qual é o seu nome de guerra?", o.nameInput.View())
	case stepExam:
		body = o.renderChoices("Qual concurso é o seu alvo?", store.TargetExams())
	case stepHours:
		body = o.renderPrompt("Quantas horas por dia você pode treinar?", o.hourInput.View())
	case stepLevel:
		levels := store.Levels()
		labels := make([]string, len(levels))
		for i, l := range levels {
			labels[i] = string(l)
		}
		body = o.renderChoices("Qual é o seu nível de preparação?", labels)
	case stepConfirm:
		body = o.renderSummary()
	}

	sections := []string{title, progress, "", body}

	if o.errMsg != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Error).Render(o.errMsg))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (o *OnboardingScreen) renderPrompt(question, input string) string {
	q := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question)
	return q + "\n\n" + input
}

func (o *OnboardingScreen) renderSummary() string {
	q := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render("Confirme seu alistamento:")
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	lines := []string{
		label.Render("Nome:  ") + value.Render(o.name),
		label.Render("Alvo:  ") + value.Render(o.exam),
		label.Render("Horas: ") + value.Render(fmt.Sprintf("%d por dia", o.hours)),
		label.Render("Nível: ") + value.Render(string(o.level)),
	}
	return q + "\n\n" + strings.Join(lines, "\n")
}

func (o *OnboardingScreen) renderChoices(question string, options []string) string {
	q := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question)
	s := q + "\n\n"
	for i, opt := range options {
		if i == o.selected {
			s += theme.Selected.Render("▸ "+opt) + "\n"
		} else {
			s += theme.Unselected.Render("  "+opt) + "\n"
		}
	}
	return strings.TrimRight(s, "\n")
}
