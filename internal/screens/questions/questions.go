package questions

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

const genTimeout = 90 * time.Second

// phase is the simulado lifecycle.
type phase int

const (
	phaseTopic phase = iota
	phaseLoading
	phaseAnswering
	phaseFeedback
	phaseSummary
	phaseFailed
)

type batchReadyMsg struct {
	Seq       int
	Questions []content.Question
	Err       error
}

// QuestionsScreen runs a simulado: a generated batch of questions answered
// one at a time, with per-question feedback and a final score.
type QuestionsScreen struct {
	store   *store.Store
	service *content.Service

	phase      phase
	seq        int
	topicInput components.TextInput
	topic      string
	questions  []content.Question
	current    int
	choice     components.MultiChoice
	correct    int
	errMsg     string
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)
var _ screen.InputCapturer = (*QuestionsScreen)(nil)

// New creates a QuestionsScreen.
func New(st *store.Store, svc *content.Service) *QuestionsScreen {
	return &QuestionsScreen{
		store:      st,
		service:    svc,
		topicInput: components.NewTextInput("Tópico (vazio = Geral)", false, 40),
	}
}

func (q *QuestionsScreen) Title() string {
	return "Simulado"
}

func (q *QuestionsScreen) Init() tea.Cmd {
	return q.topicInput.Init()
}

func (q *QuestionsScreen) CapturingInput() bool {
	return q.phase == phaseTopic
}

func (q *QuestionsScreen) KeyHints() []layout.KeyHint {
	switch q.phase {
	case phaseTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Gerar questões"},
			{Key: "Esc", Description: "Voltar"},
		}
	case phaseAnswering:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Navegar"},
			{Key: "Enter", Description: "Responder"},
			{Key: "Esc", Description: "Abandonar"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "qualquer tecla", Description: "Próxima"},
		}
	case phaseSummary, phaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Novo simulado"},
			{Key: "Esc", Description: "Voltar"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
		}
	}
}

// generate requests a question batch for the chosen topic.
func (q *QuestionsScreen) generate() tea.Cmd {
	q.seq++
	seq := q.seq
	q.phase = phaseLoading

	exam := "ENEM"
	if p := q.store.Profile(); p != nil {
		exam = p.TargetExam
	}

	svc, topic := q.service, q.topic
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
		defer cancel()

		batch, err := svc.GenerateQuestions(ctx, exam, topic)
		return batchReadyMsg{Seq: seq, Questions: batch, Err: err}
	}
}

func (q *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		if msg.Seq != q.seq {
			return q, nil
		}
		if msg.Err != nil {
			q.phase = phaseFailed
			q.errMsg = msg.Err.Error()
			return q, nil
		}
		q.questions = msg.Questions
		q.current = 0
		q.correct = 0
		q.phase = phaseAnswering
		q.loadCurrent()
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	if q.phase == phaseTopic {
		var cmd tea.Cmd
		q.topicInput, cmd = q.topicInput.Update(msg)
		return q, cmd
	}
	return q, nil
}

func (q *QuestionsScreen) loadCurrent() {
	question := q.questions[q.current]
	q.choice = components.NewMultiChoice(question.Stem, question.Options, question.CorrectIndex)
}

func (q *QuestionsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch q.phase {
	case phaseTopic:
		if key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if key == "enter" {
			q.topic = strings.TrimSpace(q.topicInput.Value())
			return q, q.generate()
		}
		var cmd tea.Cmd
		q.topicInput, cmd = q.topicInput.Update(msg)
		return q, cmd

	case phaseLoading:
		if key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case phaseAnswering:
		if key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		q.choice, cmd = q.choice.Update(msg)
		if q.choice.Submitted {
			if q.choice.IsCorrect() {
				q.correct++
			}
			_, _ = q.store.RecordAnswer(q.choice.IsCorrect())
			q.phase = phaseFeedback
		}
		return q, cmd

	case phaseFeedback:
		q.current++
		if q.current >= len(q.questions) {
			q.phase = phaseSummary
		} else {
			q.loadCurrent()
			q.phase = phaseAnswering
		}
		return q, nil

	case phaseSummary, phaseFailed:
		if key == "esc" {
			return q, func() tea.Msg { return router.PopScreenMsg{} }
		}
		// Back to the topic form for another round.
		q.topicInput = components.NewTextInput("Tópico (vazio = Geral)", false, 40)
		q.questions = nil
		q.errMsg = ""
		q.phase = phaseTopic
		return q, q.topicInput.Init()
	}

	return q, nil
}

func (q *QuestionsScreen) View(width, height int) string {
	switch q.phase {
	case phaseTopic:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Sobre qual tópico quer treinar?")
		body := prompt + "\n\n" + q.topicInput.View()
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)

	case phaseLoading:
		msg := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Montando o simulado (10 questões, 2 pegadinhas)...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)

	case phaseFailed:
		msg := lipgloss.NewStyle().Foreground(theme.Error).
			Render("Falha ao gerar questões.\n\n" + q.errMsg)
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)

	case phaseSummary:
		return q.renderSummary(width, height)
	}

	return q.renderQuestion(width, height)
}

func (q *QuestionsScreen) renderQuestion(width, height int) string {
	question := q.questions[q.current]

	progress := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Questão %d de %d", q.current+1, len(q.questions)))

	var sections []string
	sections = append(sections, progress, "")

	if q.phase == phaseFeedback && question.Difficulty == content.DifficultyPegadinha {
		sections = append(sections, theme.Pegadinha.Render("⚠ PEGADINHA"), "")
	}

	sections = append(sections, q.choice.View())

	if q.phase == phaseFeedback {
		sections = append(sections, "")
		if q.choice.IsCorrect() {
			sections = append(sections, theme.Correct.Render(
				fmt.Sprintf("Correto! +%d XP", store.XPCorrectAnswer)))
		} else {
			sections = append(sections, theme.Incorrect.Render("Errado."))
		}
		expl := lipgloss.NewStyle().Foreground(theme.TextDim).Width(width - 20).
			Render(question.Explanation)
		sections = append(sections, expl)
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (q *QuestionsScreen) renderSummary(width, height int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("RELATÓRIO DO SIMULADO")

	score := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d / %d acertos", q.correct, len(q.questions)))

	xp := lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("+%d XP", q.correct*store.XPCorrectAnswer))

	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
		Render("pressione qualquer tecla para voltar")

	body := strings.Join([]string{title, "", score, xp, "", hint}, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
