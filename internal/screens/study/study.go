package study

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

const (
	sessionDuration = 25 * time.Minute
	tutorTimeout    = 60 * time.Second
)

type timerTickMsg time.Time

type tutorAnswerMsg struct {
	Seq    int
	Answer string
}

// StudyScreen runs a focused study session: a countdown timer for one
// subject and topic, with an always-available tutor for quick questions.
// Elapsed time is credited to the weekly study hours when the session ends.
type StudyScreen struct {
	store   *store.Store
	service *content.Service
	subject string
	topic   string

	remaining time.Duration
	paused    bool
	done      bool

	asking     bool
	tutorSeq   int
	tutorBusy  bool
	tutorInput components.TextInput
	transcript []string

	confirmQuit bool
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen for the given task.
func New(st *store.Store, svc *content.Service, subject, topic string) *StudyScreen {
	return &StudyScreen{
		store:      st,
		service:    svc,
		subject:    subject,
		topic:      topic,
		remaining:  sessionDuration,
		tutorInput: components.NewTextInput("Pergunte ao tutor...", false, 120),
	}
}

func (s *StudyScreen) Title() string {
	return "Sessão de Estudo"
}

func (s *StudyScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Encerrar"},
			{Key: "N", Description: "Continuar"},
		}
	}
	if s.asking {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Enviar"},
			{Key: "Esc", Description: "Fechar tutor"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Pausar"},
		{Key: "t", Description: "Tutor"},
		{Key: "Esc", Description: "Encerrar"},
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case tutorAnswerMsg:
		if msg.Seq != s.tutorSeq {
			return s, nil
		}
		s.tutorBusy = false
		s.transcript = append(s.transcript, "Tutor: "+msg.Answer)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.asking {
		var cmd tea.Cmd
		s.tutorInput, cmd = s.tutorInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StudyScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.paused || s.done {
		return s, tickCmd()
	}

	s.remaining -= time.Second
	if s.remaining <= 0 {
		s.remaining = 0
		s.done = true
		return s, nil
	}
	return s, tickCmd()
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y", "enter":
			return s, s.finish()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.asking {
		switch key {
		case "esc":
			s.asking = false
			return s, nil
		case "enter":
			return s.askTutor()
		}
		var cmd tea.Cmd
		s.tutorInput, cmd = s.tutorInput.Update(msg)
		return s, cmd
	}

	if s.done {
		// Any key closes a finished session.
		return s, s.finish()
	}

	switch key {
	case "esc":
		s.confirmQuit = true
	case "space", "p":
		s.paused = !s.paused
	case "t":
		s.asking = true
		s.tutorInput = components.NewTextInput("Pergunte ao tutor...", false, 120)
		return s, s.tutorInput.Init()
	}
	return s, nil
}

// askTutor submits the current question. A stale answer from a superseded
// question is dropped by sequence number.
func (s *StudyScreen) askTutor() (screen.Screen, tea.Cmd) {
	question := strings.TrimSpace(s.tutorInput.Value())
	if question == "" || s.tutorBusy {
		return s, nil
	}

	s.transcript = append(s.transcript, "Você: "+question)
	s.tutorInput = components.NewTextInput("Pergunte ao tutor...", false, 120)
	s.tutorBusy = true
	s.tutorSeq++
	seq := s.tutorSeq

	svc, subject, topic := s.service, s.subject, s.topic
	return s, tea.Batch(s.tutorInput.Init(), func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), tutorTimeout)
		defer cancel()

		answer, err := svc.AskTutor(ctx, question, subject, topic)
		if err != nil {
			return tutorAnswerMsg{Seq: seq, Answer: content.FallbackTutorAnswer}
		}
		return tutorAnswerMsg{Seq: seq, Answer: answer}
	})
}

// finish credits the elapsed time and pops back to the previous screen.
func (s *StudyScreen) finish() tea.Cmd {
	elapsed := sessionDuration - s.remaining
	if elapsed > 0 {
		_, _ = s.store.AddStudyTime(time.Now(), elapsed.Hours())
	}
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *StudyScreen) View(width, height int) string {
	if s.confirmQuit {
		msg := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Encerrar a sessão de estudo? (y/n)")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s — %s", s.subject, s.topic))
	sections = append(sections, title, "")

	mins := int(s.remaining.Minutes())
	secs := int(s.remaining.Seconds()) % 60
	timerStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	if s.paused {
		timerStyle = timerStyle.Foreground(theme.TextDim)
	}
	timer := timerStyle.Render(fmt.Sprintf("%02d:%02d", mins, secs))
	if s.paused {
		timer += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ⏸ pausado")
	}
	sections = append(sections, timer)

	elapsed := float64(sessionDuration-s.remaining) / float64(sessionDuration)
	bar := components.NewProgressBar("", elapsed, true, 40)
	sections = append(sections, bar.View())

	if s.done {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
				Render("Sessão concluída! Pressione qualquer tecla."))
	}

	if len(s.transcript) > 0 {
		sections = append(sections, "")
		// Show the last few exchanges only.
		start := 0
		if len(s.transcript) > 6 {
			start = len(s.transcript) - 6
		}
		for _, line := range s.transcript[start:] {
			style := theme.Body
			if strings.HasPrefix(line, "Tutor:") {
				style = lipgloss.NewStyle().Foreground(theme.Secondary)
			}
			sections = append(sections, style.Width(width-20).Render(line))
		}
	}

	if s.asking {
		sections = append(sections, "", s.tutorInput.View())
		if s.tutorBusy {
			sections = append(sections,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("consultando o tutor..."))
		}
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
