package essay

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
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

const correctionTimeout = 90 * time.Second

type phase int

const (
	phaseTheme phase = iota
	phaseWriting
	phaseCorrecting
	phaseResult
)

type correctionMsg struct {
	Seq        int
	Correction *content.EssayCorrection
	Fallback   bool
}

// EssayScreen collects a dissertation on a theme and grades it through the
// corrector, ENEM style: score 0-1000 with grammar and structure feedback.
type EssayScreen struct {
	store   *store.Store
	service *content.Service

	phase      phase
	seq        int
	themeInput components.TextInput
	theme      string
	editor     textarea.Model
	correction *content.EssayCorrection
	fallback   bool
}

var _ screen.Screen = (*EssayScreen)(nil)
var _ screen.KeyHintProvider = (*EssayScreen)(nil)
var _ screen.InputCapturer = (*EssayScreen)(nil)

// New creates an EssayScreen.
func New(st *store.Store, svc *content.Service) *EssayScreen {
	editor := textarea.New()
	editor.Placeholder = "Escreva sua redação aqui..."
	editor.CharLimit = 0

	return &EssayScreen{
		store:      st,
		service:    svc,
		themeInput: components.NewTextInput("Tema da redação", false, 80),
		editor:     editor,
	}
}

func (e *EssayScreen) Title() string {
	return "Redação"
}

func (e *EssayScreen) Init() tea.Cmd {
	return e.themeInput.Init()
}

func (e *EssayScreen) CapturingInput() bool {
	return e.phase == phaseTheme || e.phase == phaseWriting
}

func (e *EssayScreen) KeyHints() []layout.KeyHint {
	switch e.phase {
	case phaseTheme:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirmar tema"},
			{Key: "Esc", Description: "Voltar"},
		}
	case phaseWriting:
		return []layout.KeyHint{
			{Key: "Ctrl+D", Description: "Enviar para correção"},
			{Key: "Esc", Description: "Voltar"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Voltar"},
		}
	}
}

func (e *EssayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case correctionMsg:
		if msg.Seq != e.seq {
			return e, nil
		}
		e.correction = msg.Correction
		e.fallback = msg.Fallback
		e.phase = phaseResult
		// A corrected submission counts even when the corrector fell back.
		_, _ = e.store.RecordEssay()
		return e, nil

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	return e.forward(msg)
}

func (e *EssayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch e.phase {
	case phaseTheme:
		switch key {
		case "esc":
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			chosen := strings.TrimSpace(e.themeInput.Value())
			if chosen == "" {
				return e, nil
			}
			e.theme = chosen
			e.phase = phaseWriting
			e.editor.Focus()
			return e, textarea.Blink
		}
		return e.forward(msg)

	case phaseWriting:
		switch key {
		case "esc":
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		case "ctrl+d":
			return e.submit()
		}
		return e.forward(msg)

	case phaseCorrecting:
		if key == "esc" {
			return e, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case phaseResult:
		return e, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return e, nil
}

func (e *EssayScreen) forward(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch e.phase {
	case phaseTheme:
		e.themeInput, cmd = e.themeInput.Update(msg)
	case phaseWriting:
		e.editor, cmd = e.editor.Update(msg)
	}
	return e, cmd
}

// submit sends the essay for correction. A provider failure grades with the
// zero-score fallback instead of losing the submission.
func (e *EssayScreen) submit() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(e.editor.Value())
	if text == "" {
		return e, nil
	}

	e.seq++
	seq := e.seq
	e.phase = phaseCorrecting

	svc, essayTheme := e.service, e.theme
	return e, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), correctionTimeout)
		defer cancel()

		corr, err := svc.CorrectEssay(ctx, text, essayTheme)
		if err != nil {
			return correctionMsg{Seq: seq, Correction: content.FallbackCorrection(), Fallback: true}
		}
		return correctionMsg{Seq: seq, Correction: corr}
	}
}

func (e *EssayScreen) View(width, height int) string {
	switch e.phase {
	case phaseTheme:
		prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
			Render("Qual é o tema da redação?")
		body := prompt + "\n\n" + e.themeInput.View()
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)

	case phaseWriting:
		title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render("TEMA: " + e.theme)
		e.editor.SetWidth(width - 20)
		e.editor.SetHeight(height - 12)
		body := title + "\n\n" + e.editor.View()
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)

	case phaseCorrecting:
		msg := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Corrigindo sua redação...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	return e.renderResult(width, height)
}

func (e *EssayScreen) renderResult(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("CORREÇÃO")
	sections = append(sections, title)

	if e.fallback {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Accent).
			Render("⚠ Corretor indisponível — resultado de contingência"))
	}
	sections = append(sections, "")

	scoreStyle := theme.Correct
	if e.correction.Score < 500 {
		scoreStyle = theme.Incorrect
	}
	sections = append(sections, scoreStyle.Render(
		fmt.Sprintf("NOTA: %d / 1000", e.correction.Score)))
	sections = append(sections, "")

	wrap := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 24)
	sections = append(sections, wrap.Render(e.correction.Feedback))

	if len(e.correction.GrammarErrors) > 0 {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Erros de gramática:"))
		for _, ge := range e.correction.GrammarErrors {
			sections = append(sections, wrap.Render("  • "+ge))
		}
	}

	if e.correction.StructureSuggestions != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Estrutura:"),
			wrap.Render(e.correction.StructureSuggestions))
	}

	sections = append(sections, "",
		lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("+%d XP", store.XPEssay)),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("pressione qualquer tecla para voltar"))

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
