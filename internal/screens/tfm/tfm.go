package tfm

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

const recipeTimeout = 60 * time.Second

// row is the selectable field on the check-in form.
type row int

const (
	rowWorkout row = iota
	rowMood
	rowRun
	rowSave
)

type recipeMsg struct {
	Seq      int
	Recipe   *content.Recipe
	Fallback bool
}

// TfmScreen is the daily physical-training check-in: workout done, mood and
// run distance, saved one record per day. It also suggests a nutrition
// recipe on demand.
type TfmScreen struct {
	store   *store.Store
	service *content.Service

	row     row
	workout bool
	mood    int
	runKm   float64
	saved   bool

	seq        int
	recipeBusy bool
	recipe     *content.Recipe
	fallback   bool
}

var _ screen.Screen = (*TfmScreen)(nil)
var _ screen.KeyHintProvider = (*TfmScreen)(nil)

// New creates a TfmScreen preloaded with today's record, if one exists.
func New(st *store.Store, svc *content.Service) *TfmScreen {
	t := &TfmScreen{
		store:   st,
		service: svc,
	}

	if rec, ok := st.TfmForDate(today()); ok {
		t.workout = rec.WorkoutDone
		for i, m := range store.Moods() {
			if m == rec.Mood {
				t.mood = i
			}
		}
		t.runKm = rec.RunKm
	}
	return t
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (t *TfmScreen) Title() string {
	return "TFM"
}

func (t *TfmScreen) Init() tea.Cmd {
	return nil
}

func (t *TfmScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Campo"},
		{Key: "←/→", Description: "Ajustar"},
		{Key: "Space", Description: "Alternar"},
		{Key: "g", Description: "Receita"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (t *TfmScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recipeMsg:
		if msg.Seq != t.seq {
			return t, nil
		}
		t.recipeBusy = false
		t.recipe = msg.Recipe
		t.fallback = msg.Fallback
		return t, nil

	case tea.KeyMsg:
		return t.handleKey(msg)
	}
	return t, nil
}

func (t *TfmScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch key {
	case "esc":
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	case "up":
		if t.row > rowWorkout {
			t.row--
		}
		return t, nil
	case "down":
		if t.row < rowSave {
			t.row++
		}
		return t, nil
	case "g":
		return t, t.generateRecipe()
	}

	moods := store.Moods()
	switch t.row {
	case rowWorkout:
		// Toggling the workout auto-saves so the XP lands immediately.
		if key == "space" || key == "enter" {
			t.workout = !t.workout
			return t.save()
		}
	case rowMood:
		switch key {
		case "left", "h":
			if t.mood > 0 {
				t.mood--
				t.saved = false
			}
		case "right", "l", "space":
			if t.mood < len(moods)-1 {
				t.mood++
				t.saved = false
			} else if key == "space" {
				t.mood = 0
			}
		}
	case rowRun:
		switch key {
		case "left", "h":
			if t.runKm >= 0.5 {
				t.runKm -= 0.5
				t.saved = false
			}
		case "right", "l":
			t.runKm += 0.5
			t.saved = false
		}
	case rowSave:
		if key == "enter" || key == "space" {
			return t.save()
		}
	}

	return t, nil
}

// save upserts today's record. XP for the workout is only granted the first
// time it flips to done for the day.
func (t *TfmScreen) save() (screen.Screen, tea.Cmd) {
	_, err := t.store.SaveTfmRecord(store.TfmRecord{
		Date:        today(),
		Mood:        store.Moods()[t.mood],
		WorkoutDone: t.workout,
		RunKm:       t.runKm,
	})
	if err == nil {
		t.saved = true
	}
	return t, nil
}

// generateRecipe asks for a nutrition suggestion tuned to the check-in.
func (t *TfmScreen) generateRecipe() tea.Cmd {
	if t.recipeBusy {
		return nil
	}
	t.seq++
	seq := t.seq
	t.recipeBusy = true

	goal := "energia para treinar"
	if t.workout {
		goal = "recuperação pós-treino"
	}

	svc := t.service
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), recipeTimeout)
		defer cancel()

		recipe, err := svc.GenerateRecipe(ctx, goal)
		if err != nil {
			return recipeMsg{Seq: seq, Recipe: content.FallbackRecipe(), Fallback: true}
		}
		return recipeMsg{Seq: seq, Recipe: recipe}
	}
}

func (t *TfmScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("TREINO FÍSICO MILITAR — " + today())
	sections = append(sections, title, "")

	check := "[ ]"
	if t.workout {
		check = "[✓]"
	}
	sections = append(sections, t.renderRow(rowWorkout,
		fmt.Sprintf("%s Treino do dia concluído (+%d XP)", check, store.XPWorkout)))

	sections = append(sections, t.renderRow(rowMood,
		"Humor: "+string(store.Moods()[t.mood])))

	sections = append(sections, t.renderRow(rowRun,
		fmt.Sprintf("Corrida (km): ◂ %.1f ▸", t.runKm)))

	save := components.NewButton("SALVAR CHECK-IN", t.row == rowSave, nil)
	sections = append(sections, "", save.View())

	if t.saved {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Success).Render("Check-in salvo."))
	}

	if t.recipeBusy {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("preparando receita..."))
	}

	if t.recipe != nil {
		sections = append(sections, "", t.renderRecipe(width))
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (t *TfmScreen) renderRow(r row, text string) string {
	if t.row == r {
		return theme.Selected.Render("▸ " + text)
	}
	return theme.Unselected.Render("  " + text)
}

func (t *TfmScreen) renderRecipe(width int) string {
	wrap := lipgloss.NewStyle().Foreground(theme.Text).Width(width - 24)

	var b strings.Builder
	name := t.recipe.Name
	if t.fallback {
		name += "  (offline)"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(name))
	b.WriteString("\n")
	b.WriteString(wrap.Render("Ingredientes: " + strings.Join(t.recipe.Ingredients, ", ")))
	b.WriteString("\n")
	b.WriteString(wrap.Render("Preparo: " + t.recipe.Instructions))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.recipe.Benefits))
	return b.String()
}
