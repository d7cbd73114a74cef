package tfm

import (
	"encoding/json"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/concursados/internal/content"
	"github.com/abhisek/concursados/internal/llm"
	"github.com/abhisek/concursados/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "record.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func newScreen(t *testing.T, st *store.Store, responses ...llm.MockResponse) *TfmScreen {
	t.Helper()
	svc := content.NewService(llm.NewMockProvider(responses...), content.DefaultConfig())
	return New(st, svc)
}

func press(s *TfmScreen, code rune, text string) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: code, Text: text})
	return cmd
}

func TestCheckInSavesAndAwardsWorkoutXPOnce(t *testing.T) {
	st := openTestStore(t)
	s := newScreen(t, st)

	// Toggling the workout saves immediately.
	press(s, ' ', " ")

	if !s.saved {
		t.Fatal("check-in was not saved")
	}
	stats := st.Stats()
	if stats.XP != store.XPWorkout {
		t.Errorf("XP = %d, want %d", stats.XP, store.XPWorkout)
	}

	rec, ok := st.TfmForDate(today())
	if !ok {
		t.Fatal("no record for today")
	}
	if !rec.WorkoutDone {
		t.Error("WorkoutDone not persisted")
	}

	// An explicit re-save must not re-award.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	press(s, tea.KeyEnter, "")
	if st.Stats().XP != store.XPWorkout {
		t.Error("re-saving awarded workout XP twice")
	}
}

func TestRunDistanceStepsByHalfKm(t *testing.T) {
	st := openTestStore(t)
	s := newScreen(t, st)

	// Move to the run row.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.runKm != 1.5 {
		t.Errorf("runKm = %v, want 1.5", s.runKm)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.runKm != 1.0 {
		t.Errorf("runKm = %v, want 1.0", s.runKm)
	}

	// Never goes negative.
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	s.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if s.runKm != 0 {
		t.Errorf("runKm = %v, want 0", s.runKm)
	}

	// Save persists the distance.
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	press(s, tea.KeyEnter, "")

	rec, ok := st.TfmForDate(today())
	if !ok {
		t.Fatal("no record for today")
	}
	if rec.RunKm != 0.5 {
		t.Errorf("RunKm = %v, want 0.5", rec.RunKm)
	}
}

func TestReopenLoadsTodaysRecord(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.SaveTfmRecord(store.TfmRecord{
		Date:        today(),
		Mood:        store.MoodTired,
		WorkoutDone: true,
		RunKm:       5,
	}); err != nil {
		t.Fatalf("SaveTfmRecord: %v", err)
	}

	s := newScreen(t, st)
	if !s.workout {
		t.Error("workout state not preloaded")
	}
	if store.Moods()[s.mood] != store.MoodTired {
		t.Error("mood not preloaded")
	}
	if s.runKm != 5 {
		t.Errorf("runKm = %v, want 5", s.runKm)
	}
}

func TestRecipeGeneration(t *testing.T) {
	raw, _ := json.Marshal(content.Recipe{
		Name:         "Omelete de Campanha",
		Ingredients:  []string{"Ovos", "Espinafre"},
		Instructions: "Bater e fritar.",
		Benefits:     "Proteína barata.",
	})
	st := openTestStore(t)
	s := newScreen(t, st, llm.MockResponse{Content: raw})

	cmd := press(s, 'g', "g")
	if cmd == nil {
		t.Fatal("expected recipe command")
	}
	s.Update(cmd())

	if s.recipe == nil || s.recipe.Name != "Omelete de Campanha" {
		t.Fatal("recipe not loaded")
	}
	if s.fallback {
		t.Error("successful generation should not be fallback")
	}
}

func TestRecipeFallback(t *testing.T) {
	s := newScreen(t, openTestStore(t))

	cmd := press(s, 'g', "g")
	s.Update(cmd())

	if s.recipe == nil || !s.fallback {
		t.Fatal("expected fallback recipe on provider failure")
	}
	if s.recipe.Name != "Suco Verde de Combate (Fallback)" {
		t.Errorf("unexpected fallback recipe: %q", s.recipe.Name)
	}
}
