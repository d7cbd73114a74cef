package informatics

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

func dailyJSON(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(content.InformaticsDaily{
		Topic:    "Planilhas",
		Tip:      "PROCV busca valores em colunas.",
		Shortcut: "Ctrl+Shift+L",
		QuizQuestion: content.Question{
			ID:           "q1",
			Stem:         "O que o PROCV faz?",
			Options:      []string{"Busca vertical", "Soma", "Ordena"},
			CorrectIndex: 0,
			Explanation:  "Busca vertical em tabelas.",
			Difficulty:   content.DifficultyEasy,
		},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestTipThenQuiz(t *testing.T) {
	st := openTestStore(t)
	svc := content.NewService(llm.NewMockProvider(
		llm.MockResponse{Content: dailyJSON(t)}), content.DefaultConfig())
	i := New(st, svc)

	i.Update(i.Init()())
	if i.loading || i.daily == nil {
		t.Fatal("daily tip should be loaded")
	}
	if i.quizOpen {
		t.Fatal("quiz should start closed")
	}

	i.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !i.quizOpen {
		t.Fatal("enter should open the quiz")
	}

	// Answer correctly (option A).
	i.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !i.answered {
		t.Fatal("expected answered state")
	}
	if got := st.Stats().XP; got != store.XPCorrectAnswer {
		t.Errorf("XP = %d, want %d", got, store.XPCorrectAnswer)
	}
}

func TestRefreshFetchesNewTip(t *testing.T) {
	st := openTestStore(t)
	svc := content.NewService(llm.NewMockProvider(
		llm.MockResponse{Content: dailyJSON(t)},
		llm.MockResponse{Content: dailyJSON(t)}), content.DefaultConfig())
	i := New(st, svc)

	i.Update(i.Init()())
	if i.daily == nil {
		t.Fatal("daily tip should be loaded")
	}

	_, cmd := i.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a refresh command")
	}
	if !i.loading || i.daily != nil {
		t.Fatal("refresh should return to the loading state")
	}

	i.Update(cmd())
	if i.loading || i.daily == nil {
		t.Fatal("refreshed tip should be loaded")
	}
	if i.quizOpen || i.answered {
		t.Error("refresh should reset the quiz state")
	}
}

func TestRefreshAfterFailureRetries(t *testing.T) {
	svc := content.NewService(llm.NewMockProvider(), content.DefaultConfig())
	i := New(openTestStore(t), svc)

	i.Update(i.Init()())
	if i.errMsg == "" {
		t.Fatal("expected an error message on provider failure")
	}

	_, cmd := i.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	if i.errMsg != "" {
		t.Error("retry should clear the error state")
	}
}

func TestGenerationFailureShowsError(t *testing.T) {
	svc := content.NewService(llm.NewMockProvider(), content.DefaultConfig())
	i := New(openTestStore(t), svc)

	i.Update(i.Init()())
	if i.errMsg == "" {
		t.Error("expected an error message on provider failure")
	}
}

func TestStaleDailyDropped(t *testing.T) {
	svc := content.NewService(llm.NewMockProvider(
		llm.MockResponse{Content: dailyJSON(t)}), content.DefaultConfig())
	i := New(openTestStore(t), svc)

	stale := i.Init()()
	i.generate() // supersedes the first request

	i.Update(stale)
	if !i.loading {
		t.Error("stale daily should be dropped")
	}
}
