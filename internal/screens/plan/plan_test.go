package plan

import (
	"encoding/json"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/concursados/internal/content"
	"github.com/abhisek/concursados/internal/llm"
	"github.com/abhisek/concursados/internal/router"
	"github.com/abhisek/concursados/internal/screen"
	"github.com/abhisek/concursados/internal/store"
)

type stubSession struct {
	subject string
	topic   string
}

func (s *stubSession) Init() tea.Cmd                           { return nil }
func (s *stubSession) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubSession) View(width, height int) string           { return "session" }
func (s *stubSession) Title() string                           { return "Sessão" }

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "record.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func newScreen(t *testing.T, responses ...llm.MockResponse) *PlanScreen {
	t.Helper()
	svc := content.NewService(llm.NewMockProvider(responses...), content.DefaultConfig())
	return New(openTestStore(t), svc, func(subject, topic string) screen.Screen {
		return &stubSession{subject: subject, topic: topic}
	})
}

func planJSON(t *testing.T) json.RawMessage {
	t.Helper()
	plan := content.StudyPlan{
		Day: "Segunda-feira",
		Tasks: []content.StudyTask{
			{Subject: "Português", Topic: "Crase", DurationMinutes: 45, Type: content.TaskTheory},
			{Subject: "Matemática", Topic: "Funções", DurationMinutes: 60, Type: content.TaskQuestions},
		},
	}
	raw, err := json.Marshal(plan)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestPlanLoads(t *testing.T) {
	p := newScreen(t, llm.MockResponse{Content: planJSON(t)})

	cmd := p.Init()
	msg := cmd()
	s, _ := p.Update(msg)
	p = s.(*PlanScreen)

	if p.loading {
		t.Error("still loading after planReadyMsg")
	}
	if p.fallback {
		t.Error("successful generation should not be marked fallback")
	}
	if len(p.plan.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(p.plan.Tasks))
	}
}

func TestFallbackOnProviderError(t *testing.T) {
	// Empty mock queue: every call fails with ErrProviderUnavailable.
	p := newScreen(t)

	msg := p.Init()()
	s, _ := p.Update(msg)
	p = s.(*PlanScreen)

	if !p.fallback {
		t.Error("provider failure should activate the fallback plan")
	}
	if p.plan == nil || len(p.plan.Tasks) == 0 {
		t.Fatal("fallback plan should have tasks")
	}
	if p.plan.Day != "Plano de Contingência (Offline)" {
		t.Errorf("unexpected fallback day: %q", p.plan.Day)
	}
}

func TestStaleResponseDropped(t *testing.T) {
	p := newScreen(t, llm.MockResponse{Content: planJSON(t)})

	first := p.Init()()
	// Regenerate before the first response lands.
	p.generate()

	s, _ := p.Update(first)
	p = s.(*PlanScreen)
	if !p.loading {
		t.Error("stale response should be ignored, screen still loading")
	}
}

func TestEnterStartsSession(t *testing.T) {
	p := newScreen(t, llm.MockResponse{Content: planJSON(t)})

	msg := p.Init()()
	s, _ := p.Update(msg)
	p = s.(*PlanScreen)

	// Select second task.
	s, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	p = s.(*PlanScreen)
	_, cmd := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	sess, ok := push.Screen.(*stubSession)
	if !ok {
		t.Fatalf("expected session screen, got %T", push.Screen)
	}
	if sess.subject != "Matemática" || sess.topic != "Funções" {
		t.Errorf("session started with %s/%s", sess.subject, sess.topic)
	}
}
