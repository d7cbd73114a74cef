package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/concursados/internal/llm"
)

// Service generates study content through an LLM provider. The provider is
// expected to arrive already wrapped with retry and logging middleware.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content Service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GeneratePlan produces a one-day study plan for the given exam, available
// hours and level.
func (s *Service) GeneratePlan(ctx context.Context, targetExam string, hours int, level string) (*StudyPlan, error) {
	ctx = llm.WithPurpose(ctx, "plan")

	var plan StudyPlan
	err := s.generateJSON(ctx, buildPlanPrompt(targetExam, hours, level), PlanSchema, &plan)
	if err != nil {
		return nil, err
	}
	if len(plan.Tasks) == 0 {
		return nil, fmt.Errorf("plan has no tasks")
	}
	return &plan, nil
}

// questionBatch wraps the array so providers with object-rooted structured
// output (OpenAI strict mode) can be used.
type questionBatch struct {
	Questions []Question `json:"questions"`
}

// GenerateQuestions produces a batch of exactly QuestionCount questions of
// which exactly PegadinhaCount are trick questions. A batch violating those
// rules is regenerated once before failing.
func (s *Service) GenerateQuestions(ctx context.Context, targetExam, topic string) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "questions")
	prompt := buildQuestionsPrompt(targetExam, topic)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		var batch questionBatch
		if err := s.generateJSON(ctx, prompt, QuestionBatchSchema, &batch); err != nil {
			return nil, err
		}
		if err := ValidateBatch(batch.Questions); err != nil {
			lastErr = err
			continue
		}
		// Models occasionally omit or duplicate IDs; make them usable keys.
		for i := range batch.Questions {
			if batch.Questions[i].ID == "" {
				batch.Questions[i].ID = uuid.NewString()
			}
		}
		return batch.Questions, nil
	}
	return nil, fmt.Errorf("question batch rejected: %w", lastErr)
}

// GenerateLogicChallenge produces one hard logical-reasoning puzzle.
func (s *Service) GenerateLogicChallenge(ctx context.Context) (*LogicChallenge, error) {
	ctx = llm.WithPurpose(ctx, "logic")

	var ch LogicChallenge
	if err := s.generateJSON(ctx, buildLogicPrompt(), LogicSchema, &ch); err != nil {
		return nil, err
	}
	if len(ch.Options) == 0 || ch.CorrectIndex < 0 || ch.CorrectIndex >= len(ch.Options) {
		return nil, fmt.Errorf("logic challenge has inconsistent options")
	}
	return &ch, nil
}

// GenerateInformaticsDaily produces the daily informatics tip with its
// embedded quiz question.
func (s *Service) GenerateInformaticsDaily(ctx context.Context) (*InformaticsDaily, error) {
	ctx = llm.WithPurpose(ctx, "informatics")

	var daily InformaticsDaily
	if err := s.generateJSON(ctx, buildInformaticsPrompt(), InformaticsSchema, &daily); err != nil {
		return nil, err
	}
	if err := validateQuestion(daily.QuizQuestion); err != nil {
		return nil, fmt.Errorf("informatics quiz question: %w", err)
	}
	return &daily, nil
}

// CorrectEssay grades an essay against its theme, returning a 0-1000 score
// with feedback.
func (s *Service) CorrectEssay(ctx context.Context, essayText, theme string) (*EssayCorrection, error) {
	ctx = llm.WithPurpose(ctx, "essay")

	var corr EssayCorrection
	if err := s.generateJSON(ctx, buildEssayPrompt(essayText, theme), EssaySchema, &corr); err != nil {
		return nil, err
	}
	if corr.GrammarErrors == nil {
		corr.GrammarErrors = []string{}
	}
	return &corr, nil
}

// GenerateRecipe produces a nutrition recipe for the given training goal.
func (s *Service) GenerateRecipe(ctx context.Context, goal string) (*Recipe, error) {
	ctx = llm.WithPurpose(ctx, "recipe")

	var recipe Recipe
	if err := s.generateJSON(ctx, buildRecipePrompt(goal), RecipeSchema, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// AskTutor answers a free-form student question in the context of the
// current subject and topic. The answer is plain text, not schema-bound.
func (s *Service) AskTutor(ctx context.Context, question, subject, topic string) (string, error) {
	ctx = llm.WithPurpose(ctx, "tutor")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorPrompt(question, subject, topic)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tutor request failed: %w", err)
	}

	answer := strings.TrimSpace(string(resp.Content))
	if answer == "" {
		return EmptyTutorAnswer, nil
	}
	return answer, nil
}

// generateJSON runs one schema-bound generation and unmarshals the result.
func (s *Service) generateJSON(ctx context.Context, prompt string, schema *llm.Schema, out any) error {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      schema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("LLM generation failed: %w", err)
	}

	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return nil
}
