package content

import "fmt"

// ValidateBatch checks the question batch rules: exactly QuestionCount
// items, exactly PegadinhaCount of them marked Pegadinha, and every item
// internally consistent.
func ValidateBatch(questions []Question) error {
	if len(questions) != QuestionCount {
		return fmt.Errorf("expected %d questions, got %d", QuestionCount, len(questions))
	}

	pegadinhas := 0
	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
		if q.Difficulty == DifficultyPegadinha {
			pegadinhas++
		}
	}

	if pegadinhas != PegadinhaCount {
		return fmt.Errorf("expected %d pegadinhas, got %d", PegadinhaCount, pegadinhas)
	}
	return nil
}

// validateQuestion checks a single question for internal consistency.
func validateQuestion(q Question) error {
	if q.Stem == "" {
		return fmt.Errorf("empty stem")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correctIndex %d out of range for %d options", q.CorrectIndex, len(q.Options))
	}
	return nil
}
