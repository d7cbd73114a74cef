// Package content generates study material through the LLM provider layer:
// daily plans, question batches, logic challenges, informatics tips, essay
// corrections, recipes and tutor answers.
package content

// Difficulty labels a generated question. Pegadinha marks trick questions
// that look obvious but hide a treacherous detail.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "Fácil"
	DifficultyMedium    Difficulty = "Médio"
	DifficultyHard      Difficulty = "Difícil"
	DifficultyPegadinha Difficulty = "Pegadinha"
)

// TaskType classifies a study plan block.
type TaskType string

const (
	TaskTheory    TaskType = "theory"
	TaskQuestions TaskType = "questions"
	TaskRevision  TaskType = "revision"
)

// StudyTask is one block of a daily study plan.
type StudyTask struct {
	Subject         string   `json:"subject"`
	Topic           string   `json:"topic"`
	DurationMinutes int      `json:"durationMinutes"`
	Type            TaskType `json:"type"`
	Completed       bool     `json:"completed"`
}

// StudyPlan is a one-day tactical study plan.
type StudyPlan struct {
	Day   string      `json:"day"`
	Tasks []StudyTask `json:"tasks"`
}

// Question is a multiple-choice item.
type Question struct {
	ID           string     `json:"id"`
	Stem         string     `json:"stem"`
	Options      []string   `json:"options"`
	CorrectIndex int        `json:"correctIndex"`
	Explanation  string     `json:"explanation"`
	Difficulty   Difficulty `json:"difficulty"`
}

// LogicChallenge is a single logical-reasoning puzzle.
type LogicChallenge struct {
	Title        string   `json:"title"`
	Scenario     string   `json:"scenario"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// InformaticsDaily is the daily informatics tip plus a quiz question on it.
type InformaticsDaily struct {
	Topic        string   `json:"topic"`
	Tip          string   `json:"tip"`
	Shortcut     string   `json:"shortcut,omitempty"`
	QuizQuestion Question `json:"quizQuestion"`
}

// EssayCorrection is the graded result of an essay submission.
type EssayCorrection struct {
	Score                int      `json:"score"` // 0-1000
	Feedback             string   `json:"feedback"`
	GrammarErrors        []string `json:"grammarErrors"`
	StructureSuggestions string   `json:"structureSuggestions"`
}

// Recipe is a nutrition suggestion for the physical-training log.
type Recipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Benefits     string   `json:"benefits"`
}
