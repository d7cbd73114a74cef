package content

import "github.com/abhisek/concursados/internal/llm"

// questionProperties is shared between the question batch schema and the
// informatics quiz question.
func questionProperties(difficulties []any) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "Short unique id for the question",
			},
			"stem": map[string]any{
				"type":        "string",
				"description": "The question statement, in Brazilian Portuguese",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options",
			},
			"correctIndex": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct option is right and the trap, if any",
			},
			"difficulty": map[string]any{
				"type": "string",
				"enum": difficulties,
			},
		},
		"required":             []any{"id", "stem", "options", "correctIndex", "explanation", "difficulty"},
		"additionalProperties": false,
	}
}

// PlanSchema defines the JSON schema for study plan responses.
var PlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A one-day study plan split into timed blocks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"day": map[string]any{
				"type":        "string",
				"description": "Label for the day's plan",
			},
			"tasks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"subject":         map[string]any{"type": "string"},
						"topic":           map[string]any{"type": "string"},
						"durationMinutes": map[string]any{"type": "integer", "minimum": 5},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"theory", "questions", "revision"},
						},
						"completed": map[string]any{"type": "boolean"},
					},
					"required":             []any{"subject", "topic", "durationMinutes", "type", "completed"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"day", "tasks"},
		"additionalProperties": false,
	},
}

// QuestionBatchSchema defines the JSON schema for a batch of questions.
var QuestionBatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of exam-style multiple choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": questionProperties([]any{"Fácil", "Médio", "Difícil", "Pegadinha"}),
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// LogicSchema defines the JSON schema for logic challenge responses.
var LogicSchema = &llm.Schema{
	Name:        "logic-challenge",
	Description: "A hard logical reasoning puzzle with options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":    map[string]any{"type": "string"},
			"scenario": map[string]any{"type": "string"},
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"correctIndex": map[string]any{"type": "integer", "minimum": 0},
			"explanation":  map[string]any{"type": "string"},
		},
		"required":             []any{"title", "scenario", "question", "options", "correctIndex", "explanation"},
		"additionalProperties": false,
	},
}

// InformaticsSchema defines the JSON schema for the daily informatics tip.
var InformaticsSchema = &llm.Schema{
	Name:        "informatics-daily",
	Description: "A daily informatics tip with an embedded quiz question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic":        map[string]any{"type": "string"},
			"tip":          map[string]any{"type": "string"},
			"shortcut":     map[string]any{"type": "string"},
			"quizQuestion": questionProperties([]any{"Fácil", "Médio", "Difícil"}),
		},
		"required":             []any{"topic", "tip", "quizQuestion"},
		"additionalProperties": false,
	},
}

// EssaySchema defines the JSON schema for essay correction responses.
var EssaySchema = &llm.Schema{
	Name:        "essay-correction",
	Description: "A graded essay correction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     1000,
				"description": "Score from 0 to 1000",
			},
			"feedback": map[string]any{"type": "string"},
			"grammarErrors": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"structureSuggestions": map[string]any{"type": "string"},
		},
		"required":             []any{"score", "feedback", "grammarErrors", "structureSuggestions"},
		"additionalProperties": false,
	},
}

// RecipeSchema defines the JSON schema for recipe responses.
var RecipeSchema = &llm.Schema{
	Name:        "recipe",
	Description: "A cheap, practical recipe for a military athlete",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"ingredients": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"instructions": map[string]any{"type": "string"},
			"benefits":     map[string]any{"type": "string"},
		},
		"required":             []any{"name", "ingredients", "instructions", "benefits"},
		"additionalProperties": false,
	},
}
