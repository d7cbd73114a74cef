package content

// Fallbacks shown when the provider is unreachable or keeps returning
// invalid content. Views render these instead of a bare error so the app
// stays usable offline.

// FallbackPlan is the offline contingency study plan.
func FallbackPlan() *StudyPlan {
	return &StudyPlan{
		Day: "Plano de Contingência (Offline)",
		Tasks: []StudyTask{
			{Subject: "Português", Topic: "Crase e Regência", DurationMinutes: 45, Type: TaskTheory},
			{Subject: "Matemática", Topic: "Logaritmos", DurationMinutes: 45, Type: TaskQuestions},
		},
	}
}

// FallbackCorrection is the correction shown when grading fails.
func FallbackCorrection() *EssayCorrection {
	return &EssayCorrection{
		Score:                0,
		Feedback:             "Erro ao conectar com a IA Central.",
		GrammarErrors:        []string{},
		StructureSuggestions: "Tente novamente.",
	}
}

// FallbackRecipe is the recipe shown when generation fails.
func FallbackRecipe() *Recipe {
	return &Recipe{
		Name:         "Suco Verde de Combate (Fallback)",
		Ingredients:  []string{"Couve", "Limão", "Gengibre"},
		Instructions: "Bater tudo.",
		Benefits:     "Detox simples.",
	}
}

// FallbackChallenge is the placeholder shown when generation fails.
func FallbackChallenge() *LogicChallenge {
	return &LogicChallenge{
		Title:        "Erro na Matriz",
		Scenario:     "Sem conexão.",
		Question:     "Tente novamente.",
		Options:      []string{"Ok"},
		CorrectIndex: 0,
		Explanation:  "Erro",
	}
}

// FallbackTutorAnswer is shown when the tutor call fails.
const FallbackTutorAnswer = "Erro de comunicação com o QG."

// EmptyTutorAnswer is shown when the tutor returns no text.
const EmptyTutorAnswer = "Sem resposta."
