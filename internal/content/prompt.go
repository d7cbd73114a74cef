package content

import (
	"fmt"
	"strings"
)

const systemPrompt = `Você é um mentor militar experiente preparando candidatos para concursos públicos e carreiras militares brasileiras. Crie conteúdo tático, direto e em português do Brasil. Sem rodeios.`

// QuestionCount is the fixed size of a generated question batch.
const QuestionCount = 10

// PegadinhaCount is how many questions of a batch must be trick questions.
const PegadinhaCount = 2

func buildPlanPrompt(targetExam string, hours int, level string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Gere um plano de estudos de 1 dia para o concurso %s.\n", targetExam)
	fmt.Fprintf(&b, "O aluno tem %d horas disponíveis e está no nível %s.\n", hours, level)
	b.WriteString("Divida o tempo em blocos lógicos. O campo 'completed' deve ser false.")
	return b.String()
}

func buildQuestionsPrompt(targetExam, topic string) string {
	if topic == "" {
		topic = "Geral"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Gere %d questões de múltipla escolha estilo %s sobre o tema: %s.\n", QuestionCount, targetExam, topic)
	fmt.Fprintf(&b, "REGRA IMPORTANTE: Exatamente %d das %d questões DEVEM ser 'Pegadinhas' (questões que parecem óbvias mas têm um detalhe traiçoeiro). Marque a difficulty delas como 'Pegadinha'.", PegadinhaCount, QuestionCount)
	return b.String()
}

func buildLogicPrompt() string {
	return "Gere um desafio de Raciocínio Lógico Matemático difícil, estilo concurso PF ou ABIN."
}

func buildInformaticsPrompt() string {
	return "Gere uma dica de Ouro de Informática para concursos (ex: Excel, Redes, Segurança) e uma questão sobre essa dica."
}

func buildEssayPrompt(essayText, theme string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Corrija a seguinte redação com o tema %q. Seja rigoroso como uma banca militar.\n", theme)
	fmt.Fprintf(&b, "Redação: %s", essayText)
	return b.String()
}

func buildRecipePrompt(goal string) string {
	return fmt.Sprintf("Gere uma receita prática, barata e nutritiva para um atleta militar com foco em: %s.", goal)
}

func buildTutorPrompt(question, subject, topic string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Contexto: Matéria: %s, Tópico: %s.\n", subject, topic)
	fmt.Fprintf(&b, "Pergunta do aluno: %s.\n", question)
	b.WriteString("Responda de forma direta e didática, máximo 2 parágrafos.")
	return b.String()
}
