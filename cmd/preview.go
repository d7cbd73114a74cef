package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/concursados/internal/content"
	"github.com/abhisek/concursados/internal/llm"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview generated questions for a topic (no progress tracking)",
	Long: `Generate and interactively answer a question batch for a topic.

This is a stateless developer tool — no record file, no XP, no events.
Useful for evaluating question quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("exam", "ENEM", "Target exam (ESA, EsPCEx, PM-SP, PF, ENEM, Banco do Brasil)")
	previewCmd.Flags().String("topic", "", "Topic to generate questions about (empty = Geral)")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	exam, _ := cmd.Flags().GetString("exam")
	topic, _ := cmd.Flags().GetString("topic")

	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return fmt.Errorf("no LLM provider configured: %w", err)
		}
		cfg = discovered
	}

	// No event log: preview runs are not recorded.
	provider, err := llm.NewProvider(cmd.Context(), cfg, nil)
	if err != nil {
		return fmt.Errorf("build provider: %w", err)
	}

	svc := content.NewService(provider, content.DefaultConfig())

	fmt.Printf("Generating %d questions for %s", content.QuestionCount, exam)
	if topic != "" {
		fmt.Printf(" (%s)", topic)
	}
	fmt.Println("...")

	batch, err := svc.GenerateQuestions(context.Background(), exam, topic)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	correct := 0

	for i, q := range batch {
		fmt.Println()
		fmt.Printf("── Questão %d/%d [%s] ──\n", i+1, len(batch), q.Difficulty)
		fmt.Println(q.Stem)
		for j, opt := range q.Options {
			fmt.Printf("  %c) %s\n", 'A'+j, opt)
		}

		fmt.Print("Resposta: ")
		answer, _ := reader.ReadString('\n')
		answer = strings.ToUpper(strings.TrimSpace(answer))

		chosen := -1
		if len(answer) == 1 && answer[0] >= 'A' {
			chosen = int(answer[0] - 'A')
		}

		if chosen == q.CorrectIndex {
			correct++
			fmt.Println("✓ Correto.")
		} else {
			fmt.Printf("✗ Errado. Resposta: %c\n", 'A'+q.CorrectIndex)
		}
		fmt.Println(q.Explanation)
	}

	fmt.Println()
	fmt.Printf("Resultado: %d/%d\n", correct, len(batch))
	return nil
}
