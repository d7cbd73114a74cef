package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/concursados/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Mostrar o progresso acumulado",
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := loadFileConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dataPath, err := resolveDataPath(cmd, fc)
		if err != nil {
			return fmt.Errorf("resolve data path: %w", err)
		}
		st, err := store.Open(dataPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		profile := st.Profile()
		stats := st.Stats()

		if profile == nil {
			fmt.Println("Nenhum perfil encontrado. Rode `concursados` para se alistar.")
			return nil
		}

		fmt.Printf("Soldado:   %s\n", profile.Name)
		fmt.Printf("Alvo:      %s (%s, %dh/dia)\n", profile.TargetExam, profile.Level, profile.DailyHours)
		fmt.Println(strings.Repeat("─", 44))

		accuracy := 0.0
		if stats.QuestionsAnswered > 0 {
			accuracy = float64(stats.CorrectAnswers) / float64(stats.QuestionsAnswered) * 100
		}

		fmt.Printf("XP total:            %d\n", stats.XP)
		fmt.Printf("Sequência de estudo: %d dias\n", stats.Streak)
		fmt.Printf("Questões:            %d (%.0f%% de acerto)\n", stats.QuestionsAnswered, accuracy)
		fmt.Printf("Redações:            %d\n", stats.EssaysSubmitted)
		fmt.Printf("Provas baixadas:     %d\n", stats.PDFsDownloaded)

		var weekTotal float64
		for _, h := range stats.StudyHours {
			weekTotal += h
		}
		fmt.Printf("Horas na semana:     %.1fh\n", weekTotal)

		return nil
	},
}
