package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/concursados/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Apagar todo o progresso (perfil, XP, histórico)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fc, err := loadFileConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		dataPath, err := resolveDataPath(cmd, fc)
		if err != nil {
			return fmt.Errorf("resolve data path: %w", err)
		}

		dbPath, err := resolveDBPath(cmd, fc)
		if err != nil {
			return fmt.Errorf("resolve event log path: %w", err)
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Printf("Isso apaga TODO o progresso em %s. Continuar? [y/N] ", dataPath)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			answer = strings.ToLower(strings.TrimSpace(answer))
			if answer != "y" && answer != "yes" && answer != "s" && answer != "sim" {
				fmt.Println("Cancelado.")
				return nil
			}
		}

		st, err := store.Open(dataPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		if err := st.Reset(); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		if err := removeEventLog(dbPath); err != nil {
			return fmt.Errorf("remove event log: %w", err)
		}

		fmt.Println("Progresso zerado. Bom recomeço, recruta.")
		return nil
	},
}

// removeEventLog deletes the events database along with SQLite's WAL
// sidecar files. Missing files are fine; reset must be idempotent.
func removeEventLog(dbPath string) error {
	for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func init() {
	resetCmd.Flags().BoolP("force", "f", false, "Não pedir confirmação")
}
