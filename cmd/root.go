package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/concursados/internal/config"
	"github.com/abhisek/concursados/internal/eventlog"
	"github.com/abhisek/concursados/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "concursados",
	Short: "Centro de treinamento tático para concursos",
	Long:  "Concursados.AI — terminal de preparação para concursos militares e civis, com plano de estudos, simulados e correção de redação por IA.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Keys in a local .env are picked up silently; absence is normal.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to TOML config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("data", "", "Path to the progress record file (overrides CONCURSADOS_DATA)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite event log (overrides CONCURSADOS_DB)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadFileConfig reads the TOML config named by --config or the default
// location. A missing file yields an empty config.
func loadFileConfig(cmd *cobra.Command) (config.FileConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.LoadConfig(path)
}

// resolveDataPath returns the record path: --data flag, then the config
// file, then CONCURSADOS_DATA / the XDG default.
func resolveDataPath(cmd *cobra.Command, fc config.FileConfig) (string, error) {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p, nil
	}
	if fc.Paths.Data != nil && *fc.Paths.Data != "" {
		return *fc.Paths.Data, nil
	}
	return store.DefaultPath()
}

// resolveDBPath returns the event log path with the same precedence.
func resolveDBPath(cmd *cobra.Command, fc config.FileConfig) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	if fc.Paths.DB != nil && *fc.Paths.DB != "" {
		return *fc.Paths.DB, nil
	}
	return eventlog.DefaultDBPath()
}
