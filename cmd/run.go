package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/concursados/internal/app"
	"github.com/abhisek/concursados/internal/config"
	"github.com/abhisek/concursados/internal/content"
	"github.com/abhisek/concursados/internal/eventlog"
	"github.com/abhisek/concursados/internal/llm"
	"github.com/abhisek/concursados/internal/logging"
	"github.com/abhisek/concursados/internal/store"
)

// runApp wires storage, the LLM provider and the content service, then
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	fc, err := loadFileConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath := config.DefaultLogPath()
	if fc.Paths.Log != nil && *fc.Paths.Log != "" {
		logPath = *fc.Paths.Log
	}
	logger, err := logging.New(logPath)
	if err != nil {
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()

	dataPath, err := resolveDataPath(cmd, fc)
	if err != nil {
		return fmt.Errorf("resolve data path: %w", err)
	}
	st, err := store.Open(dataPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	st.SetLogger(logger)

	dbPath, err := resolveDBPath(cmd, fc)
	if err != nil {
		return fmt.Errorf("resolve event log path: %w", err)
	}
	events, err := eventlog.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer func() { _ = events.Close() }()

	provider, err := buildProvider(cmd, fc, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Features de IA responderão com conteúdo de contingência.")
		logger.Warn("llm provider unavailable", zap.Error(err))
		provider = llm.NewMockProvider()
	}

	logger.Info("starting",
		zap.String("data", dataPath),
		zap.String("db", dbPath),
		zap.String("model", provider.ModelID()))

	return app.Run(app.Options{
		Store:   st,
		Content: content.NewService(provider, content.DefaultConfig()),
	})
}

// buildProvider resolves the LLM configuration: explicit env configuration
// first, then the config file's provider choice, then bare-key discovery.
func buildProvider(cmd *cobra.Command, fc config.FileConfig, events *eventlog.Log) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()

	if fc.LLM.Provider != nil && *fc.LLM.Provider != "" && os.Getenv("CONCURSADOS_LLM_PROVIDER") == "" {
		cfg.Provider = *fc.LLM.Provider
	}
	if fc.LLM.Model != nil && *fc.LLM.Model != "" {
		switch cfg.Provider {
		case "anthropic":
			cfg.Anthropic.Model = *fc.LLM.Model
		case "openai":
			cfg.OpenAI.Model = *fc.LLM.Model
		case "gemini":
			cfg.Gemini.Model = *fc.LLM.Model
		case "openrouter":
			cfg.OpenRouter.Model = *fc.LLM.Model
		}
	}

	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}

	return llm.NewProvider(cmd.Context(), cfg, events)
}
