package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.LLM.Provider)
	assert.Nil(t, cfg.Paths.Data)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[llm]
provider = "gemini"
model = "gemini-flash"

[paths]
data = "/tmp/c.json"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.LLM.Provider)
	assert.Equal(t, "gemini", *cfg.LLM.Provider)
	require.NotNil(t, cfg.LLM.Model)
	assert.Equal(t, "gemini-flash", *cfg.LLM.Model)
	require.NotNil(t, cfg.Paths.Data)
	assert.Equal(t, "/tmp/c.json", *cfg.Paths.Data)
	assert.Nil(t, cfg.Paths.DB)
}

func TestLoadConfigRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
