package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. All fields are
// pointers so that unset values can be told apart from zero values; env
// vars and flags override whatever is set here.
type FileConfig struct {
	LLM   LLMConfig   `toml:"llm"`
	Paths PathsConfig `toml:"paths"`
}

// LLMConfig maps provider settings.
type LLMConfig struct {
	Provider *string `toml:"provider"`
	Model    *string `toml:"model"`
}

// PathsConfig maps storage path overrides.
type PathsConfig struct {
	Data *string `toml:"data"`
	DB   *string `toml:"db"`
	Log  *string `toml:"log"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
