// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds generate-reqs configuration
type Config struct {
	Output       string   `yaml:"output"`        // destination manifest path
	CondaCommand string   `yaml:"conda_command"` // conda executable to invoke
	Exclude      []string `yaml:"exclude"`       // extra package names to exclude
	Debug        bool     `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output:       "requirements.txt",
		CondaCommand: "conda",
	}
}

// LoadConfig loads configuration from file. A missing file yields defaults;
// fields left empty in the file fall back to their defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "generate-reqs", "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	defaults := DefaultConfig()
	if cfg.Output == "" {
		cfg.Output = defaults.Output
	}
	if cfg.CondaCommand == "" {
		cfg.CondaCommand = defaults.CondaCommand
	}

	return &cfg, nil
}
