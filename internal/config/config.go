package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjglira/mdsite/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Template TemplateConfig `yaml:"template"`
	Build    BuildConfig    `yaml:"build"`
	Logging  LoggingConfig  `yaml:"logging"`
	DryRun   bool           `yaml:"dry_run"`
}

type InputConfig struct {
	Directory string   `yaml:"directory"`
	Include   []string `yaml:"include"`
	Exclude   []string `yaml:"exclude"`
	Recursive *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// TemplateConfig selects how rendered bodies are wrapped into pages.
// File wins over Directory; with neither set a built-in page is used.
type TemplateConfig struct {
	File      string `yaml:"file"`      // single template with a {{.Content}} substitution point
	Directory string `yaml:"directory"` // holds header.html / footer.html
}

type BuildConfig struct {
	Workers int  `yaml:"workers"`
	Drafts  bool `yaml:"drafts"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError(domain.PhaseConfig, path, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError(domain.PhaseConfig, path, "failed to parse config file", err)
	}

	return cfg, nil
}
