package config

import (
	"fmt"
	"strings"

	"github.com/fjglira/mdsite/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Input.Directory == "" {
		errs = append(errs, "input.directory must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}

	if cfg.Template.File != "" && cfg.Template.Directory != "" {
		errs = append(errs, "template.file and template.directory are mutually exclusive")
	}

	if cfg.Build.Workers < 1 {
		errs = append(errs, fmt.Sprintf("build.workers must be at least 1 (got %d)", cfg.Build.Workers))
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError(domain.PhaseConfig, "", fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
