package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	return &Config{
		Input: InputConfig{
			Directory: "docs",
			Include:   []string{"*.md", "*.markdown"},
			Exclude:   []string{".git/**", "vendor/**", "node_modules/**"},
			Recursive: &recursive,
		},
		Output: OutputConfig{
			Directory: "public",
		},
		Template: TemplateConfig{},
		Build: BuildConfig{
			Workers: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
