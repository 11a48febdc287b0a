package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fjglira/mdsite/internal/config"
	"github.com/fjglira/mdsite/internal/parser"
	"github.com/fjglira/mdsite/internal/renderer"
	"github.com/fjglira/mdsite/internal/scanner"
	"github.com/fjglira/mdsite/internal/site"
	tmpl "github.com/fjglira/mdsite/internal/template"
)

var (
	srcDir       string
	outDir       string
	templateFile string
	templateDir  string
	drafts       bool
	workers      int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Convert Markdown sources into the HTML output tree",
	Long:  `Scans the source directory, converts every Markdown file, and writes a mirrored .html tree. A failing file is reported but never aborts the rest of the batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		applyFlags(cmd, cfg)

		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}

		if !verbose && cfg.Logging.Level != "" {
			if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
				log.SetLevel(level)
			}
		}

		log.Infof("Source directory: %s", cfg.Input.Directory)
		log.Infof("Output directory: %s", cfg.Output.Directory)

		return runBuild(cfg)
	},
}

func init() {
	buildCmd.Flags().StringVarP(&srcDir, "source", "d", "", "source directory (overrides input.directory)")
	buildCmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (overrides output.directory)")
	buildCmd.Flags().StringVar(&templateFile, "template", "", "page template file with a {{.Content}} substitution point")
	buildCmd.Flags().StringVar(&templateDir, "template-dir", "", "directory holding header.html and footer.html")
	buildCmd.Flags().BoolVar(&drafts, "drafts", false, "also convert pages marked draft: true")
	buildCmd.Flags().IntVar(&workers, "workers", 0, "number of concurrent conversion workers")

	rootCmd.AddCommand(buildCmd)
}

// loadConfig reads the config file. A missing file is fine as long as the
// user did not ask for a specific one: the defaults describe a working
// docs -> public build.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if cfgFile == "mdsite.yaml" {
			return config.DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config file %q does not exist", cfgFile)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyFlags overlays command-line flags onto the loaded config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if srcDir != "" {
		cfg.Input.Directory = srcDir
	}
	if outDir != "" {
		cfg.Output.Directory = outDir
	}
	if templateFile != "" {
		cfg.Template.File = templateFile
		cfg.Template.Directory = ""
	}
	if templateDir != "" {
		cfg.Template.Directory = templateDir
		cfg.Template.File = ""
	}
	if cmd.Flags().Changed("drafts") {
		cfg.Build.Drafts = drafts
	}
	if cmd.Flags().Changed("workers") {
		cfg.Build.Workers = workers
	}
	if dryRun {
		cfg.DryRun = true
	}
}

// runBuild wires all components and runs the builder.
func runBuild(cfg *config.Config) error {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	s := scanner.NewScanner(recursive)

	registry := parser.NewRegistry()
	registry.Register(parser.NewMarkdownParser())

	engine, err := tmpl.NewEngine(cfg.Template, log)
	if err != nil {
		return fmt.Errorf("failed to create template engine: %w", err)
	}

	builder := site.NewBuilder(s, registry, renderer.New(), engine, log)
	report, err := builder.Build(cfg)
	if err != nil {
		return err
	}

	if report.Failed() {
		return fmt.Errorf("%d file(s) failed to convert", len(report.Failures))
	}
	return nil
}
