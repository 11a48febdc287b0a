package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     *logrus.Logger
)

// rootCmd is the base command for mdsite.
var rootCmd = &cobra.Command{
	Use:   "mdsite",
	Short: "Convert a tree of Markdown files into a static HTML site",
	Long: `mdsite walks a source directory, converts every Markdown file to
HTML, and writes a mirrored output tree. Pages are wrapped in a template
(a single file with a {{.Content}} substitution point, or a
header.html/footer.html pair).

Everything is driven by a YAML configuration file (mdsite.yaml); the
build command's flags override it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "mdsite.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "scan and convert but don't write files")

	log = logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
