// Package cli implements the cobra command tree for the exporta binary.
// Services are injected once via Configure; commands read them from
// package-level variables the way cobra's init-registration expects.
package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/exporta-cli/internal/i18n"
	"github.com/custodia-labs/exporta-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// ConverterFactory builds a converter bound to one input folder. The
// returned source is the same one the converter scans, exposed so watch
// mode can subscribe to change events.
type ConverterFactory func(inputDir string, recursive bool) (driving.Converter, driven.DocumentSource, error)

// Config holds the wired services for the CLI.
type Config struct {
	Converter   ConverterFactory
	Catalog     driving.Catalog
	ConfigStore driven.ConfigStore
}

var (
	converterFactory ConverterFactory
	catalogService   driving.Catalog
	configStore      driven.ConfigStore
)

// Configure injects the services the commands depend on. Call before
// Execute.
func Configure(config *Config) {
	if config == nil {
		return
	}
	converterFactory = config.Converter
	catalogService = config.Catalog
	configStore = config.ConfigStore
}

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "exporta",
	Short: "Convert issue-tracker XML exports into search-ready JSONL",
	Long: `Exporta converts folders of issue-tracker XML export files into a
single line-delimited JSON file ready for search indexing.

Each issue becomes one flat record with a canonical plain-text rendering
of its fields. Records seen in multiple export files are deduplicated,
keeping the most detailed version.

Run without arguments to start the interactive setup.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		if configStore != nil {
			if lang := configStore.GetString("language"); lang != "" {
				i18n.SetLanguage(lang)
			}
		}
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose progress output")
}

// Execute runs the command tree. The caller maps the returned error to
// an exit code.
func Execute() error {
	return rootCmd.Execute()
}

// runRoot starts the interactive setup when attached to a terminal,
// otherwise prints usage.
func runRoot(cmd *cobra.Command, _ []string) error {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return runSetup(cmd)
	}
	return cmd.Help()
}
