package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/exporta-cli/internal/i18n"
	"github.com/custodia-labs/exporta-cli/internal/logger"
)

var (
	convertOutput       string
	convertRecursive    bool
	convertCustomFields bool
	convertRawItem      bool
	convertBeautify     bool
	convertFailFast     bool
	convertSkipCatalog  bool
	convertWatch        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [input-folder]",
	Short: "Convert a folder of XML exports to JSONL",
	Long: `Scans a folder for XML export files, extracts one record per issue,
deduplicates across files, and writes the records sorted by key as
line-delimited JSON.

Files that cannot be parsed are reported and skipped; the remaining
files still convert. Use --fail-fast to stop at the first bad file.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "issues.jsonl", "output file path")
	convertCmd.Flags().BoolVarP(&convertRecursive, "recursive", "r", false, "scan subfolders too")
	convertCmd.Flags().BoolVar(&convertCustomFields, "include-customfields", false, "extract custom fields into records and text")
	convertCmd.Flags().BoolVar(&convertRawItem, "include-raw-item", false, "keep the verbatim source XML on each record")
	convertCmd.Flags().BoolVarP(&convertBeautify, "beautify", "b", false, "also write an indented .pretty.json copy")
	convertCmd.Flags().BoolVar(&convertFailFast, "fail-fast", false, "stop at the first file that fails to parse")
	convertCmd.Flags().BoolVar(&convertSkipCatalog, "skip-catalog", false, "do not save converted records to the local catalog")
	convertCmd.Flags().BoolVarP(&convertWatch, "watch", "w", false, "re-run the conversion when the folder changes")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converterFactory == nil {
		return errors.New("converter not configured")
	}

	applyConvertDefaults(cmd)

	inputDir := args[0]
	converter, source, err := converterFactory(inputDir, convertRecursive)
	if err != nil {
		return err
	}

	req := driving.ConvertRequest{
		OutputPath:          convertOutput,
		Beautify:            convertBeautify,
		IncludeCustomFields: convertCustomFields,
		IncludeRawItem:      convertRawItem,
		FailFast:            convertFailFast,
		SkipCatalog:         convertSkipCatalog,
	}

	if !convertWatch {
		logger.Info(i18n.T("convert.scanning", inputDir))
		return convertOnce(cmd, converter, req)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	events, err := source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch %s: %w", inputDir, err)
	}

	cmd.Println(i18n.T("convert.watching", inputDir))

	if err := convertOnce(cmd, converter, req); err != nil {
		// In watch mode a bad run is reported, not fatal; the next
		// change gets another attempt.
		logger.Warn("%v", err)
	}

	for range events {
		if err := convertOnce(cmd, converter, req); err != nil {
			logger.Warn("%v", err)
		}
	}

	return nil
}

func convertOnce(cmd *cobra.Command, converter driving.Converter, req driving.ConvertRequest) error {
	report, err := converter.Convert(cmd.Context(), req)
	if err != nil {
		return err
	}

	cmd.Println(renderSuccess(i18n.T("convert.written", report.IssuesWritten, report.OutputPath)))
	if report.PrettyPath != "" {
		cmd.Println(i18n.T("convert.pretty_written", report.PrettyPath))
	}

	if report.Failed() {
		for _, failure := range report.Failures {
			cmd.Println(renderWarning(fmt.Sprintf("  %s: %s", failure.File, failure.Cause)))
		}
		return fmt.Errorf("%d of %d documents failed", len(report.Failures), report.FilesRead)
	}

	return nil
}

// applyConvertDefaults fills flags the user did not set from the
// persisted configuration.
func applyConvertDefaults(cmd *cobra.Command) {
	if configStore == nil {
		return
	}
	flags := cmd.Flags()
	if !flags.Changed("recursive") {
		convertRecursive = configStore.GetBool(file.KeyRecursive)
	}
	if !flags.Changed("include-customfields") {
		convertCustomFields = configStore.GetBool(file.KeyIncludeCustomFields)
	}
	if !flags.Changed("include-raw-item") {
		convertRawItem = configStore.GetBool(file.KeyIncludeRawItem)
	}
	if !flags.Changed("beautify") {
		convertBeautify = configStore.GetBool(file.KeyBeautify)
	}
	if !flags.Changed("fail-fast") {
		convertFailFast = configStore.GetBool(file.KeyFailFast)
	}
}
