package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/exporta-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/exporta-cli/internal/i18n"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive conversion setup",
	Long: `Collects the conversion options in an interactive form and runs the
conversion. Choices for the toggles and language are persisted as the
defaults for future runs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSetup(cmd)
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command) error {
	if converterFactory == nil {
		return errors.New("converter not configured")
	}

	model := tui.NewSetup(setupDefaults())

	p := tea.NewProgram(model)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("setup form: %w", err)
	}

	result, confirmed := final.(*tui.Model).Result()
	if !confirmed {
		return nil
	}

	saveSetupDefaults(result)
	i18n.SetLanguage(result.Language)

	converter, _, err := converterFactory(result.InputDir, result.Recursive)
	if err != nil {
		return err
	}

	req := driving.ConvertRequest{
		OutputPath:          result.OutputPath,
		Beautify:            result.Beautify,
		IncludeCustomFields: result.IncludeCustomFields,
		IncludeRawItem:      result.IncludeRawItem,
	}

	return convertOnce(cmd, converter, req)
}

// setupDefaults seeds the form from the persisted configuration.
func setupDefaults() tui.Result {
	defaults := tui.Result{
		OutputPath: "issues.jsonl",
		Language:   i18n.Language(),
	}
	if configStore == nil {
		return defaults
	}
	defaults.Recursive = configStore.GetBool(file.KeyRecursive)
	defaults.IncludeCustomFields = configStore.GetBool(file.KeyIncludeCustomFields)
	defaults.IncludeRawItem = configStore.GetBool(file.KeyIncludeRawItem)
	defaults.Beautify = configStore.GetBool(file.KeyBeautify)
	if lang := configStore.GetString(file.KeyLanguage); lang != "" {
		defaults.Language = lang
	}
	return defaults
}

// saveSetupDefaults persists the confirmed choices. Best effort; a
// failed save never blocks the conversion.
func saveSetupDefaults(result tui.Result) {
	if configStore == nil {
		return
	}
	configStore.Set(file.KeyRecursive, result.Recursive)                     //nolint:errcheck
	configStore.Set(file.KeyIncludeCustomFields, result.IncludeCustomFields) //nolint:errcheck
	configStore.Set(file.KeyIncludeRawItem, result.IncludeRawItem)           //nolint:errcheck
	configStore.Set(file.KeyBeautify, result.Beautify)                       //nolint:errcheck
	configStore.Set(file.KeyLanguage, result.Language)                       //nolint:errcheck
}
