package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/i18n"
)

var (
	catalogSearchLimit int
	catalogJSON        bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse previously converted records",
	Long: `Query the local catalog of converted records.

Every conversion run saves its records to a local catalog, so past
results stay queryable without re-reading the export files.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all catalogued records",
	RunE:  runCatalogList,
}

var catalogGetCmd = &cobra.Command{
	Use:   "get [issue-key]",
	Short: "Show one record by key",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogGet,
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search record text",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogSearch,
}

func init() {
	catalogSearchCmd.Flags().IntVarP(&catalogSearchLimit, "limit", "n", 10, "maximum number of results")
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "output records as JSON")
	catalogSearchCmd.Flags().BoolVar(&catalogJSON, "json", false, "output records as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	issues, err := catalogService.List(context.Background())
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}

	if len(issues) == 0 {
		cmd.Println(i18n.T("catalog.empty"))
		return nil
	}

	if catalogJSON {
		return outputIssuesJSON(cmd, issues)
	}

	for _, issue := range issues {
		printIssueLine(cmd, issue)
	}
	cmd.Println()
	cmd.Println(i18n.T("catalog.total", len(issues)))
	return nil
}

func runCatalogGet(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	issue, err := catalogService.Get(context.Background(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no record for key %s", args[0])
		}
		return fmt.Errorf("get record: %w", err)
	}

	data, err := json.MarshalIndent(issue, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	query := args[0]
	issues, err := catalogService.Search(context.Background(), query, catalogSearchLimit)
	if err != nil {
		return fmt.Errorf("search catalog: %w", err)
	}

	if len(issues) == 0 {
		cmd.Println(i18n.T("catalog.no_results", query))
		return nil
	}

	if catalogJSON {
		return outputIssuesJSON(cmd, issues)
	}

	for _, issue := range issues {
		printIssueLine(cmd, issue)
	}
	return nil
}

func outputIssuesJSON(cmd *cobra.Command, issues []*domain.Issue) error {
	data, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func printIssueLine(cmd *cobra.Command, issue *domain.Issue) {
	summary := issue.Summary
	if summary == "" {
		summary = issue.Title
	}
	cmd.Printf("  %s  %s\n", renderKey(issue.Key), summary)
	if issue.Status != "" || issue.Type != "" {
		cmd.Printf("      %s\n", renderFaint(fmt.Sprintf("%s %s", issue.Type, issue.Status)))
	}
}
