package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// GetInput is the input schema for the issue_get tool.
type GetInput struct {
	Key string `json:"key" jsonschema:"the issue key, e.g. PROJ-123"`
}

// GetOutput is the output schema for the issue_get tool.
type GetOutput struct {
	Issue IssueOutput `json:"issue"`
}

// SearchInput is the input schema for the issue_search tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"text to search for in issue records"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// SearchOutput is the output schema for the issue_search tool.
type SearchOutput struct {
	Results []IssueOutput `json:"results"`
	Count   int           `json:"count"`
}

// IssueOutput is the flat record shape returned by the tools.
type IssueOutput struct {
	Key        string `json:"key"`
	Type       string `json:"type,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Status     string `json:"status,omitempty"`
	Priority   string `json:"priority,omitempty"`
	Assignee   string `json:"assignee,omitempty"`
	Reporter   string `json:"reporter,omitempty"`
	Project    string `json:"project,omitempty"`
	Text       string `json:"text,omitempty"`
	SourceFile string `json:"source_file,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "issue_get",
		Description: "Look up one converted issue record by its key",
	}, s.handleGet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "issue_search",
		Description: "Search the converted issue records by text",
	}, s.handleSearch)
}

// handleGet handles the issue_get tool invocation.
func (s *Server) handleGet(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, GetOutput, error) {
	issue, err := s.ports.Catalog.Get(ctx, input.Key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, GetOutput{}, fmt.Errorf("no record for key %s", input.Key)
		}
		return nil, GetOutput{}, err
	}

	return nil, GetOutput{Issue: issueOutput(issue)}, nil
}

// handleSearch handles the issue_search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	issues, err := s.ports.Catalog.Search(ctx, input.Query, limit)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]IssueOutput, len(issues)),
		Count:   len(issues),
	}
	for i := range issues {
		output.Results[i] = issueOutput(issues[i])
	}

	return nil, output, nil
}

func issueOutput(issue *domain.Issue) IssueOutput {
	return IssueOutput{
		Key:        issue.Key,
		Type:       issue.Type,
		Summary:    issue.Summary,
		Status:     issue.Status,
		Priority:   issue.Priority,
		Assignee:   issue.Assignee,
		Reporter:   issue.Reporter,
		Project:    issue.Project.Key,
		Text:       issue.Text,
		SourceFile: issue.SourceFile,
	}
}
