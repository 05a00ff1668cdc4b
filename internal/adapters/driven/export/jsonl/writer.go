// Package jsonl implements the export writer: line-delimited JSON for
// machine consumption plus an optional indented copy for reading.
package jsonl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ExportWriter = (*Writer)(nil)

// Writer serialises final records to JSON files.
type Writer struct{}

// New creates a new JSONL writer.
func New() *Writer {
	return &Writer{}
}

// WriteLines writes one compact JSON record per line. The destination's
// parent folder is created when missing.
func (w *Writer) WriteLines(_ context.Context, path string, issues []*domain.Issue) error {
	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	for _, issue := range issues {
		if err := enc.Encode(issue); err != nil {
			return fmt.Errorf("encode issue %s: %w", issue.Key, err)
		}
	}
	return f.Close()
}

// WritePretty writes an indented JSON array for human reading.
func (w *Writer) WritePretty(_ context.Context, path string, issues []*domain.Issue) error {
	if issues == nil {
		issues = []*domain.Issue{}
	}

	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(issues); err != nil {
		return fmt.Errorf("encode issues: %w", err)
	}
	return f.Close()
}

func createOutput(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output folder: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output file: %w", err)
	}
	return f, nil
}
