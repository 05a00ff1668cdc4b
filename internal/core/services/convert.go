package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/exporta-cli/internal/feed"
	"github.com/custodia-labs/exporta-cli/internal/logger"
)

// Ensure ConvertService implements the interface.
var _ driving.Converter = (*ConvertService)(nil)

// ConvertService runs the conversion pipeline: it scans the document
// source in order, extracts issues from every document, deduplicates
// them through an Aggregate, and writes the sorted result. Processing is
// strictly sequential; one document is fully extracted and offered
// before the next is read.
type ConvertService struct {
	source  driven.DocumentSource
	writer  driven.ExportWriter
	catalog driven.CatalogStore
}

// NewConvertService creates a new convert service. The catalog store is
// optional - when nil, converted records are simply not catalogued.
func NewConvertService(
	source driven.DocumentSource,
	writer driven.ExportWriter,
	catalog driven.CatalogStore,
) *ConvertService {
	return &ConvertService{
		source:  source,
		writer:  writer,
		catalog: catalog,
	}
}

// Convert processes every document from the source and writes the final
// records. Document-level failures land in the report; record-level
// rejections (items whose key fails the pattern) are skipped silently
// because exports legitimately contain non-issue filler nodes.
func (s *ConvertService) Convert(ctx context.Context, req driving.ConvertRequest) (*driving.ConvertReport, error) {
	if s.source == nil || s.writer == nil {
		return nil, fmt.Errorf("convert service not fully configured")
	}

	docs, err := s.source.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	opts := feed.Options{
		IncludeCustomFields: req.IncludeCustomFields,
		IncludeRawItem:      req.IncludeRawItem,
	}

	report := &driving.ConvertReport{
		FilesRead:  len(docs),
		OutputPath: req.OutputPath,
	}

	logger.Section("Convert")
	logger.Info("Processing %d documents", len(docs))

	aggregate := NewAggregate()

	for _, doc := range docs {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if err := s.convertDocument(ctx, doc, opts, aggregate); err != nil {
			logger.Warn("Document %s failed: %v", doc.Name, err)
			report.Failures = append(report.Failures, driving.DocumentFailure{
				File:  doc.Name,
				Cause: err.Error(),
			})
			if req.FailFast {
				break
			}
		}
	}

	issues := aggregate.Finalize()
	report.IssuesWritten = len(issues)

	if err := s.writer.WriteLines(ctx, req.OutputPath, issues); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	if req.Beautify {
		pretty := prettyPath(req.OutputPath)
		if err := s.writer.WritePretty(ctx, pretty, issues); err != nil {
			return nil, fmt.Errorf("write pretty output: %w", err)
		}
		report.PrettyPath = pretty
	}

	if s.catalog != nil && !req.SkipCatalog {
		if err := s.catalog.SaveIssues(ctx, issues); err != nil {
			return nil, fmt.Errorf("save catalog: %w", err)
		}
	}

	logger.Info("Wrote %d issues (%d document failures)", report.IssuesWritten, len(report.Failures))
	return report, nil
}

// convertDocument extracts one document's items into the aggregate.
func (s *ConvertService) convertDocument(
	ctx context.Context,
	doc domain.ExportDocument,
	opts feed.Options,
	aggregate *Aggregate,
) error {
	data, err := s.source.Read(ctx, doc)
	if err != nil {
		return err
	}

	items, err := feed.ParseItems(data)
	if err != nil {
		return err
	}

	for _, item := range items {
		issue := feed.ItemToIssue(item, doc.Name, opts)
		if issue == nil {
			continue
		}
		if err := aggregate.Offer(issue); err != nil {
			return err
		}
	}
	return nil
}

// prettyPath derives the indented-copy path: the output extension, if
// any, is replaced by ".pretty.json".
func prettyPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".pretty.json"
}
