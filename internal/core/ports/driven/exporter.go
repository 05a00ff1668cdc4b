package driven

import (
	"context"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// ExportWriter serialises final records to output files.
// Serialisation mechanics are an adapter concern; the core only decides
// what to write and in which order.
type ExportWriter interface {
	// WriteLines writes one compact JSON record per line.
	WriteLines(ctx context.Context, path string, issues []*domain.Issue) error

	// WritePretty writes an indented JSON array for human reading.
	WritePretty(ctx context.Context, path string, issues []*domain.Issue) error
}
