package driven

import (
	"context"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// DocumentSource supplies export documents to the conversion pipeline.
// Backed by a folder of XML export files.
type DocumentSource interface {
	// List returns the available export documents in deterministic
	// order. Returns domain.ErrNoDocuments when the source is empty.
	List(ctx context.Context) ([]domain.ExportDocument, error)

	// Read returns the raw bytes of one export document.
	Read(ctx context.Context, doc domain.ExportDocument) ([]byte, error)

	// Watch emits an event whenever the source's documents change.
	// The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
