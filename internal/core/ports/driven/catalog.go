package driven

import (
	"context"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// CatalogStore persists converted records for later lookup.
// Backed by SQLite. Optional: without it the catalog commands and the
// MCP server are disabled, conversion itself is unaffected.
type CatalogStore interface {
	// SaveIssues stores the final records of a conversion run,
	// replacing any previously stored version of the same keys.
	SaveIssues(ctx context.Context, issues []*domain.Issue) error

	// GetIssue retrieves a record by issue key.
	// Returns domain.ErrNotFound when the key is not catalogued.
	GetIssue(ctx context.Context, key string) (*domain.Issue, error)

	// ListIssues returns all catalogued records ordered by key.
	ListIssues(ctx context.Context) ([]*domain.Issue, error)

	// SearchIssues returns records whose canonical text matches the
	// query, ordered by key, at most limit.
	SearchIssues(ctx context.Context, query string, limit int) ([]*domain.Issue, error)

	// Close releases the underlying storage.
	Close() error
}
