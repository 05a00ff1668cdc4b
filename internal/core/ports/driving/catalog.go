package driving

import (
	"context"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// Catalog provides read access to previously converted records.
type Catalog interface {
	// Get retrieves a record by issue key.
	Get(ctx context.Context, key string) (*domain.Issue, error)

	// List returns all catalogued records ordered by key.
	List(ctx context.Context) ([]*domain.Issue, error)

	// Search returns records whose canonical text matches the query.
	Search(ctx context.Context, query string, limit int) ([]*domain.Issue, error)
}
