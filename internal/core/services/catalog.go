package services

import (
	"context"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.Catalog = (*CatalogService)(nil)

// CatalogService provides read access to previously converted records.
type CatalogService struct {
	store driven.CatalogStore
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store driven.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

// Get retrieves a record by issue key.
func (s *CatalogService) Get(ctx context.Context, key string) (*domain.Issue, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.GetIssue(ctx, key)
}

// List returns all catalogued records ordered by key.
func (s *CatalogService) List(ctx context.Context) ([]*domain.Issue, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.ListIssues(ctx)
}

// Search returns records whose canonical text matches the query.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]*domain.Issue, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.SearchIssues(ctx, query, limit)
}
