// Package memory provides an in-memory catalog store. It backs the
// catalog when the SQLite database cannot be opened, so a conversion
// run still works end to end; records simply do not survive the
// process.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore is an in-memory implementation of driven.CatalogStore.
type CatalogStore struct {
	mu     sync.RWMutex
	issues map[string]domain.Issue
}

// NewCatalogStore creates a new in-memory catalog store.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		issues: make(map[string]domain.Issue),
	}
}

// SaveIssues stores or updates converted records, keyed by issue key.
func (s *CatalogStore) SaveIssues(_ context.Context, issues []*domain.Issue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, issue := range issues {
		s.issues[issue.Key] = *issue
	}
	return nil
}

// GetIssue retrieves a record by issue key.
func (s *CatalogStore) GetIssue(_ context.Context, key string) (*domain.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	issue, ok := s.issues[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &issue, nil
}

// ListIssues returns all records ordered by key.
func (s *CatalogStore) ListIssues(_ context.Context) ([]*domain.Issue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(domain.Issue) bool { return true }, 0), nil
}

// SearchIssues returns records whose canonical text contains the query,
// case-insensitively, ordered by key.
func (s *CatalogStore) SearchIssues(_ context.Context, query string, limit int) ([]*domain.Issue, error) {
	if limit <= 0 {
		limit = 10
	}
	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(issue domain.Issue) bool {
		return strings.Contains(strings.ToLower(issue.Text), needle)
	}, limit), nil
}

// Close is a no-op for the in-memory store.
func (s *CatalogStore) Close() error {
	return nil
}

// sorted returns matching records in key order, truncated to limit when
// limit is positive. Callers hold the read lock.
func (s *CatalogStore) sorted(match func(domain.Issue) bool, limit int) []*domain.Issue {
	keys := make([]string, 0, len(s.issues))
	for key, issue := range s.issues {
		if match(issue) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	issues := make([]*domain.Issue, len(keys))
	for i, key := range keys {
		issue := s.issues[key]
		issues[i] = &issue
	}
	return issues
}
