package services

import (
	"sort"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
)

// Aggregate deduplicates issues across source documents by key. While
// accumulating it retains the structurally richest version seen per key;
// once finalized it is read-only. Not safe for concurrent use: one
// conversion run owns one aggregate.
type Aggregate struct {
	byKey     map[string]*domain.Issue
	finalized bool
}

// NewAggregate creates an empty aggregate.
func NewAggregate() *Aggregate {
	return &Aggregate{byKey: make(map[string]*domain.Issue)}
}

// Offer submits an issue. The first version of a key is kept; a later
// version replaces it only when its weight is strictly greater, so ties
// go to the first-seen version and document processing order is part of
// the contract. Callers needing reproducible output must process
// documents in deterministic order.
func (a *Aggregate) Offer(issue *domain.Issue) error {
	if a.finalized {
		return domain.ErrAggregateFinalized
	}
	if issue == nil {
		return domain.ErrInvalidInput
	}

	previous, ok := a.byKey[issue.Key]
	if !ok || domain.IssueWeight(issue) > domain.IssueWeight(previous) {
		a.byKey[issue.Key] = issue
	}
	return nil
}

// Len returns the number of distinct keys accumulated so far.
func (a *Aggregate) Len() int {
	return len(a.byKey)
}

// Finalize marks the aggregate read-only and drains it as a key-sorted
// sequence, ordinal ascending.
func (a *Aggregate) Finalize() []*domain.Issue {
	a.finalized = true

	keys := make([]string, 0, len(a.byKey))
	for key := range a.byKey {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	issues := make([]*domain.Issue, len(keys))
	for n, key := range keys {
		issues[n] = a.byKey[key]
	}
	return issues
}
