package cli

import (
	"context"

	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driving"
)

// mockConverter is a mock implementation of driving.Converter.
type mockConverter struct {
	report *driving.ConvertReport
	err    error

	lastRequest driving.ConvertRequest
}

func (m *mockConverter) Convert(_ context.Context, req driving.ConvertRequest) (*driving.ConvertReport, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	return &driving.ConvertReport{OutputPath: req.OutputPath}, nil
}

// mockDocSource is a mock implementation of driven.DocumentSource.
type mockDocSource struct {
	events chan struct{}
}

func (m *mockDocSource) List(_ context.Context) ([]domain.ExportDocument, error) {
	return nil, nil
}

func (m *mockDocSource) Read(_ context.Context, _ domain.ExportDocument) ([]byte, error) {
	return nil, nil
}

func (m *mockDocSource) Watch(_ context.Context) (<-chan struct{}, error) {
	if m.events == nil {
		closed := make(chan struct{})
		close(closed)
		return closed, nil
	}
	return m.events, nil
}

// mockCLICatalog is a mock implementation of driving.Catalog.
type mockCLICatalog struct {
	issue  *domain.Issue
	issues []*domain.Issue
	err    error
}

func (m *mockCLICatalog) Get(_ context.Context, _ string) (*domain.Issue, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.issue == nil {
		return nil, domain.ErrNotFound
	}
	return m.issue, nil
}

func (m *mockCLICatalog) List(_ context.Context) ([]*domain.Issue, error) {
	return m.issues, m.err
}

func (m *mockCLICatalog) Search(_ context.Context, _ string, _ int) ([]*domain.Issue, error) {
	return m.issues, m.err
}

// setupTestServices wires mocks into the package-level services and
// returns a cleanup that restores the previous wiring.
func setupTestServices(converter *mockConverter, catalog driving.Catalog) func() {
	oldFactory := converterFactory
	oldCatalog := catalogService
	oldConfig := configStore

	converterFactory = func(_ string, _ bool) (driving.Converter, driven.DocumentSource, error) {
		return converter, &mockDocSource{}, nil
	}
	catalogService = catalog
	configStore = nil

	return func() {
		converterFactory = oldFactory
		catalogService = oldCatalog
		configStore = oldConfig
	}
}
