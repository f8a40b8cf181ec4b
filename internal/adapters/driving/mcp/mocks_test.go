package mcp

import (
	"context"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	search    *domain.SearchOutput
	semantic  *domain.SemanticSearchOutput
	extract   *domain.ExtractOutput
	entityCtx *domain.EntityContext
	metadata  *domain.MetadataReport
	err       error

	lastSection    string
	lastMaxResults int
	lastDepth      int
	lastThreshold  float64
}

func (m *mockQueryService) Search(
	_ context.Context, _, section string, maxResults int,
) (*domain.SearchOutput, error) {
	m.lastSection = section
	m.lastMaxResults = maxResults
	return m.search, m.err
}

func (m *mockQueryService) SemanticSearch(
	_ context.Context, _ string, threshold float64,
) (*domain.SemanticSearchOutput, error) {
	m.lastThreshold = threshold
	return m.semantic, m.err
}

func (m *mockQueryService) ExtractEntities(
	_ context.Context, section string,
) (*domain.ExtractOutput, error) {
	m.lastSection = section
	return m.extract, m.err
}

func (m *mockQueryService) BuildContext(
	_ context.Context, _ string, depth int,
) (*domain.EntityContext, error) {
	m.lastDepth = depth
	return m.entityCtx, m.err
}

func (m *mockQueryService) Metadata(_ context.Context) (*domain.MetadataReport, error) {
	return m.metadata, m.err
}

// mockDocumentSource is a mock implementation of driven.DocumentSource.
type mockDocumentSource struct {
	doc *domain.Document
}

func (m *mockDocumentSource) Load(_ context.Context) *domain.Document {
	if m.doc != nil {
		return m.doc
	}
	return domain.SentinelDocument()
}
