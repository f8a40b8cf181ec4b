package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

func newTestServer(t *testing.T, query *mockQueryService) *Server {
	t.Helper()
	server, err := NewServer(&Ports{
		Query: query,
		Store: &mockDocumentSource{},
	})
	require.NoError(t, err)
	return server
}

func TestHandleQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("returns pretty JSON text alongside structured output", func(t *testing.T) {
		query := &mockQueryService{search: &domain.SearchOutput{
			Query:   "hypnosis",
			Section: "faq",
			Results: []domain.SearchResult{
				{Section: "faq", Relevance: 0.9, Excerpt: "...Bambi is a hypnosis persona...."},
			},
			TotalFound: 1,
		}}
		server := newTestServer(t, query)

		res, out, err := server.handleQuery(ctx, nil, QueryInput{Query: "hypnosis", Section: "faq"})
		require.NoError(t, err)

		assert.Equal(t, 1, out.TotalFound)
		require.NotNil(t, res)
		require.Len(t, res.Content, 1)

		text, ok := res.Content[0].(*mcp.TextContent)
		require.True(t, ok)
		assert.Contains(t, text.Text, `"total_found": 1`)
		assert.Contains(t, text.Text, "hypnosis persona")
	})

	t.Run("service error propagates for the SDK to flag", func(t *testing.T) {
		query := &mockQueryService{err: errors.New("boom")}
		server := newTestServer(t, query)

		res, _, err := server.handleQuery(ctx, nil, QueryInput{Query: "x"})
		require.Error(t, err)
		assert.Nil(t, res)
	})

	t.Run("section and limit pass through unmodified", func(t *testing.T) {
		query := &mockQueryService{search: &domain.SearchOutput{Results: []domain.SearchResult{}}}
		server := newTestServer(t, query)

		_, _, err := server.handleQuery(ctx, nil, QueryInput{Query: "x", Section: "triggers", MaxResults: 3})
		require.NoError(t, err)
		assert.Equal(t, "triggers", query.lastSection)
		assert.Equal(t, 3, query.lastMaxResults)
	})
}

func TestHandleContext(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults depth to 2", func(t *testing.T) {
		query := &mockQueryService{entityCtx: &domain.EntityContext{
			Entity:          "Bambi",
			Depth:           2,
			Relationships:   []domain.Relationship{},
			RelatedEntities: []string{},
		}}
		server := newTestServer(t, query)

		_, out, err := server.handleContext(ctx, nil, ContextInput{Entity: "Bambi"})
		require.NoError(t, err)
		assert.Equal(t, 2, query.lastDepth)
		assert.Empty(t, out.RelatedEntities)
	})

	t.Run("explicit depth is forwarded", func(t *testing.T) {
		query := &mockQueryService{entityCtx: &domain.EntityContext{}}
		server := newTestServer(t, query)

		_, _, err := server.handleContext(ctx, nil, ContextInput{Entity: "Bambi", Depth: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, query.lastDepth)
	})
}

func TestHandleSemantic(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults threshold to 0.7", func(t *testing.T) {
		query := &mockQueryService{semantic: &domain.SemanticSearchOutput{Note: "n"}}
		server := newTestServer(t, query)

		_, _, err := server.handleSemantic(ctx, nil, SemanticInput{Query: "x"})
		require.NoError(t, err)
		assert.Equal(t, 0.7, query.lastThreshold)
	})
}

func TestHandleExtract(t *testing.T) {
	query := &mockQueryService{extract: &domain.ExtractOutput{
		Section:        "all",
		Entities:       []domain.Entity{{Entity: "Bambi", Type: "extracted", Source: "faq"}},
		TotalExtracted: 1,
	}}
	server := newTestServer(t, query)

	res, out, err := server.handleExtract(context.Background(), nil, ExtractInput{Section: "all"})
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalExtracted)
	require.NotNil(t, res)
}

func TestHandleMetadata(t *testing.T) {
	query := &mockQueryService{metadata: &domain.MetadataReport{
		SectionsAvailable:  []string{"faq"},
		TotalContentLength: 27,
	}}
	server := newTestServer(t, query)

	res, out, err := server.handleMetadata(context.Background(), nil, MetadataInput{})
	require.NoError(t, err)
	assert.Equal(t, 27, out.TotalContentLength)
	require.NotNil(t, res)
}
