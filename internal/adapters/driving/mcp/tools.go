package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

// QueryInput is the input schema for the rag_query tool.
type QueryInput struct {
	Query      string `json:"query" jsonschema:"the text to look for in the knowledge base"`
	Section    string `json:"section,omitempty" jsonschema:"section to search: faq, sessions, triggers, safety, transcripts or all (default all)"`
	MaxResults int    `json:"max_results,omitempty" jsonschema:"maximum number of results to return (default 5)"`
}

// ContextInput is the input schema for the cag_context tool.
type ContextInput struct {
	Entity string `json:"entity" jsonschema:"the entity to build context for"`
	Depth  int    `json:"depth,omitempty" jsonschema:"context depth (default 2); traversal is always one hop"`
}

// ExtractInput is the input schema for the extract_entities tool.
type ExtractInput struct {
	Section string `json:"section" jsonschema:"section to extract entities from: faq, sessions, triggers, safety, transcripts or all"`
}

// SemanticInput is the input schema for the semantic_search tool.
type SemanticInput struct {
	Query     string  `json:"query" jsonschema:"the search query"`
	Threshold float64 `json:"threshold,omitempty" jsonschema:"similarity threshold (default 0.7); accepted but not applied"`
}

// MetadataInput is the (empty) input schema for the get_metadata tool.
type MetadataInput struct{}

// defaultContextDepth is echoed when the caller omits depth.
const defaultContextDepth = 2

// defaultThreshold is echoed when the caller omits threshold.
const defaultThreshold = 0.7

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rag_query",
		Description: "Search the knowledge base and return bounded excerpts around matches",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cag_context",
		Description: "Build one-hop mentioned_in relationships for an entity",
	}, s.handleContext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_entities",
		Description: "Extract notable terms from a section using pattern matching",
	}, s.handleExtract)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "semantic_search",
		Description: "Keyword search presented through a semantic-search interface; the threshold is not applied",
	}, s.handleSemantic)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_metadata",
		Description: "Report document metadata, available sections and total content length",
	}, s.handleMetadata)
}

// handleQuery handles the rag_query tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, domain.SearchOutput, error) {
	out, err := s.ports.Query.Search(ctx, input.Query, input.Section, input.MaxResults)
	if err != nil {
		return nil, domain.SearchOutput{}, err
	}

	res, err := textResult(out)
	return res, *out, err
}

// handleContext handles the cag_context tool invocation.
func (s *Server) handleContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContextInput,
) (*mcp.CallToolResult, domain.EntityContext, error) {
	depth := input.Depth
	if depth == 0 {
		depth = defaultContextDepth
	}

	out, err := s.ports.Query.BuildContext(ctx, input.Entity, depth)
	if err != nil {
		return nil, domain.EntityContext{}, err
	}

	res, err := textResult(out)
	return res, *out, err
}

// handleExtract handles the extract_entities tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, domain.ExtractOutput, error) {
	out, err := s.ports.Query.ExtractEntities(ctx, input.Section)
	if err != nil {
		return nil, domain.ExtractOutput{}, err
	}

	res, err := textResult(out)
	return res, *out, err
}

// handleSemantic handles the semantic_search tool invocation.
func (s *Server) handleSemantic(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SemanticInput,
) (*mcp.CallToolResult, domain.SemanticSearchOutput, error) {
	threshold := input.Threshold
	if threshold == 0 {
		threshold = defaultThreshold
	}

	out, err := s.ports.Query.SemanticSearch(ctx, input.Query, threshold)
	if err != nil {
		return nil, domain.SemanticSearchOutput{}, err
	}

	res, err := textResult(out)
	return res, *out, err
}

// handleMetadata handles the get_metadata tool invocation.
func (s *Server) handleMetadata(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ MetadataInput,
) (*mcp.CallToolResult, domain.MetadataReport, error) {
	out, err := s.ports.Query.Metadata(ctx)
	if err != nil {
		return nil, domain.MetadataReport{}, err
	}

	res, err := textResult(out)
	return res, *out, err
}

// textResult wraps an operation result as pretty-printed JSON text
// content, alongside the structured output the SDK derives.
func textResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}
