package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for knowledge-base resources.
	uriScheme = "kb://"

	// structuredURI serves the full document as JSON.
	structuredURI = uriScheme + "data/structured"

	// sectionURIPrefix precedes the section name in text resources.
	sectionURIPrefix = uriScheme + "data/"
)

// sectionResources are the sections exposed as individual text
// resources. Other sections remain reachable through the tools.
var sectionResources = []string{"faq", "sessions", "triggers", "safety"}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         structuredURI,
		Name:        "kb-structured",
		Description: "Full knowledge-base document as JSON",
		MIMEType:    "application/json",
	}, s.handleStructuredResource)

	for _, name := range sectionResources {
		s.server.AddResource(&mcp.Resource{
			URI:         sectionURIPrefix + name,
			Name:        "kb-" + name,
			Description: fmt.Sprintf("Raw text of the %s section", name),
			MIMEType:    "text/plain",
		}, s.handleSectionResource)
	}
}

// handleStructuredResource returns the whole document serialised as JSON.
func (s *Server) handleStructuredResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	doc := s.ports.Store.Load(ctx)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSectionResource returns the raw text of one section.
// A section absent from the document is a not-found failure even
// though the URI is registered.
func (s *Server) handleSectionResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractSectionName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	doc := s.ports.Store.Load(ctx)
	sec, ok := doc.Section(name)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     sec.Content,
		}},
	}, nil
}

// extractSectionName extracts the section name from a URI like
// kb://data/{section}.
func extractSectionName(uri string) string {
	if !strings.HasPrefix(uri, sectionURIPrefix) {
		return ""
	}
	return strings.TrimPrefix(uri, sectionURIPrefix)
}
