package mcp

import (
	"github.com/custodia-labs/kbserve/internal/core/ports/driven"
	"github.com/custodia-labs/kbserve/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query provides the knowledge-base operations backing the tools.
	Query driving.QueryService

	// Store exposes the raw document for resource reads.
	Store driven.DocumentSource
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	if p.Store == nil {
		return ErrMissingDocumentSource
	}
	return nil
}
