// Package mcp provides an MCP (Model Context Protocol) server adapter
// for kbserve. It exposes the knowledge base to AI assistants as tools
// and resources over stdio or HTTP.
package mcp

import "errors"

var (
	// ErrMissingQueryService is returned when the query service is not provided.
	ErrMissingQueryService = errors.New("mcp: query service is required")

	// ErrMissingDocumentSource is returned when the document source is not provided.
	ErrMissingDocumentSource = errors.New("mcp: document source is required")
)
