package domain

import "encoding/json"

// MetadataReport summarises the loaded document.
type MetadataReport struct {
	// Metadata echoes the document's metadata block.
	Metadata map[string]any `json:"metadata"`

	// SectionsAvailable lists section names in source order.
	SectionsAvailable []string `json:"sections_available"`

	// TotalContentLength sums full_length across sections,
	// treating a missing value as 0.
	TotalContentLength int `json:"total_content_length"`

	// RAGVectors and CAGContext echo the document's opaque blocks
	// when present.
	RAGVectors json.RawMessage `json:"rag_vectors,omitempty"`
	CAGContext json.RawMessage `json:"cag_context,omitempty"`
}
