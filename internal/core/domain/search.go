package domain

// SearchResult represents a single excerpt-level search hit.
type SearchResult struct {
	// Section is the name of the section that matched.
	Section string `json:"section"`

	// Relevance is a fixed score for substring matches.
	Relevance float64 `json:"relevance"`

	// Excerpt is a bounded window of original-case text around the
	// first occurrence of the query, wrapped in ellipsis markers.
	Excerpt string `json:"excerpt"`

	// FullLength echoes the section's stored length, when present.
	FullLength *int `json:"full_length,omitempty"`
}

// SearchOutput is the result of a knowledge-base search.
type SearchOutput struct {
	Query   string `json:"query"`
	Section string `json:"section"`

	// Results holds at most the requested number of hits,
	// in section order.
	Results []SearchResult `json:"results"`

	// TotalFound is the untruncated hit count.
	TotalFound int `json:"total_found"`
}

// SemanticSearchOutput wraps a keyword search behind the semantic
// search tool. Threshold is echoed but never applied; Note says so.
type SemanticSearchOutput struct {
	Query      string         `json:"query"`
	Threshold  float64        `json:"threshold"`
	Results    []SearchResult `json:"results"`
	TotalFound int            `json:"total_found"`
	Note       string         `json:"note"`
}
