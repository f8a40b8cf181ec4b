package domain

// RelationshipMentionedIn is the only relationship type the system
// asserts: the entity's text occurs in the target section.
const RelationshipMentionedIn = "mentioned_in"

// Relationship is an asserted edge between a queried entity and a
// section where it textually occurs.
type Relationship struct {
	Type      string  `json:"type"`
	Target    string  `json:"target"`
	Relevance float64 `json:"relevance"`
}

// EntityContext is the one-hop context built for an entity.
type EntityContext struct {
	Entity string `json:"entity"`

	// Depth is echoed from the request. Traversal is always a single
	// hop; callers must not assume depth > 1 yields more edges.
	Depth int `json:"depth"`

	Relationships []Relationship `json:"relationships"`

	// RelatedEntities is always empty. The field is kept for wire
	// compatibility with the original response shape.
	RelatedEntities []string `json:"related_entities"`

	ContextSummary string `json:"context_summary"`
}
