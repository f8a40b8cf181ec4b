package domain

// EntityTypeExtracted marks entities produced by pattern extraction.
// It is the only entity type the system emits.
const EntityTypeExtracted = "extracted"

// Entity is a text span identified by pattern matching as a notable
// term, tagged with the section it was last seen in.
type Entity struct {
	// Entity is the matched text.
	Entity string `json:"entity"`

	// Type is always EntityTypeExtracted.
	Type string `json:"type"`

	// Source is the section the match came from. When the same text
	// appears in several sections, the last scanned section wins.
	Source string `json:"source"`
}

// ExtractOutput is the result of entity extraction over a section
// (or all sections).
type ExtractOutput struct {
	Section string `json:"section"`

	// Entities is the de-duplicated entity list, capped at the
	// extraction limit.
	Entities []Entity `json:"entities"`

	// TotalExtracted is the true unique count before capping.
	TotalExtracted int `json:"total_extracted"`
}
