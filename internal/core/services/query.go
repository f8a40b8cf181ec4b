package services

import (
	"github.com/custodia-labs/kbserve/internal/core/domain"
	"github.com/custodia-labs/kbserve/internal/core/ports/driven"
	"github.com/custodia-labs/kbserve/internal/core/ports/driving"
)

// Ensure QueryService implements the interface.
var _ driving.QueryService = (*QueryService)(nil)

// SectionAll selects every section of the document.
const SectionAll = "all"

const (
	// DefaultMaxResults caps search output when the caller does not
	// specify a limit.
	DefaultMaxResults = 5

	// maxEntities caps the extraction output. The true unique count
	// is still reported.
	maxEntities = 50

	// searchRelevance is the fixed score for substring matches.
	searchRelevance = 0.9

	// mentionRelevance is the fixed score for mentioned_in edges.
	mentionRelevance = 0.8
)

// QueryService provides search, extraction, context and metadata
// operations over the knowledge-base document.
type QueryService struct {
	source            driven.DocumentSource
	defaultMaxResults int
}

// NewQueryService creates a new query service.
func NewQueryService(source driven.DocumentSource) *QueryService {
	return &QueryService{
		source:            source,
		defaultMaxResults: DefaultMaxResults,
	}
}

// SetDefaultMaxResults overrides the result cap applied when a search
// does not specify one. Non-positive values are ignored.
func (s *QueryService) SetDefaultMaxResults(n int) {
	if n > 0 {
		s.defaultMaxResults = n
	}
}

// selectSections resolves the section argument to the sections to scan:
// every section for SectionAll, exactly the named one if it exists,
// nothing otherwise.
func selectSections(doc *domain.Document, section string) []string {
	if section == SectionAll {
		return doc.SectionNames()
	}
	if _, ok := doc.Section(section); ok {
		return []string{section}
	}
	return nil
}
