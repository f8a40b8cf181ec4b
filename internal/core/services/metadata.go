package services

import (
	"context"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

// Metadata reports the document's metadata block, the section catalog
// in source order, and the summed full_length across sections. Sections
// without a stored length contribute 0; nothing is recomputed from the
// text itself.
func (s *QueryService) Metadata(ctx context.Context) (*domain.MetadataReport, error) {
	doc := s.source.Load(ctx)

	report := &domain.MetadataReport{
		Metadata:          doc.Metadata,
		SectionsAvailable: []string{},
		RAGVectors:        doc.RAGVectors,
		CAGContext:        doc.CAGContext,
	}

	for _, name := range doc.SectionNames() {
		report.SectionsAvailable = append(report.SectionsAvailable, name)
		sec, _ := doc.Section(name)
		if sec.FullLength != nil {
			report.TotalContentLength += *sec.FullLength
		}
	}

	return report, nil
}
