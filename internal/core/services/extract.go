package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/custodia-labs/kbserve/internal/core/domain"
	"github.com/custodia-labs/kbserve/internal/logger"
)

// Extraction runs two independent passes per section: a fixed
// vocabulary of known terms (case-insensitive), then a generic
// two-capitalised-word sequence (case-sensitive).
var (
	knownTermPattern  = regexp.MustCompile(`(?i)Bambi|Session \d+|Trigger|File \d+`)
	properNamePattern = regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`)
)

// ExtractEntities scans the selected sections with both extraction
// patterns and de-duplicates matches by entity text. When the same text
// occurs in several sections, the retained Source is the section
// scanned last. Output is capped at maxEntities; TotalExtracted reports
// the true unique count.
func (s *QueryService) ExtractEntities(
	ctx context.Context, section string,
) (*domain.ExtractOutput, error) {
	logger.Section("Entity Extraction")
	logger.Debug("Section: %q", section)

	if section == "" {
		return nil, fmt.Errorf("%w: section is required", domain.ErrInvalidInput)
	}

	doc := s.source.Load(ctx)

	// Ordered map: key order is first sighting, value is last
	// assignment. Last-wins keeps the final section a duplicated
	// entity was seen in.
	var order []string
	byText := make(map[string]domain.Entity)

	for _, name := range selectSections(doc, section) {
		sec, _ := doc.Section(name)
		if sec.Content == "" {
			continue
		}

		for _, pattern := range []*regexp.Regexp{knownTermPattern, properNamePattern} {
			for _, match := range pattern.FindAllString(sec.Content, -1) {
				if _, seen := byText[match]; !seen {
					order = append(order, match)
				}
				byText[match] = domain.Entity{
					Entity: match,
					Type:   domain.EntityTypeExtracted,
					Source: name,
				}
			}
		}
	}

	out := &domain.ExtractOutput{
		Section:        section,
		Entities:       []domain.Entity{},
		TotalExtracted: len(order),
	}

	for _, text := range order {
		if len(out.Entities) >= maxEntities {
			break
		}
		out.Entities = append(out.Entities, byText[text])
	}

	logger.Debug("Entities: %d unique, %d returned", out.TotalExtracted, len(out.Entities))
	return out, nil
}
