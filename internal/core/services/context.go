package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/kbserve/internal/core/domain"
	"github.com/custodia-labs/kbserve/internal/logger"
)

// BuildContext asserts a mentioned_in relationship for every section
// whose text contains the entity case-insensitively. Depth is echoed in
// the output; traversal stays a single hop and RelatedEntities stays
// empty regardless of its value.
func (s *QueryService) BuildContext(
	ctx context.Context, entity string, depth int,
) (*domain.EntityContext, error) {
	logger.Section("Context Build")
	logger.Debug("Entity: %q, depth: %d", entity, depth)

	if entity == "" {
		return nil, fmt.Errorf("%w: entity is required", domain.ErrInvalidInput)
	}

	doc := s.source.Load(ctx)
	needle := strings.ToLower(entity)

	ec := &domain.EntityContext{
		Entity:          entity,
		Depth:           depth,
		Relationships:   []domain.Relationship{},
		RelatedEntities: []string{},
	}

	for _, name := range doc.SectionNames() {
		sec, _ := doc.Section(name)
		if !strings.Contains(strings.ToLower(sec.Content), needle) {
			continue
		}
		ec.Relationships = append(ec.Relationships, domain.Relationship{
			Type:      domain.RelationshipMentionedIn,
			Target:    name,
			Relevance: mentionRelevance,
		})
	}

	ec.ContextSummary = fmt.Sprintf(
		"%q is mentioned in %d of %d sections",
		entity, len(ec.Relationships), len(doc.SectionNames()),
	)

	logger.Debug("Relationships: %d", len(ec.Relationships))
	return ec, nil
}
