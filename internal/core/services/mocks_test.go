package services

import (
	"context"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

// staticSource is a DocumentSource serving a fixed document.
type staticSource struct {
	doc *domain.Document
}

func (s *staticSource) Load(_ context.Context) *domain.Document {
	return s.doc
}

// docWith builds a document from ordered (name, content) pairs with
// full_length precomputed, mirroring the shape of the data file.
func docWith(pairs ...[2]string) *domain.Document {
	content := domain.NewSectionMap()
	for _, p := range pairs {
		length := len(p[1])
		content.Set(p[0], domain.Section{Content: p[1], FullLength: &length})
	}
	return &domain.Document{Content: content}
}

func intPtr(n int) *int {
	return &n
}
