package driven

import (
	"context"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

// DocumentSource provides the knowledge-base document.
// Backed by a lazily loaded JSON file.
//
// Load never fails: when the backing data cannot be read, it returns
// the sentinel document, which downstream code treats as an empty
// knowledge base. The returned document is shared and read-only.
type DocumentSource interface {
	// Load returns the cached document, reading it on first use.
	Load(ctx context.Context) *domain.Document
}
