package driving

import (
	"context"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

// QueryService provides the knowledge-base operations to external actors.
type QueryService interface {
	// Search performs a case-insensitive excerpt search over the
	// named section, or all sections when section is "all".
	// maxResults <= 0 selects the configured default.
	Search(ctx context.Context, query, section string, maxResults int) (*domain.SearchOutput, error)

	// SemanticSearch wraps Search over all sections. The threshold is
	// echoed in the output but never used to filter results.
	SemanticSearch(ctx context.Context, query string, threshold float64) (*domain.SemanticSearchOutput, error)

	// ExtractEntities runs pattern extraction over the named section,
	// or all sections when section is "all".
	ExtractEntities(ctx context.Context, section string) (*domain.ExtractOutput, error)

	// BuildContext builds one-hop mentioned_in relationships for an
	// entity. Depth is echoed, never traversed.
	BuildContext(ctx context.Context, entity string, depth int) (*domain.EntityContext, error)

	// Metadata reports the document's metadata block, section catalog
	// and summed content length.
	Metadata(ctx context.Context) (*domain.MetadataReport, error)
}
