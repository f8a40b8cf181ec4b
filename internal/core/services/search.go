package services

import (
	"context"
	"strings"

	"github.com/custodia-labs/kbserve/internal/core/domain"
	"github.com/custodia-labs/kbserve/internal/logger"
)

// excerptPadding is the number of characters kept on each side of the
// matched query inside an excerpt.
const excerptPadding = 100

// semanticNote is appended to semantic_search output: matching is
// keyword based and the threshold is a documented no-op.
const semanticNote = "semantic matching is approximated by keyword search; threshold is accepted but not applied"

// Search performs a case-insensitive substring search over the selected
// sections. Each matching section contributes exactly one result, built
// around the first occurrence of the query.
func (s *QueryService) Search(
	ctx context.Context, query, section string, maxResults int,
) (*domain.SearchOutput, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q, section: %q", query, section)

	if section == "" {
		section = SectionAll
	}
	if maxResults <= 0 {
		maxResults = s.defaultMaxResults
	}

	doc := s.source.Load(ctx)

	out := &domain.SearchOutput{
		Query:   query,
		Section: section,
		Results: []domain.SearchResult{},
	}

	needle := strings.ToLower(query)

	for _, name := range selectSections(doc, section) {
		sec, _ := doc.Section(name)
		if sec.Content == "" {
			continue
		}

		idx := strings.Index(strings.ToLower(sec.Content), needle)
		if idx < 0 {
			continue
		}

		// Every hit counts; only output is truncated.
		out.TotalFound++
		if len(out.Results) >= maxResults {
			continue
		}

		out.Results = append(out.Results, domain.SearchResult{
			Section:    name,
			Relevance:  searchRelevance,
			Excerpt:    excerpt(sec.Content, idx, len(query)),
			FullLength: sec.FullLength,
		})
	}

	logger.Debug("Hits: %d total, %d returned", out.TotalFound, len(out.Results))
	return out, nil
}

// SemanticSearch is a pass-through wrapper around Search over all
// sections. The threshold is echoed, never used for filtering.
func (s *QueryService) SemanticSearch(
	ctx context.Context, query string, threshold float64,
) (*domain.SemanticSearchOutput, error) {
	res, err := s.Search(ctx, query, SectionAll, s.defaultMaxResults)
	if err != nil {
		return nil, err
	}

	return &domain.SemanticSearchOutput{
		Query:      query,
		Threshold:  threshold,
		Results:    res.Results,
		TotalFound: res.TotalFound,
		Note:       semanticNote,
	}, nil
}

// excerpt returns a window of original-case text around the match at
// idx, clamped to the text edges and wrapped in ellipsis markers.
func excerpt(text string, idx, queryLen int) string {
	start := idx - excerptPadding
	if start < 0 {
		start = 0
	}

	end := idx + queryLen + excerptPadding
	if end > len(text) {
		end = len(text)
	}

	return "..." + text[start:end] + "..."
}
