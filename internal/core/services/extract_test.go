package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/kbserve/internal/core/domain"
)

func TestExtractEntities(t *testing.T) {
	ctx := context.Background()

	t.Run("known terms match case-insensitively", func(t *testing.T) {
		svc := NewQueryService(&staticSource{doc: docWith(
			[2]string{"faq", "bambi responds to the trigger in session 12 and file 3."},
		)})

		out, err := svc.ExtractEntities(ctx, "faq")
		require.NoError(t, err)

		texts := entityTexts(out.Entities)
		assert.Contains(t, texts, "bambi")
		assert.Contains(t, texts, "trigger")
		assert.Contains(t, texts, "session 12")
		assert.Contains(t, texts, "file 3")
	})

	t.Run("capitalised pairs match case-sensitively", func(t *testing.T) {
		svc := NewQueryService(&staticSource{doc: docWith(
			[2]string{"safety", "Read the Safe Word notes. lower case words stay out."},
		)})

		out, err := svc.ExtractEntities(ctx, "safety")
		require.NoError(t, err)

		texts := entityTexts(out.Entities)
		assert.Contains(t, texts, "Safe Word")
		assert.NotContains(t, texts, "lower case")
	})

	t.Run("both passes run over the same text", func(t *testing.T) {
		svc := NewQueryService(&staticSource{doc: docWith(
			[2]string{"faq", "Bambi Sleep is a Trigger phrase."},
		)})

		out, err := svc.ExtractEntities(ctx, "faq")
		require.NoError(t, err)

		texts := entityTexts(out.Entities)
		// Pass (a) finds the vocabulary terms, pass (b) the name pair.
		assert.Contains(t, texts, "Bambi")
		assert.Contains(t, texts, "Trigger")
		assert.Contains(t, texts, "Bambi Sleep")
	})

	t.Run("duplicate entity keeps the last scanned section", func(t *testing.T) {
		svc := NewQueryService(&staticSource{doc: docWith(
			[2]string{"faq", "Bambi"},
			[2]string{"sessions", "Bambi"},
		)})

		out, err := svc.ExtractEntities(ctx, "all")
		require.NoError(t, err)

		require.Len(t, out.Entities, 1)
		assert.Equal(t, "Bambi", out.Entities[0].Entity)
		assert.Equal(t, "extracted", out.Entities[0].Type)
		assert.Equal(t, "sessions", out.Entities[0].Source)
	})

	t.Run("output is capped while the unique count is not", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 60; i++ {
			fmt.Fprintf(&b, "Session %d ", i)
		}
		svc := NewQueryService(&staticSource{doc: docWith(
			[2]string{"sessions", b.String()},
		)})

		out, err := svc.ExtractEntities(ctx, "sessions")
		require.NoError(t, err)

		assert.Len(t, out.Entities, 50)
		assert.Equal(t, 60, out.TotalExtracted)
	})

	t.Run("missing section argument is invalid input", func(t *testing.T) {
		svc := NewQueryService(&staticSource{doc: docWith()})

		out, err := svc.ExtractEntities(ctx, "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, out)
	})

	t.Run("sentinel document yields nothing", func(t *testing.T) {
		svc := NewQueryService(&staticSource{doc: domain.SentinelDocument()})

		out, err := svc.ExtractEntities(ctx, "all")
		require.NoError(t, err)
		assert.Empty(t, out.Entities)
		assert.Equal(t, 0, out.TotalExtracted)
	})
}

func entityTexts(entities []domain.Entity) []string {
	texts := make([]string, len(entities))
	for i := range entities {
		texts[i] = entities[i].Entity
	}
	return texts
}
