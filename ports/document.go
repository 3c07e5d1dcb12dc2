package ports

import (
	"context"

	"huestat/domain/colors"
)

// DocumentSource yields the ordered token sequence of one markup document.
// Ordering follows document traversal order then intra-text split order; the
// aggregator's median is the only consumer of that ordering.
type DocumentSource interface {
	ExtractTokens(ctx context.Context) ([]colors.Token, error)
}
