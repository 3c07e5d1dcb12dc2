package ports

import (
	"context"

	"github.com/google/uuid"

	"huestat/domain/colors"
)

// RunRecord identifies one analysis run for the audit trail.
type RunRecord struct {
	ID       uuid.UUID
	Document string
	Total    int
	Unique   int
}

// FrequencyStore persists a frequency table keyed by token. Store failures
// are non-fatal to the program; callers log them and continue.
type FrequencyStore interface {
	// EnsureSchema creates the backing tables when absent.
	EnsureSchema(ctx context.Context) error

	// SaveFrequencies upserts every (token, frequency) pair, overwriting the
	// frequency on conflict, then records the run audit row.
	SaveFrequencies(ctx context.Context, run RunRecord, table colors.FrequencyTable) error

	Close() error
}
