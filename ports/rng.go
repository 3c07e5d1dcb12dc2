package ports

import (
	"context"
	"math/rand"
)

// RNG provides seeded random number generation for deterministic operations
type RNG interface {
	// SeededStream creates a deterministic random number generator for a
	// named operation, so demo output is replayable for a given seed
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)
}
