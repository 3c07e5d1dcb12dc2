package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"huestat/domain/colors"
	apperrors "huestat/internal/errors"
	"huestat/internal/migration"
	"huestat/ports"
)

// FrequencyRepository implements ports.FrequencyStore for PostgreSQL
type FrequencyRepository struct {
	db *sqlx.DB
}

// NewFrequencyRepository creates a repository over an existing connection
func NewFrequencyRepository(db *sqlx.DB) *FrequencyRepository {
	return &FrequencyRepository{db: db}
}

// Connect opens and pings the database. A failure here means the persistence
// capability is unavailable; the caller logs a warning and continues without it.
func Connect(dsn string) (*FrequencyRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to connect to database", err)
	}
	return &FrequencyRepository{db: db}, nil
}

// EnsureSchema creates the color_frequency and analysis_runs tables when absent
func (r *FrequencyRepository) EnsureSchema(ctx context.Context) error {
	return migration.NewRunner().Run(ctx, r.db)
}

// SaveFrequencies upserts every (color, frequency) pair, overwriting the
// frequency on conflict, then records the run audit row. Keys are written in
// lexicographic order so statement order is deterministic across runs.
func (r *FrequencyRepository) SaveFrequencies(ctx context.Context, run ports.RunRecord, table colors.FrequencyTable) error {
	for _, color := range table.SortedKeys() {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO color_frequency (color, frequency)
			VALUES ($1, $2)
			ON CONFLICT (color) DO UPDATE SET frequency = EXCLUDED.frequency`,
			string(color), table[color])
		if err != nil {
			return apperrors.Wrapf(err, "failed to upsert frequency for %s", color)
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO analysis_runs (id, document, total, unique_colors, created_at)
		VALUES ($1, $2, $3, $4, NOW())`,
		run.ID, run.Document, run.Total, run.Unique)
	if err != nil {
		return apperrors.Wrap(err, "failed to record analysis run")
	}
	return nil
}

// Close releases the underlying connection
func (r *FrequencyRepository) Close() error {
	return r.db.Close()
}
