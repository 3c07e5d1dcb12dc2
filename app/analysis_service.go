package app

import (
	"context"

	"github.com/google/uuid"

	"huestat/domain/colors"
	"huestat/internal/logging"
	"huestat/ports"
)

// AnalysisService wires the document source to the aggregator and the
// optional frequency store.
type AnalysisService struct {
	source ports.DocumentSource
	store  ports.FrequencyStore
	logger *logging.Logger
}

// NewAnalysisService creates the analysis service. store may be nil when
// persistence is disabled or unavailable.
func NewAnalysisService(source ports.DocumentSource, store ports.FrequencyStore, logger *logging.Logger) *AnalysisService {
	return &AnalysisService{source: source, store: store, logger: logger}
}

// Run extracts the document's tokens and aggregates them. An empty document
// surfaces as a NO_DATA error, which the caller reports without failing.
func (s *AnalysisService) Run(ctx context.Context, target colors.Token) (*colors.Analysis, error) {
	tokens, err := s.source.ExtractTokens(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("extracted %d tokens", len(tokens))
	return colors.Analyze(tokens, target)
}

// Persist upserts the run's frequency table and records the audit row.
// A nil store is a no-op; errors are returned for the caller to log as
// warnings and never abort the run.
func (s *AnalysisService) Persist(ctx context.Context, document string, analysis *colors.Analysis) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.EnsureSchema(ctx); err != nil {
		return err
	}
	run := ports.RunRecord{
		ID:       uuid.New(),
		Document: document,
		Total:    analysis.Total,
		Unique:   analysis.Unique,
	}
	return s.store.SaveFrequencies(ctx, run, analysis.Frequencies)
}
