package feed

import (
	"context"

	"fixturecal/internal/domain"
)

// Provider supplies the raw fixture and result records for the tracked team.
// Implementations return records as loosely typed maps; normalization happens
// downstream in the reconcile package.
type Provider interface {
	FetchFixtures(ctx context.Context) ([]domain.RawRecord, error)
	FetchResults(ctx context.Context) ([]domain.RawRecord, error)
}

// Feed names used in logs and metrics.
const (
	FeedFixtures = "fixtures"
	FeedResults  = "results"
)
