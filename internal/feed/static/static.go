// Package static returns a deterministic set of fixtures and results useful
// for local runs and bootstrapping without the upstream API.
package static

import (
	"context"

	"fixturecal/internal/domain"
)

// Provider serves a fixed schedule for the sample team.
type Provider struct{}

// New creates a static provider.
func New() *Provider {
	return &Provider{}
}

// FetchFixtures returns a deterministic set of example fixtures.
func (p *Provider) FetchFixtures(ctx context.Context) ([]domain.RawRecord, error) {
	_ = ctx
	return []domain.RawRecord{
		{
			"fixtureDateTime": "07/09/25 14:00",
			"homeTeam":        "Poole Town FC Wessex U18 Colts",
			"awayTeam":        "Example Town",
			"location":        "Ground A",
			"competition":     "Division One",
		},
		{
			"fixtureDateTime": "14/09/25 10:30",
			"homeTeam":        "Hamworthy United U18s",
			"awayTeam":        "Poole Town FC Wessex U18 Colts",
			"location":        "County Ground",
			"competition":     "Division One",
		},
		{
			"fixtureDateTime": "21/09/2025 14:00",
			"homeTeam":        "Poole Town FC Wessex U18 Colts",
			"awayTeam":        "Fleetcombe Rovers",
			"competition":     "League Cup",
		},
	}, nil
}

// FetchResults returns results for the subset of fixtures already played.
func (p *Provider) FetchResults(ctx context.Context) ([]domain.RawRecord, error) {
	_ = ctx
	return []domain.RawRecord{
		{
			"resultDateTime": "07/09/25",
			"homeTeam":       "Poole Town FC Wessex U18 Colts",
			"awayTeam":       "Example Town",
			"homeScore":      2,
			"awayScore":      1,
			"location":       "Ground A",
			"competition":    "Division One",
		},
	}, nil
}
