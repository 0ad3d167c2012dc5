package reconcile

import (
	"testing"

	"fixturecal/internal/domain"
)

func TestNormalizeFixtureAliasPriority(t *testing.T) {
	rec := domain.RawRecord{
		"fixtureDateTime": "07/09/25 14:00",
		"date":            "should lose",
		"homeTeam":        " Poole Town ",
		"away":            "Example Town",
		"ground":          "Ground A",
		"competition":     "Division One",
	}
	fx := NormalizeFixture(rec)
	if fx.KickoffRaw != "07/09/25 14:00" {
		t.Fatalf("alias priority broken: %q", fx.KickoffRaw)
	}
	if fx.HomeTeam != "Poole Town" {
		t.Fatalf("expected trimmed home team, got %q", fx.HomeTeam)
	}
	if fx.AwayTeam != "Example Town" {
		t.Fatalf("away alias not honored: %q", fx.AwayTeam)
	}
	if fx.Venue != "Ground A" {
		t.Fatalf("ground alias not honored: %q", fx.Venue)
	}
}

func TestNormalizeFixtureMissingFields(t *testing.T) {
	fx := NormalizeFixture(domain.RawRecord{"unknown": "x"})
	if fx.HomeTeam != "" || fx.AwayTeam != "" || fx.KickoffRaw != "" || fx.Venue != "" || fx.Competition != "" {
		t.Fatalf("expected zero values, got %+v", fx)
	}
}

func TestNormalizeResultScoreVariants(t *testing.T) {
	cases := []struct {
		name string
		rec  domain.RawRecord
		want int
	}{
		{"float", domain.RawRecord{"homeScore": float64(2)}, 2},
		{"int", domain.RawRecord{"homeGoals": 3}, 3},
		{"string", domain.RawRecord{"home_score": " 4 "}, 4},
		{"lastAlias", domain.RawRecord{"homeResult": float64(1)}, 1},
	}
	for _, tc := range cases {
		res, _ := NormalizeResult(tc.rec)
		if res.HomeScore == nil || *res.HomeScore != tc.want {
			t.Fatalf("%s: expected %d, got %v", tc.name, tc.want, res.HomeScore)
		}
	}
}

func TestNormalizeResultAbsentScore(t *testing.T) {
	res, dateRaw := NormalizeResult(domain.RawRecord{
		"resultDateTime": "07/09/25",
		"homeTeam":       "A",
		"awayTeam":       "B",
	})
	if res.HomeScore != nil || res.AwayScore != nil {
		t.Fatalf("expected nil scores, got %+v", res)
	}
	if res.Scored() {
		t.Fatalf("Scored must be false without both scores")
	}
	if dateRaw != "07/09/25" {
		t.Fatalf("unexpected date %q", dateRaw)
	}
}

func TestNormalizeResultDateFallsBackToFixtureDate(t *testing.T) {
	_, dateRaw := NormalizeResult(domain.RawRecord{"fixtureDateTime": "07/09/25 14:00"})
	if dateRaw != "07/09/25 14:00" {
		t.Fatalf("unexpected date %q", dateRaw)
	}
}

func TestNormalizeNeverPanicsOnOddTypes(t *testing.T) {
	rec := domain.RawRecord{
		"homeTeam":  12345,
		"awayTeam":  nil,
		"homeScore": "not a number",
		"location":  true,
	}
	fx := NormalizeFixture(rec)
	if fx.HomeTeam != "12345" {
		t.Fatalf("numeric team name not stringified: %q", fx.HomeTeam)
	}
	res, _ := NormalizeResult(rec)
	if res.HomeScore != nil {
		t.Fatalf("non-numeric score must stay nil")
	}
}
