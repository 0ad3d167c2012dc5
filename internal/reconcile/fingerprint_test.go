package reconcile

import (
	"testing"

	"fixturecal/internal/domain"
)

func intPtr(n int) *int { return &n }

func sampleFixture() domain.Fixture {
	return domain.Fixture{
		HomeTeam:    "Poole Town FC Wessex U18 Colts",
		AwayTeam:    "Example Town",
		Venue:       "Ground A",
		Competition: "Division One",
		KickoffRaw:  "07/09/25 14:00",
	}
}

func TestFingerprintDeterministic(t *testing.T) {
	fx := sampleFixture()
	res := &domain.Result{HomeTeam: fx.HomeTeam, AwayTeam: fx.AwayTeam, HomeScore: intPtr(2), AwayScore: intPtr(1)}
	first := Fingerprint(fx, res)
	if first == "" {
		t.Fatalf("expected non-empty fingerprint")
	}
	for i := 0; i < 5; i++ {
		if got := Fingerprint(fx, res); got != first {
			t.Fatalf("expected %q every time, got %q", first, got)
		}
	}
}

func TestFingerprintChangesWithAnyField(t *testing.T) {
	base := Fingerprint(sampleFixture(), nil)

	venue := sampleFixture()
	venue.Venue = "Ground B"
	if Fingerprint(venue, nil) == base {
		t.Fatalf("venue change did not alter fingerprint")
	}

	comp := sampleFixture()
	comp.Competition = "Cup"
	if Fingerprint(comp, nil) == base {
		t.Fatalf("competition change did not alter fingerprint")
	}

	if Fingerprint(sampleFixture(), &domain.Result{HomeTeam: "a", AwayTeam: "b"}) == base {
		t.Fatalf("attached result did not alter fingerprint")
	}
}

func TestFingerprintScoreSensitivity(t *testing.T) {
	fx := sampleFixture()
	unscored := Fingerprint(fx, &domain.Result{HomeTeam: fx.HomeTeam, AwayTeam: fx.AwayTeam})
	scored := Fingerprint(fx, &domain.Result{HomeTeam: fx.HomeTeam, AwayTeam: fx.AwayTeam, HomeScore: intPtr(2), AwayScore: intPtr(1)})
	if unscored == scored {
		t.Fatalf("score arrival did not alter fingerprint")
	}
}
