package reconcile

import (
	"fmt"
	"strconv"
	"strings"

	"fixturecal/internal/domain"
)

// Accepted key aliases per field, in priority order. The upstream payloads
// have drifted across seasons, so every field tolerates the known variants.
var (
	fixtureDateAliases = []string{"fixtureDateTime", "date"}
	resultDateAliases  = []string{"resultDateTime", "fixtureDateTime", "date"}
	homeTeamAliases    = []string{"homeTeam", "home"}
	awayTeamAliases    = []string{"awayTeam", "away"}
	homeScoreAliases   = []string{"homeScore", "homeGoals", "home_score", "homeResult"}
	awayScoreAliases   = []string{"awayScore", "awayGoals", "away_score", "awayResult"}
	venueAliases       = []string{"location", "ground"}
	competitionAliases = []string{"competition"}
)

// NormalizeFixture extracts the fixture fields from a raw feed record.
// Missing aliases yield zero values; callers treat an unusable record as a
// skip condition, never an error.
func NormalizeFixture(rec domain.RawRecord) domain.Fixture {
	return domain.Fixture{
		HomeTeam:    strings.TrimSpace(stringField(rec, homeTeamAliases)),
		AwayTeam:    strings.TrimSpace(stringField(rec, awayTeamAliases)),
		Venue:       strings.TrimSpace(stringField(rec, venueAliases)),
		Competition: strings.TrimSpace(stringField(rec, competitionAliases)),
		KickoffRaw:  stringField(rec, fixtureDateAliases),
	}
}

// NormalizeResult extracts the result fields from a raw feed record, together
// with the raw date string used for match-key joining.
func NormalizeResult(rec domain.RawRecord) (domain.Result, string) {
	res := domain.Result{
		HomeTeam:    strings.TrimSpace(stringField(rec, homeTeamAliases)),
		AwayTeam:    strings.TrimSpace(stringField(rec, awayTeamAliases)),
		HomeScore:   scoreField(rec, homeScoreAliases),
		AwayScore:   scoreField(rec, awayScoreAliases),
		Venue:       strings.TrimSpace(stringField(rec, venueAliases)),
		Competition: strings.TrimSpace(stringField(rec, competitionAliases)),
	}
	return res, stringField(rec, resultDateAliases)
}

func stringField(rec domain.RawRecord, aliases []string) string {
	for _, key := range aliases {
		val, ok := rec[key]
		if !ok || val == nil {
			continue
		}
		switch v := val.(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case int:
			return strconv.Itoa(v)
		default:
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

func scoreField(rec domain.RawRecord, aliases []string) *int {
	for _, key := range aliases {
		val, ok := rec[key]
		if !ok || val == nil {
			continue
		}
		switch v := val.(type) {
		case float64:
			n := int(v)
			return &n
		case int:
			n := v
			return &n
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				return &n
			}
		}
	}
	return nil
}
