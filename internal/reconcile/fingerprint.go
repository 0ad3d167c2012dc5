package reconcile

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"fixturecal/internal/domain"
)

// Fingerprint hashes the full normalized fixture+result pair. The payload is
// serialized as JSON maps, whose keys encoding/json emits in sorted order, so
// equivalent records always hash identically regardless of source ordering.
// It deliberately covers every field, not just the curated Snapshot: any
// upstream change bumps the revision even when it is not user visible.
func Fingerprint(fx domain.Fixture, res *domain.Result) string {
	payload := map[string]any{
		"fixture": map[string]any{
			"date":        fx.KickoffRaw,
			"homeTeam":    fx.HomeTeam,
			"awayTeam":    fx.AwayTeam,
			"venue":       fx.Venue,
			"competition": fx.Competition,
		},
	}
	if res != nil {
		payload["result"] = map[string]any{
			"homeTeam":    res.HomeTeam,
			"awayTeam":    res.AwayTeam,
			"homeScore":   res.HomeScore,
			"awayScore":   res.AwayScore,
			"venue":       res.Venue,
			"competition": res.Competition,
		}
	}
	data, err := json.Marshal(payload)
	if err != nil {
		// Maps of strings and *int cannot fail to marshal; keep the
		// signature hash-only.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
