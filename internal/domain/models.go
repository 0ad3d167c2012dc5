package domain

import "time"

// RawRecord is one loosely typed entry from an upstream feed. Key names vary
// across payload shapes; the reconcile package resolves them through alias
// lists.
type RawRecord map[string]any

// Fixture is the normalized shape of one scheduled match.
type Fixture struct {
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	Venue       string `json:"venue"`
	Competition string `json:"competition"`
	// KickoffRaw is the local wall-clock string exactly as supplied by the feed.
	KickoffRaw string `json:"kickoffRaw"`
}

// Result is the normalized score outcome for a match. Nil scores mean the
// match has not been played yet.
type Result struct {
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	HomeScore   *int   `json:"homeScore"`
	AwayScore   *int   `json:"awayScore"`
	Venue       string `json:"venue"`
	Competition string `json:"competition"`
}

// Scored reports whether both scores are present.
func (r Result) Scored() bool {
	return r.HomeScore != nil && r.AwayScore != nil
}

// Snapshot is the curated subset of fixture+result fields whose changes are
// user visible. It drives change classification only, never identity.
type Snapshot struct {
	Kickoff     time.Time `json:"kickoff"`
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	Venue       string    `json:"venue"`
	Competition string    `json:"competition"`
	HomeScore   *int      `json:"homeScore,omitempty"`
	AwayScore   *int      `json:"awayScore,omitempty"`
}

// TrackedState is the persisted per-UID reconciliation record.
type TrackedState struct {
	Fingerprint string   `json:"fp"`
	Revision    int      `json:"seq"`
	Snapshot    Snapshot `json:"snapshot"`
}

// State maps event UIDs to their tracked reconciliation state. It is loaded
// once at the start of a run and written back once at the end.
type State map[string]TrackedState

// Clone returns a shallow copy safe for per-run mutation.
func (s State) Clone() State {
	out := make(State, len(s))
	for uid, st := range s {
		out[uid] = st
	}
	return out
}

// ChangeSummary holds ordered human-readable change descriptions per class.
type ChangeSummary struct {
	Added   []string `json:"added"`
	Updated []string `json:"updated"`
	Removed []string `json:"removed"`
}

// Empty reports whether no changes were detected.
func (c ChangeSummary) Empty() bool {
	return len(c.Added) == 0 && len(c.Updated) == 0 && len(c.Removed) == 0
}
