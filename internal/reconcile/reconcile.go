package reconcile

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"fixturecal/internal/domain"
)

// DefaultEventDuration covers kickoff, half time and a short buffer.
const DefaultEventDuration = 2 * time.Hour

// ErrNoUsableFixtures signals that the run produced nothing to publish:
// callers must leave the previous calendar and state untouched.
var ErrNoUsableFixtures = errors.New("no usable fixtures in feed")

// Config describes one reconciliation pass.
type Config struct {
	// TrackedTeam is the club whose fixtures this calendar follows; home/away
	// phrasing is relative to it.
	TrackedTeam string
	// Location is the civil zone fixture times are quoted in.
	Location *time.Location
	// UIDPrefix and UIDDomain frame the stable event identifiers.
	UIDPrefix string
	UIDDomain string
	// EventDuration is added to kickoff to produce the end instant.
	EventDuration time.Duration
}

// Entry is one joined fixture, identified and revisioned, ready for calendar
// emission.
type Entry struct {
	Fixture  domain.Fixture
	Result   *domain.Result
	StartUTC time.Time
	EndUTC   time.Time
	UID      string
	Revision int
	HomeSide bool
	Opponent string
	Snapshot domain.Snapshot
}

// Outcome aggregates everything one pass produces.
type Outcome struct {
	Entries []Entry
	// State is the updated tracked state to persist.
	State domain.State
	// Changes holds the added/updated/removed summaries for notification.
	Changes domain.ChangeSummary
	// Warnings describes records that were skipped, one per record.
	Warnings []string
	// Bumped counts entries whose revision incremented this run.
	Bumped int
	// Scored counts result entries that carried both scores.
	Scored int
}

// Reconciler joins fixtures to results, assigns identity, and drives revision
// and change tracking against persisted state.
type Reconciler struct {
	cfg Config
}

// New builds a Reconciler, filling config defaults.
func New(cfg Config) *Reconciler {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = DefaultEventDuration
	}
	return &Reconciler{cfg: cfg}
}

// Run executes one pass. The prior state is never mutated; the returned
// Outcome carries the successor state. Individual malformed records are
// skipped with a warning; only a run with zero usable fixtures fails.
func (r *Reconciler) Run(fixtures, results []domain.RawRecord, prior domain.State) (Outcome, error) {
	if len(fixtures) == 0 {
		return Outcome{}, ErrNoUsableFixtures
	}

	resultsByKey, scored := indexResults(results)

	tracker := NewTracker(prior)
	detector := NewDetector(prior)

	out := Outcome{Scored: scored}
	for _, rec := range fixtures {
		fx := NormalizeFixture(rec)
		if fx.HomeTeam == "" && fx.AwayTeam == "" {
			out.Warnings = append(out.Warnings, fmt.Sprintf("skipping fixture with no team names (date %q)", fx.KickoffRaw))
			continue
		}

		start, err := ResolveKickoff(fx.KickoffRaw, r.cfg.Location)
		if err != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("skipping fixture %s vs %s: %v", fx.HomeTeam, fx.AwayTeam, err))
			continue
		}

		res := resultsByKey[MatchKey(fx.KickoffRaw, fx.HomeTeam, fx.AwayTeam)]
		uid := BuildUID(r.cfg.UIDPrefix, r.cfg.UIDDomain, start, fx.HomeTeam, fx.AwayTeam, r.cfg.TrackedTeam)

		entry := Entry{
			Fixture:  fx,
			Result:   res,
			StartUTC: start,
			EndUTC:   start.Add(r.cfg.EventDuration),
			UID:      uid,
			HomeSide: IsHome(fx.HomeTeam, r.cfg.TrackedTeam),
			Snapshot: buildSnapshot(fx, res, start),
		}
		entry.Opponent = entry.Fixture.AwayTeam
		if !entry.HomeSide {
			entry.Opponent = entry.Fixture.HomeTeam
		}

		rev, bumped := tracker.Observe(uid, Fingerprint(fx, res), entry.Snapshot)
		entry.Revision = rev
		if bumped {
			out.Bumped++
		}
		detector.Observe(uid, entryLabel(entry), entry.Snapshot)

		out.Entries = append(out.Entries, entry)
	}

	if len(out.Entries) == 0 {
		return Outcome{Warnings: out.Warnings}, ErrNoUsableFixtures
	}

	sort.SliceStable(out.Entries, func(i, j int) bool {
		return out.Entries[i].StartUTC.Before(out.Entries[j].StartUTC)
	})

	out.State = tracker.State()
	out.Changes = detector.Summary()
	return out, nil
}

// indexResults builds the per-run result lookup keyed by match key. Later
// entries for the same key win, matching feed ordering.
func indexResults(results []domain.RawRecord) (map[string]*domain.Result, int) {
	byKey := make(map[string]*domain.Result, len(results))
	scored := 0
	for _, rec := range results {
		res, dateRaw := NormalizeResult(rec)
		if res.HomeTeam == "" && res.AwayTeam == "" {
			continue
		}
		r := res
		byKey[MatchKey(dateRaw, res.HomeTeam, res.AwayTeam)] = &r
		if res.Scored() {
			scored++
		}
	}
	return byKey, scored
}

func buildSnapshot(fx domain.Fixture, res *domain.Result, start time.Time) domain.Snapshot {
	snap := domain.Snapshot{
		Kickoff:     start,
		HomeTeam:    fx.HomeTeam,
		AwayTeam:    fx.AwayTeam,
		Venue:       fx.Venue,
		Competition: fx.Competition,
	}
	if snap.Venue == "" && res != nil {
		snap.Venue = res.Venue
	}
	if snap.Competition == "" && res != nil {
		snap.Competition = res.Competition
	}
	if res != nil && res.Scored() {
		snap.HomeScore = res.HomeScore
		snap.AwayScore = res.AwayScore
	}
	return snap
}

func entryLabel(e Entry) string {
	return fmt.Sprintf("%s vs %s on %s", e.Fixture.HomeTeam, e.Fixture.AwayTeam, e.StartUTC.Format("2006-01-02"))
}
