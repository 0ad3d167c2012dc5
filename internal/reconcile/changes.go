package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"fixturecal/internal/domain"
)

// Detector classifies per-UID deltas between the prior run's snapshots and
// the current run. It has no side effects beyond the summary it produces.
type Detector struct {
	prior   map[string]domain.Snapshot
	seen    map[string]bool
	added   []string
	updated []string
}

// NewDetector captures the previously known snapshots before the run mutates
// anything.
func NewDetector(prior domain.State) *Detector {
	snaps := make(map[string]domain.Snapshot, len(prior))
	for uid, st := range prior {
		snaps[uid] = st.Snapshot
	}
	return &Detector{
		prior: snaps,
		seen:  make(map[string]bool),
	}
}

// Observe records a UID seen in the current run and classifies it as added or
// updated. label identifies the match in the human-readable output.
func (d *Detector) Observe(uid, label string, snap domain.Snapshot) {
	d.seen[uid] = true
	old, known := d.prior[uid]
	if !known {
		d.added = append(d.added, label)
		return
	}
	if diffs := diffSnapshots(old, snap); len(diffs) > 0 {
		d.updated = append(d.updated, fmt.Sprintf("%s (%s)", label, strings.Join(diffs, ", ")))
	}
}

// Summary finalizes removal detection and returns the three ordered change
// lists. UIDs known before but unseen this run are reported as removed.
func (d *Detector) Summary() domain.ChangeSummary {
	var removedUIDs []string
	for uid := range d.prior {
		if !d.seen[uid] {
			removedUIDs = append(removedUIDs, uid)
		}
	}
	sort.Strings(removedUIDs)

	removed := make([]string, 0, len(removedUIDs))
	for _, uid := range removedUIDs {
		removed = append(removed, snapshotLabel(d.prior[uid]))
	}

	return domain.ChangeSummary{
		Added:   append([]string(nil), d.added...),
		Updated: append([]string(nil), d.updated...),
		Removed: removed,
	}
}

func diffSnapshots(old, cur domain.Snapshot) []string {
	var diffs []string
	if !old.Kickoff.Equal(cur.Kickoff) {
		diffs = append(diffs, fmt.Sprintf("kickoff changed to %s", cur.Kickoff.UTC().Format("02 Jan 2006 15:04 MST")))
	}
	if old.Venue != cur.Venue {
		diffs = append(diffs, fmt.Sprintf("venue changed to %q", cur.Venue))
	}
	if old.Competition != cur.Competition {
		diffs = append(diffs, fmt.Sprintf("competition changed to %q", cur.Competition))
	}
	diffs = append(diffs, diffScores(old, cur)...)
	return diffs
}

// diffScores distinguishes a score appearing for the first time from a
// published score being corrected.
func diffScores(old, cur domain.Snapshot) []string {
	oldSet := old.HomeScore != nil && old.AwayScore != nil
	curSet := cur.HomeScore != nil && cur.AwayScore != nil
	switch {
	case !oldSet && curSet:
		return []string{fmt.Sprintf("score added %d–%d", *cur.HomeScore, *cur.AwayScore)}
	case oldSet && curSet && (*old.HomeScore != *cur.HomeScore || *old.AwayScore != *cur.AwayScore):
		return []string{fmt.Sprintf("score changed %d–%d to %d–%d", *old.HomeScore, *old.AwayScore, *cur.HomeScore, *cur.AwayScore)}
	case oldSet && !curSet:
		return []string{"score removed"}
	}
	return nil
}

func snapshotLabel(snap domain.Snapshot) string {
	return fmt.Sprintf("%s vs %s on %s", snap.HomeTeam, snap.AwayTeam, snap.Kickoff.UTC().Format("2006-01-02"))
}
