package reconcile

import "fixturecal/internal/domain"

// Tracker applies fingerprint and revision bookkeeping for one run against a
// private copy of the persisted state. Revisions are monotonically
// non-decreasing per UID: a changed fingerprint bumps by exactly one, an
// unchanged fingerprint leaves the revision alone, and a first sighting
// starts at zero. Entries absent from the current run are kept so later runs
// can still detect removals.
type Tracker struct {
	state domain.State
}

// NewTracker clones the prior state so the caller's copy stays untouched for
// change detection.
func NewTracker(prior domain.State) *Tracker {
	if prior == nil {
		prior = domain.State{}
	}
	return &Tracker{state: prior.Clone()}
}

// Observe records the current view of uid and returns its revision and
// whether this run bumped it.
func (t *Tracker) Observe(uid, fingerprint string, snap domain.Snapshot) (int, bool) {
	rev := 0
	bumped := false
	if prev, ok := t.state[uid]; ok {
		rev = prev.Revision
		if prev.Fingerprint != fingerprint {
			rev++
			bumped = true
		}
	}
	t.state[uid] = domain.TrackedState{
		Fingerprint: fingerprint,
		Revision:    rev,
		Snapshot:    snap,
	}
	return rev, bumped
}

// State returns the updated state for persistence.
func (t *Tracker) State() domain.State {
	return t.state
}
