package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed fetches and
// reconciliation runs. It is intentionally simple so it can be swapped for a
// real backend later; when OTel is configured the same calls also feed the
// exported instruments.
type Recorder struct {
	mu             sync.Mutex
	feeds          map[string]*feedStats
	runs           int
	runErrors      int
	recordsSkipped int
	revisionBumps  int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds: make(map[string]*feedStats),
		otel:  otel,
	}
}

// RecordFeedAttempt increments counters for a feed fetch and stores the last
// observed latency.
func (r *Recorder) RecordFeedAttempt(feed string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStats(feed)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFeedAttempt(feed, duration, err)
	}
}

// RecordRun tracks a full reconciliation cycle.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.runs++
	if err != nil {
		r.runErrors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// RecordSkippedRecords counts records dropped by normalization/parsing.
func (r *Recorder) RecordSkippedRecords(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.recordsSkipped += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordSkipped(n)
	}
}

// RecordRevisionBumps counts entries whose revision incremented this run.
func (r *Recorder) RecordRevisionBumps(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.mu.Lock()
	r.revisionBumps += n
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRevisionBumps(n)
	}
}

// RecordChanges tracks the change-summary sizes per class.
func (r *Recorder) RecordChanges(added, updated, removed int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordChanges(added, updated, removed)
}

// RecordHTTPRequest tracks a served HTTP request.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FeedCalls returns the total fetch attempts recorded for a feed.
func (r *Recorder) FeedCalls(feed string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(feed).calls
}

// FeedErrors returns the total failed fetches recorded for a feed.
func (r *Recorder) FeedErrors(feed string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(feed).errors
}

// LastFeedLatency returns the last recorded latency for a feed fetch.
func (r *Recorder) LastFeedLatency(feed string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(feed).lastCallLatency
}

// Runs returns the number of reconciliation cycles recorded.
func (r *Recorder) Runs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// RunErrors returns the number of failed reconciliation cycles.
func (r *Recorder) RunErrors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runErrors
}

// RecordsSkipped returns the total skipped records.
func (r *Recorder) RecordsSkipped() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recordsSkipped
}

// RevisionBumps returns the total revision bumps recorded.
func (r *Recorder) RevisionBumps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revisionBumps
}

func (r *Recorder) ensureStats(feed string) *feedStats {
	stats, ok := r.feeds[feed]
	if !ok {
		stats = &feedStats{}
		r.feeds[feed] = stats
	}
	return stats
}
