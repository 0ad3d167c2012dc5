package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderFeedCounters(t *testing.T) {
	r := NewRecorder()
	r.RecordFeedAttempt("fixtures", 50*time.Millisecond, nil)
	r.RecordFeedAttempt("fixtures", 70*time.Millisecond, errors.New("boom"))
	r.RecordFeedAttempt("results", 10*time.Millisecond, nil)

	if got := r.FeedCalls("fixtures"); got != 2 {
		t.Fatalf("expected 2 fixture calls, got %d", got)
	}
	if got := r.FeedErrors("fixtures"); got != 1 {
		t.Fatalf("expected 1 fixture error, got %d", got)
	}
	if got := r.LastFeedLatency("fixtures"); got != 70*time.Millisecond {
		t.Fatalf("unexpected latency %v", got)
	}
	if got := r.FeedCalls("results"); got != 1 {
		t.Fatalf("expected 1 result call, got %d", got)
	}
}

func TestRecorderRunCounters(t *testing.T) {
	r := NewRecorder()
	r.RecordRun(time.Second, nil)
	r.RecordRun(time.Second, errors.New("boom"))
	if r.Runs() != 2 || r.RunErrors() != 1 {
		t.Fatalf("unexpected run counters: %d/%d", r.Runs(), r.RunErrors())
	}
}

func TestRecorderSkipAndBumpCounters(t *testing.T) {
	r := NewRecorder()
	r.RecordSkippedRecords(2)
	r.RecordSkippedRecords(0)
	r.RecordRevisionBumps(3)
	if r.RecordsSkipped() != 2 {
		t.Fatalf("expected 2 skipped, got %d", r.RecordsSkipped())
	}
	if r.RevisionBumps() != 3 {
		t.Fatalf("expected 3 bumps, got %d", r.RevisionBumps())
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordFeedAttempt("fixtures", time.Second, nil)
	r.RecordRun(time.Second, nil)
	r.RecordSkippedRecords(1)
	r.RecordRevisionBumps(1)
	r.RecordChanges(1, 1, 1)
	r.RecordHTTPRequest("GET", "/calendar.ics", 200, time.Millisecond)
}
