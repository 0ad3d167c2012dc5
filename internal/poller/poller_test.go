package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type countingRunner struct {
	calls atomic.Int32
	err   error
}

func (c *countingRunner) RunOnce(ctx context.Context) error {
	c.calls.Add(1)
	return c.err
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func TestPollerInitialRunAndTick(t *testing.T) {
	runner := &countingRunner{}
	p, err := New(runner, nil, nil, 20*time.Millisecond, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	waitFor(t, func() bool { return runner.calls.Load() >= 2 })
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
}

func TestPollerStatusTracksFailures(t *testing.T) {
	runner := &countingRunner{err: errors.New("boom")}
	p, err := New(runner, nil, nil, time.Hour, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	waitFor(t, func() bool { return p.Status().ConsecutiveFailures >= 1 })
	st := p.Status()
	if st.LastError == "" || st.IsReady() {
		t.Fatalf("expected unready failing status, got %+v", st)
	}
	_ = p.Stop(context.Background())
}

func TestPollerStatusReadyAfterSuccess(t *testing.T) {
	runner := &countingRunner{}
	p, err := New(runner, nil, nil, time.Hour, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	waitFor(t, func() bool { return p.Status().IsReady() })
	_ = p.Stop(context.Background())
}

func TestInvalidCronSpecRejected(t *testing.T) {
	if _, err := New(&countingRunner{}, nil, nil, time.Minute, "not a cron"); err == nil {
		t.Fatalf("expected error for invalid cron spec")
	}
}

func TestCronScheduleNextWait(t *testing.T) {
	p, err := New(&countingRunner{}, nil, nil, time.Minute, "0 7 * * *")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p.now = func() time.Time {
		return time.Date(2025, 9, 7, 6, 0, 0, 0, time.UTC)
	}
	wait := p.nextWait()
	if wait < 59*time.Minute || wait > time.Hour {
		t.Fatalf("expected ~1h wait until 07:00, got %v", wait)
	}
}

func TestStatusNotReadyBeforeFirstSuccess(t *testing.T) {
	var s Status
	if s.IsReady() {
		t.Fatalf("zero status must not be ready")
	}
}
