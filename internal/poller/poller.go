// Package poller drives periodic reconciliation runs.
package poller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"fixturecal/internal/logging"
	"fixturecal/internal/metrics"
)

const defaultInterval = 30 * time.Minute

// Runner executes one reconciliation pass.
type Runner interface {
	RunOnce(ctx context.Context) error
}

// Poller invokes the Runner on a fixed interval or, when a cron expression is
// configured, on that schedule. An initial run fires on boot either way.
type Poller struct {
	runner   Runner
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	schedule cron.Schedule
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller. cronSpec, when non-empty, must be a standard
// five-field cron expression and takes precedence over interval.
func New(runner Runner, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, cronSpec string) (*Poller, error) {
	if interval <= 0 {
		interval = defaultInterval
	}
	p := &Poller{
		runner:   runner,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	if cronSpec != "" {
		schedule, err := cron.ParseStandard(cronSpec)
		if err != nil {
			return nil, fmt.Errorf("parse refresh cron %q: %w", cronSpec, err)
		}
		p.schedule = schedule
	}
	return p, nil
}

// Start begins the refresh loop until the context is cancelled or Stop is
// called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go func() {
		p.logInfo("refresh loop started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial run to warm the calendar on boot.
		p.runOnce(ctx)

		timer := time.NewTimer(p.nextWait())
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				p.logInfo("refresh loop stopped")
				return
			case <-p.done:
				p.logInfo("refresh loop stopped")
				return
			case <-timer.C:
				p.runOnce(ctx)
				timer.Reset(p.nextWait())
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
	})
	return nil
}

func (p *Poller) nextWait() time.Duration {
	if p.schedule == nil {
		return p.interval
	}
	wait := time.Until(p.schedule.Next(p.now()))
	if wait <= 0 {
		wait = time.Second
	}
	return wait
}

func (p *Poller) runOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	err := p.runner.RunOnce(ctx)
	if p.metrics != nil {
		p.metrics.RecordRun(time.Since(start), err)
	}
	if err != nil {
		p.logError("reconciliation run failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}
	p.recordSuccess(start)
	p.logInfo("reconciliation run complete",
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
