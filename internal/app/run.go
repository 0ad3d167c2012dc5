// Package app orchestrates a full reconciliation pass: fetch the feeds,
// reconcile against prior state, emit the calendar, persist, and notify.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"fixturecal/internal/domain"
	"fixturecal/internal/feed"
	"fixturecal/internal/ics"
	"fixturecal/internal/logging"
	"fixturecal/internal/metrics"
	"fixturecal/internal/notify"
	"fixturecal/internal/reconcile"
	"fixturecal/internal/state"
)

// CalendarSink receives the freshly built calendar document.
type CalendarSink interface {
	Set(document string, builtAt time.Time, events int)
}

// Runner wires the feed provider, reconciler, builder, state store and
// notifier into a single idempotent pass.
type Runner struct {
	provider   feed.Provider
	reconciler *reconcile.Reconciler
	builder    *ics.Builder
	states     state.Store
	notifier   notify.Service
	sink       CalendarSink
	logger     *slog.Logger
	metrics    *metrics.Recorder
	outputPath string
	now        func() time.Time
}

// Config collects the Runner's collaborators.
type Config struct {
	Provider   feed.Provider
	Reconciler *reconcile.Reconciler
	Builder    *ics.Builder
	States     state.Store
	Notifier   notify.Service
	Sink       CalendarSink
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
	OutputPath string
}

// New constructs a Runner.
func New(cfg Config) *Runner {
	return &Runner{
		provider:   cfg.Provider,
		reconciler: cfg.Reconciler,
		builder:    cfg.Builder,
		states:     cfg.States,
		notifier:   cfg.Notifier,
		sink:       cfg.Sink,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		outputPath: cfg.OutputPath,
		now:        time.Now,
	}
}

// RunOnce performs one reconciliation pass. When the feeds yield no usable
// fixtures the pass aborts before any write so the previous calendar and
// state survive intact.
func (r *Runner) RunOnce(ctx context.Context) error {
	fixtures, err := r.fetch(ctx, feed.FeedFixtures, r.provider.FetchFixtures)
	if err != nil {
		return fmt.Errorf("fetch fixtures: %w", err)
	}
	results, err := r.fetch(ctx, feed.FeedResults, r.provider.FetchResults)
	if err != nil {
		return fmt.Errorf("fetch results: %w", err)
	}

	prior, err := r.states.Load()
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	outcome, err := r.reconciler.Run(fixtures, results, prior)
	if err != nil {
		if errors.Is(err, reconcile.ErrNoUsableFixtures) {
			logging.Warn(r.logger, "no usable fixtures, keeping previous calendar and state")
			r.logWarnings(outcome)
		}
		return err
	}
	r.logWarnings(outcome)

	document := r.builder.Build(outcome.Entries)

	if r.outputPath != "" {
		if err := writeFileAtomic(r.outputPath, []byte(document)); err != nil {
			return fmt.Errorf("write calendar: %w", err)
		}
	}
	if r.sink != nil {
		r.sink.Set(document, r.now(), len(outcome.Entries))
	}

	if err := r.states.Save(outcome.State); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	if r.metrics != nil {
		r.metrics.RecordSkippedRecords(len(outcome.Warnings))
		r.metrics.RecordRevisionBumps(outcome.Bumped)
		r.metrics.RecordChanges(len(outcome.Changes.Added), len(outcome.Changes.Updated), len(outcome.Changes.Removed))
	}
	logging.Info(r.logger, "calendar refreshed",
		"events", len(outcome.Entries),
		"scored", outcome.Scored,
		"bumped", outcome.Bumped,
		"added", len(outcome.Changes.Added),
		"updated", len(outcome.Changes.Updated),
		"removed", len(outcome.Changes.Removed),
	)

	r.notifyChanges(ctx, outcome.Changes)
	return nil
}

func (r *Runner) fetch(ctx context.Context, name string, fn func(context.Context) ([]domain.RawRecord, error)) ([]domain.RawRecord, error) {
	start := time.Now()
	records, err := fn(ctx)
	if r.metrics != nil {
		r.metrics.RecordFeedAttempt(name, time.Since(start), err)
	}
	return records, err
}

func (r *Runner) logWarnings(outcome reconcile.Outcome) {
	for _, warning := range outcome.Warnings {
		logging.Warn(r.logger, "skipping record", "reason", warning)
	}
}

func (r *Runner) notifyChanges(ctx context.Context, changes domain.ChangeSummary) {
	if r.notifier == nil || changes.Empty() {
		return
	}
	if err := r.notifier.NotifyChanges(ctx, changes); err != nil {
		logging.Error(r.logger, "change notification failed", err)
	}
}

// writeFileAtomic writes via a temp file and rename so readers never observe
// a partial calendar.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
