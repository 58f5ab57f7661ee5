// Package scheduler runs the daily package status recalculation.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/heartmarshall/insurance-admin/internal/service/insurancepackage"
)

type recalculator interface {
	RecalculateStatuses(ctx context.Context) (insurancepackage.RecalcResult, error)
}

type dailyLock interface {
	Acquire(ctx context.Context, day time.Time) (bool, error)
}

// Options configures a Scheduler.
type Options struct {
	Hour       int
	Minute     int
	RunOnStart bool
	Timeout    time.Duration
}

// Scheduler triggers one recalculation per UTC day at a fixed wall-clock time.
type Scheduler struct {
	recalc  recalculator
	lock    dailyLock
	metrics *Metrics
	log     *slog.Logger
	opts    Options

	now   func() time.Time
	after func(time.Duration) <-chan time.Time
}

// New creates a Scheduler. lock may be nil, in which case every replica runs
// every trigger.
func New(log *slog.Logger, recalc recalculator, lock dailyLock, metrics *Metrics, opts Options) *Scheduler {
	return &Scheduler{
		recalc:  recalc,
		lock:    lock,
		metrics: metrics,
		log:     log.With("component", "scheduler"),
		opts:    opts,
		now:     func() time.Time { return time.Now().UTC() },
		after:   time.After,
	}
}

// NextRun returns the first hour:minute UTC strictly after now.
func NextRun(now time.Time, hour, minute int) time.Time {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is cancelled. A failed run is logged and the next
// trigger is still scheduled.
func (s *Scheduler) Run(ctx context.Context) error {
	if s.opts.RunOnStart {
		s.RunOnce(ctx, false)
	}

	for {
		next := NextRun(s.now(), s.opts.Hour, s.opts.Minute)
		s.log.InfoContext(ctx, "next recalculation scheduled", slog.Time("at", next))

		select {
		case <-ctx.Done():
			s.log.InfoContext(ctx, "scheduler stopped")
			return nil
		case <-s.after(next.Sub(s.now())):
			s.RunOnce(ctx, true)
		}
	}
}

// RunOnce performs a single recalculation. With useLock set, the run is
// skipped when another replica already holds today's lock.
func (s *Scheduler) RunOnce(ctx context.Context, useLock bool) {
	day := s.now()

	if useLock && s.lock != nil {
		acquired, err := s.lock.Acquire(ctx, day)
		if err != nil {
			s.log.WarnContext(ctx, "run lock unavailable, running anyway", slog.String("error", err.Error()))
		} else if !acquired {
			s.log.InfoContext(ctx, "recalculation already claimed for today", slog.String("day", day.Format(time.DateOnly)))
			s.metrics.observeRun(outcomeSkipped, insurancepackage.RecalcResult{}, 0)
			return
		}
	}

	runCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	result, err := s.recalc.RecalculateStatuses(runCtx)
	elapsed := time.Since(started)

	if err != nil {
		outcome := outcomeFailed
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			outcome = outcomeCancelled
		}
		s.metrics.observeRun(outcome, result, elapsed)
		s.log.ErrorContext(ctx, "package status recalculation failed",
			slog.String("error", err.Error()),
			slog.Int("scanned", result.Scanned),
			slog.Int("updated", result.Updated),
		)
		return
	}

	s.metrics.observeRun(outcomeSuccess, result, elapsed)
	s.metrics.markSuccess(s.now())
	s.log.InfoContext(ctx, "package status recalculation finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("updated", result.Updated),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("failed", result.Failed),
		slog.Duration("duration", elapsed),
	)
}
