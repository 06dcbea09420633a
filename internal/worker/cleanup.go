package worker

import (
	"context"
	"log/slog"
	"time"

	"boxarena/internal/pkg/clock"
	"boxarena/internal/usecase/queries"
)

// CleanupWorker periodically deletes unpaid pending bookings that outlived
// the retention window, so abandoned checkouts release their slots even when
// nobody queries availability.
type CleanupWorker struct {
	purger    queries.PendingPurger
	clock     clock.Clock
	interval  time.Duration
	retention time.Duration
	stop      chan struct{}
	done      chan struct{}
}

func NewCleanupWorker(purger queries.PendingPurger, clk clock.Clock, interval, retention time.Duration) *CleanupWorker {
	return &CleanupWorker{
		purger:    purger,
		clock:     clk,
		interval:  interval,
		retention: retention,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the sweep loop. It returns immediately; call Stop to shut
// the loop down and wait for the in-flight sweep to finish.
func (w *CleanupWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *CleanupWorker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *CleanupWorker) run(ctx context.Context) {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.Info("booking cleanup worker started",
		"interval", w.interval.String(),
		"retention", w.retention.String(),
	)

	for {
		select {
		case <-ticker.C:
			w.sweep(ctx)
		case <-w.stop:
			slog.Info("booking cleanup worker stopped")
			return
		case <-ctx.Done():
			return
		}
	}
}

func (w *CleanupWorker) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	cutoff := w.clock.Now().Add(-w.retention)
	purged, err := w.purger.PurgeStalePending(sweepCtx, cutoff)
	if err != nil {
		slog.Error("booking cleanup sweep failed", "error", err.Error())
		return
	}
	if purged > 0 {
		slog.Info("expired pending bookings released", "count", purged)
	}
}
