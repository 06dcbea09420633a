package components

import (
	"context"

	"boxarena/internal/pkg/clock"
	"boxarena/internal/pkg/config"
	"boxarena/internal/usecase/queries"
	"boxarena/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewCleanupWorker,
	),
	fx.Invoke(registerCleanupWorker),
)

func NewCleanupWorker(purger queries.PendingPurger, clk clock.Clock, cfg config.Config) *worker.CleanupWorker {
	return worker.NewCleanupWorker(purger, clk, cfg.Booking.CleanupInterval, cfg.Booking.PendingRetention)
}

func registerCleanupWorker(lc fx.Lifecycle, w *worker.CleanupWorker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			w.Start(context.WithoutCancel(ctx))
			return nil
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
