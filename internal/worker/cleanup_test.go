//go:build unit

package worker_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"boxarena/internal/pkg/clock"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/worker"
	queriesmock "boxarena/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCleanupWorker_SweepsWithRetentionCutoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)
	retention := 15 * time.Minute
	swept := make(chan struct{}, 1)

	purger := queriesmock.NewMockPendingPurger(ctrl)
	purger.EXPECT().
		PurgeStalePending(gomock.Any(), now.Add(-retention)).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 3, nil
		}).
		MinTimes(1)

	w := worker.NewCleanupWorker(purger, clock.NewMockClock(now), 5*time.Millisecond, retention)
	w.Start(t.Context())
	defer w.Stop()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		require.Fail(t, "sweep was never invoked")
	}
}

func TestCleanupWorker_KeepsRunningAfterSweepFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int64
	swept := make(chan struct{}, 2)

	purger := queriesmock.NewMockPendingPurger(ctrl)
	purger.EXPECT().
		PurgeStalePending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			n := calls.Add(1)
			select {
			case swept <- struct{}{}:
			default:
			}
			if n == 1 {
				return 0, errs.New("connection reset")
			}
			return 0, nil
		}).
		MinTimes(2)

	w := worker.NewCleanupWorker(purger, clock.NewRealClock(), 5*time.Millisecond, time.Minute)
	w.Start(t.Context())
	defer w.Stop()

	for range 2 {
		select {
		case <-swept:
		case <-time.After(2 * time.Second):
			require.Fail(t, "worker stopped sweeping after failure")
		}
	}
	assert.GreaterOrEqual(t, calls.Load(), int64(2))
}

func TestCleanupWorker_StopWaitsForLoopExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	purger := queriesmock.NewMockPendingPurger(ctrl)
	purger.EXPECT().
		PurgeStalePending(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		AnyTimes()

	w := worker.NewCleanupWorker(purger, clock.NewRealClock(), time.Millisecond, time.Minute)
	w.Start(t.Context())

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.Fail(t, "Stop did not return")
	}
}
