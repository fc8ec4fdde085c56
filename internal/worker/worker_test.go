package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	runs chan struct{}
}

func (s *stubRunner) RunOnce(ctx context.Context) error {
	select {
	case s.runs <- struct{}{}:
	default:
	}
	return nil
}

func TestWorker_RunsOnTicks(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := &stubRunner{runs: make(chan struct{}, 10)}
	w := New(runner, 10*time.Millisecond, log)

	w.Start()
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-runner.runs:
		case <-time.After(2 * time.Second):
			require.FailNow(t, "worker did not run the pipeline in time")
		}
	}
}

func TestWorker_StopWaitsForLoopExit(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := &stubRunner{runs: make(chan struct{}, 1)}
	w := New(runner, time.Hour, log)

	w.Start()
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		require.FailNow(t, "Stop did not return after cancellation")
	}
}

func TestWorker_StopWithoutStart(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := New(&stubRunner{runs: make(chan struct{}, 1)}, time.Minute, log)

	assert.NotPanics(t, func() { w.Stop() })
}

func TestWorker_GetInterval(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := New(&stubRunner{runs: make(chan struct{}, 1)}, 42*time.Second, log)

	assert.Equal(t, 42*time.Second, w.GetInterval())
}
