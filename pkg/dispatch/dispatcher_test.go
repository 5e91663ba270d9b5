package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayplan/wayplan/pkg/agent/orchestrator"
	"github.com/wayplan/wayplan/pkg/config"
)

// blockingRunner records requests and blocks until released (or the run
// context ends).
type blockingRunner struct {
	mu       sync.Mutex
	requests []orchestrator.Request
	release  chan struct{}
	ctxErrs  chan error
}

func newBlockingRunner() *blockingRunner {
	return &blockingRunner{
		release: make(chan struct{}),
		ctxErrs: make(chan error, 16),
	}
}

func (r *blockingRunner) Execute(ctx context.Context, req orchestrator.Request) (*orchestrator.Result, error) {
	r.mu.Lock()
	r.requests = append(r.requests, req)
	r.mu.Unlock()

	select {
	case <-r.release:
		r.ctxErrs <- nil
	case <-ctx.Done():
		r.ctxErrs <- ctx.Err()
	}
	return &orchestrator.Result{RunID: req.RunID, Status: orchestrator.StatusCompleted}, nil
}

func (r *blockingRunner) requestCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func testDispatchConfig() *config.DispatchConfig {
	cfg := config.DefaultDispatchConfig()
	cfg.WorkerCount = 2
	cfg.MaxConcurrentRuns = 2
	cfg.RunTimeout = 5 * time.Second
	cfg.GracefulShutdownTimeout = 2 * time.Second
	return cfg
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestDispatcherRunsSubmittedRequests(t *testing.T) {
	runner := newBlockingRunner()
	d := New(testDispatchConfig(), runner)
	d.Start()
	defer d.Stop()

	runID, err := d.Submit(orchestrator.Request{ItineraryID: "it-1", Task: "generate"})
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	waitFor(t, func() bool { return d.ActiveRuns() == 1 }, "run never started")
	close(runner.release)
	waitFor(t, func() bool { return d.Processed() == 1 }, "run never finished")
	assert.NoError(t, <-runner.ctxErrs)
	assert.Equal(t, runID, runner.requests[0].RunID)
}

func TestDispatcherCancelStopsActiveRun(t *testing.T) {
	runner := newBlockingRunner()
	d := New(testDispatchConfig(), runner)
	d.Start()
	defer d.Stop()

	runID, err := d.Submit(orchestrator.Request{ItineraryID: "it-1", Task: "generate"})
	require.NoError(t, err)
	waitFor(t, func() bool { return d.ActiveRuns() == 1 }, "run never started")

	assert.True(t, d.Cancel(runID))
	assert.ErrorIs(t, <-runner.ctxErrs, context.Canceled)

	waitFor(t, func() bool { return d.ActiveRuns() == 0 }, "run not unregistered")
	assert.False(t, d.Cancel(runID))
}

func TestDispatcherShedsLoadWhenQueueFull(t *testing.T) {
	runner := newBlockingRunner()
	cfg := testDispatchConfig()
	cfg.WorkerCount = 1
	cfg.MaxConcurrentRuns = 1
	d := New(cfg, runner)
	d.Start()
	defer func() {
		close(runner.release)
		d.Stop()
	}()

	// First run occupies the single worker, second fills the queue.
	_, err := d.Submit(orchestrator.Request{ItineraryID: "it-1", Task: "generate"})
	require.NoError(t, err)
	waitFor(t, func() bool { return d.ActiveRuns() == 1 }, "run never started")
	_, err = d.Submit(orchestrator.Request{ItineraryID: "it-2", Task: "generate"})
	require.NoError(t, err)

	_, err = d.Submit(orchestrator.Request{ItineraryID: "it-3", Task: "generate"})
	assert.ErrorIs(t, err, ErrQueueFull)
}

func TestDispatcherStopRejectsNewSubmissions(t *testing.T) {
	runner := newBlockingRunner()
	d := New(testDispatchConfig(), runner)
	d.Start()
	close(runner.release)
	d.Stop()

	_, err := d.Submit(orchestrator.Request{ItineraryID: "it-1", Task: "generate"})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestDispatcherStopWaitsForActiveRuns(t *testing.T) {
	runner := newBlockingRunner()
	d := New(testDispatchConfig(), runner)
	d.Start()

	_, err := d.Submit(orchestrator.Request{ItineraryID: "it-1", Task: "generate"})
	require.NoError(t, err)
	waitFor(t, func() bool { return d.ActiveRuns() == 1 }, "run never started")

	go func() {
		time.Sleep(50 * time.Millisecond)
		close(runner.release)
	}()
	d.Stop()

	assert.Equal(t, 1, d.Processed())
	assert.NoError(t, <-runner.ctxErrs)
}
