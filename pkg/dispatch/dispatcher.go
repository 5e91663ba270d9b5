// Package dispatch runs orchestrations asynchronously: a bounded queue
// feeding a fixed worker pool, a cancel registry keyed by run ID, and
// graceful shutdown that lets in-flight runs finish.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wayplan/wayplan/pkg/agent/orchestrator"
	"github.com/wayplan/wayplan/pkg/config"
)

// Dispatcher errors.
var (
	ErrStopped   = errors.New("dispatcher is stopped")
	ErrQueueFull = errors.New("run queue is full")
)

// Runner executes one orchestration. Satisfied by *orchestrator.Orchestrator.
type Runner interface {
	Execute(ctx context.Context, req orchestrator.Request) (*orchestrator.Result, error)
}

// Dispatcher owns the planning-run worker pool.
type Dispatcher struct {
	cfg    *config.DispatchConfig
	runner Runner

	queue    chan orchestrator.Request
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Run cancel registry: run_id → cancel function.
	mu         sync.RWMutex
	activeRuns map[string]context.CancelFunc
	started    bool
	processed  int
}

// New creates a dispatcher. Call Start before submitting.
func New(cfg *config.DispatchConfig, runner Runner) *Dispatcher {
	return &Dispatcher{
		cfg:        cfg,
		runner:     runner,
		queue:      make(chan orchestrator.Request, cfg.MaxConcurrentRuns),
		stopCh:     make(chan struct{}),
		activeRuns: make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines. Safe to call once; subsequent
// calls are no-ops.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	if d.started {
		d.mu.Unlock()
		slog.Warn("Dispatcher already started, ignoring duplicate Start call")
		return
	}
	d.started = true
	d.mu.Unlock()

	slog.Info("Starting dispatcher", "worker_count", d.cfg.WorkerCount)
	for i := 0; i < d.cfg.WorkerCount; i++ {
		d.wg.Add(1)
		go d.worker(fmt.Sprintf("worker-%d", i))
	}
}

// Submit queues one orchestration and returns its run ID immediately.
// A full queue fails fast with ErrQueueFull so callers can shed load.
func (d *Dispatcher) Submit(req orchestrator.Request) (string, error) {
	if req.RunID == "" {
		req.RunID = uuid.New().String()
	}
	select {
	case <-d.stopCh:
		return "", ErrStopped
	default:
	}
	select {
	case d.queue <- req:
		return req.RunID, nil
	default:
		return "", ErrQueueFull
	}
}

// Cancel triggers context cancellation for an in-flight run. Returns
// false when the run is not active (unknown, queued, or already done);
// queued runs cannot be cancelled until a worker picks them up.
func (d *Dispatcher) Cancel(runID string) bool {
	d.mu.RLock()
	cancel, ok := d.activeRuns[runID]
	d.mu.RUnlock()
	if ok {
		cancel()
	}
	return ok
}

// ActiveRuns returns the number of runs currently being processed.
func (d *Dispatcher) ActiveRuns() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.activeRuns)
}

// Processed returns the number of runs completed since start.
func (d *Dispatcher) Processed() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.processed
}

// Stop shuts the dispatcher down: no new submissions, in-flight runs get
// up to GracefulShutdownTimeout to finish, then are cancelled. Queued
// runs that no worker picked up are dropped. Safe to call more than once.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		close(d.stopCh)

		done := make(chan struct{})
		go func() {
			d.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(d.cfg.GracefulShutdownTimeout):
			slog.Warn("Graceful shutdown timeout reached, cancelling active runs",
				"active", d.ActiveRuns())
			d.mu.RLock()
			for _, cancel := range d.activeRuns {
				cancel()
			}
			d.mu.RUnlock()
			<-done
		}
		slog.Info("Dispatcher stopped", "runs_processed", d.Processed())
	})
}

// worker picks runs off the queue until stopped. The stop check comes
// first so a stop signal wins over a backlog.
func (d *Dispatcher) worker(id string) {
	defer d.wg.Done()
	log := slog.With("worker_id", id)
	log.Info("Dispatch worker started")

	for {
		select {
		case <-d.stopCh:
			log.Info("Dispatch worker shutting down")
			return
		case req := <-d.queue:
			d.process(req)
		}
	}
}

func (d *Dispatcher) process(req orchestrator.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.RunTimeout)
	defer cancel()

	d.mu.Lock()
	d.activeRuns[req.RunID] = cancel
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		delete(d.activeRuns, req.RunID)
		d.processed++
		d.mu.Unlock()
	}()

	start := time.Now()
	result, err := d.runner.Execute(ctx, req)
	if err != nil {
		slog.Error("Orchestration failed",
			"run_id", req.RunID,
			"itinerary_id", req.ItineraryID,
			"task", req.Task,
			"error", err)
		return
	}
	slog.Info("Orchestration finished",
		"run_id", req.RunID,
		"itinerary_id", req.ItineraryID,
		"task", req.Task,
		"status", result.Status,
		"version", result.Version,
		"duration", time.Since(start).Round(time.Millisecond))
}
