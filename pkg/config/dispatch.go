package config

import "time"

// DispatchConfig contains dispatcher and worker pool configuration.
// These values control how planning runs are admitted and processed.
type DispatchConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	// Each worker independently picks up queued runs.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentRuns caps runs being processed at once per replica.
	MaxConcurrentRuns int `yaml:"max_concurrent_runs"`

	// RunTimeout is the maximum wall-clock time for one planning run.
	// Per-request deadlines may shorten it, never extend it.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown. Should match RunTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is the WebSocket keepalive ping interval.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// CommitRetries bounds optimistic-concurrency retries when an agent
	// run commits against a document that moved underneath it.
	CommitRetries int `yaml:"commit_retries"`
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		WorkerCount:             4,
		MaxConcurrentRuns:       8,
		RunTimeout:              5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		CommitRetries:           3,
	}
}
