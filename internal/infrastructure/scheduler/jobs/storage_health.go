package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// STORAGE HEALTH JOB
// ══════════════════════════════════════════════════════════════════════════════

// Pinger is implemented by storage backends that can report liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StorageHealthJob periodically pings the configured storage backend and
// logs the outcome. Consecutive failures are counted so an operator can
// spot a degrading connection before requests start failing.
type StorageHealthJob struct {
	target Pinger
	logger *slog.Logger
	config StorageHealthConfig

	consecutiveFailures int
}

// StorageHealthConfig contains configuration for the health job.
type StorageHealthConfig struct {
	// BackendName identifies the backend in log output (e.g. "postgres").
	BackendName string

	// Timeout is the maximum duration for a single ping.
	Timeout time.Duration

	// FailureThreshold is the consecutive-failure count at which the
	// job escalates from warning to error logging.
	FailureThreshold int
}

// DefaultStorageHealthConfig returns sensible defaults.
func DefaultStorageHealthConfig(backendName string) StorageHealthConfig {
	return StorageHealthConfig{
		BackendName:      backendName,
		Timeout:          5 * time.Second,
		FailureThreshold: 3,
	}
}

// NewStorageHealthJob creates a new storage health job.
func NewStorageHealthJob(target Pinger, logger *slog.Logger, config StorageHealthConfig) *StorageHealthJob {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Timeout <= 0 {
		config.Timeout = 5 * time.Second
	}
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 3
	}

	return &StorageHealthJob{
		target: target,
		logger: logger.With("job", "storage_health", "backend", config.BackendName),
		config: config,
	}
}

// Name returns the job name.
func (j *StorageHealthJob) Name() string {
	return "storage_health"
}

// Description returns a human-readable description.
func (j *StorageHealthJob) Description() string {
	return "Pings the storage backend and tracks consecutive failures"
}

// Run executes the job.
func (j *StorageHealthJob) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.config.Timeout)
	defer cancel()

	start := time.Now()
	err := j.target.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		j.consecutiveFailures++
		if j.consecutiveFailures >= j.config.FailureThreshold {
			j.logger.Error("storage unreachable",
				"consecutive_failures", j.consecutiveFailures,
				"latency", latency.String(),
				"error", err,
			)
		} else {
			j.logger.Warn("storage ping failed",
				"consecutive_failures", j.consecutiveFailures,
				"latency", latency.String(),
				"error", err,
			)
		}
		return fmt.Errorf("ping %s: %w", j.config.BackendName, err)
	}

	if j.consecutiveFailures > 0 {
		j.logger.Info("storage recovered",
			"after_failures", j.consecutiveFailures,
			"latency", latency.String(),
		)
	}
	j.consecutiveFailures = 0

	j.logger.Debug("storage healthy", "latency", latency.String())

	return nil
}

// ConsecutiveFailures returns the current failure streak.
func (j *StorageHealthJob) ConsecutiveFailures() int {
	return j.consecutiveFailures
}
