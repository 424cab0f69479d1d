// Package scheduler runs the recurring execution loop in the background.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/cohetebrands/backoffice/internal/application/usecase/recurring"
)

// Worker periodically materializes due recurring templates. The REST batch
// endpoint shares the same use case, so operator-triggered and worker runs
// behave identically; the optimistic guard in the repository keeps an
// overlapping pair from double-charging a template.
type Worker struct {
	executePending *recurring.ExecutePendingUseCase
	pollInterval   time.Duration
}

// WorkerConfig holds configuration for the scheduler worker.
type WorkerConfig struct {
	PollInterval time.Duration
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 1 * time.Hour,
	}
}

// NewWorker creates a new scheduler worker.
func NewWorker(executePending *recurring.ExecutePendingUseCase, config WorkerConfig) *Worker {
	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultWorkerConfig().PollInterval
	}
	return &Worker{
		executePending: executePending,
		pollInterval:   pollInterval,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Scheduler worker started", "poll_interval", w.pollInterval)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Run immediately on start, then on ticker.
	w.run(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Scheduler worker shutting down")
			return
		case <-ticker.C:
			w.run(ctx)
		}
	}
}

// run executes one batch pass over the due templates.
func (w *Worker) run(ctx context.Context) {
	output, err := w.executePending.Execute(ctx)
	if err != nil {
		slog.Error("Scheduler run failed", "error", err)
		return
	}

	if len(output.Transactions) == 0 && len(output.Failures) == 0 {
		return
	}

	slog.Info("Scheduler run finished",
		"executed", len(output.Transactions),
		"failed", len(output.Failures),
	)
}
