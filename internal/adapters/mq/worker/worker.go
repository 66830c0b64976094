// Package worker defines worker contracts for asynchronous rating of
// queued sessions.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/okian/campusgen/internal/adapters/mq/queue"
	"github.com/okian/campusgen/internal/domain/rating"
	"github.com/okian/campusgen/internal/domain/session"
	"github.com/okian/campusgen/pkg/logger"
	"github.com/okian/campusgen/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	workerShutdownTimeout   = 5 * time.Second
	poolShutdownTimeout     = 30 * time.Second
)

// Rater produces the rating for a session.
type Rater interface {
	Rate(ctx context.Context, s session.Session) (rating.Rating, error)
}

// Collector receives each rated session at its batch slot.
type Collector interface {
	Collect(ctx context.Context, index int, rec rating.RatedSession) error
}

// Updater folds a rated session into the teacher aggregates.
type Updater interface {
	Add(ctx context.Context, teacherID string, totalScore float64) error
}

// Queue defines how workers receive tasks.
type Queue interface {
	Dequeue(ctx context.Context) <-chan queue.Task
}

// Worker processes rating tasks until stopped.
type Worker interface {
	// Run starts the worker loop until ctx is canceled.
	Run(ctx context.Context)

	// Shutdown gracefully stops the worker.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker implements Worker for processing rating tasks.
type InMemoryWorker struct {
	queue     Queue
	rater     Rater
	collector Collector
	updater   Updater
	name      string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewInMemoryWorker creates a new worker with configuration options.
func NewInMemoryWorker(queue Queue, rater Rater, collector Collector, updater Updater, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:     queue,
		rater:     rater,
		collector: collector,
		updater:   updater,
		name:      "worker", // default name
		shutdown:  make(chan struct{}),
		done:      make(chan struct{}),
		logger:    logger.Get().Named("worker"), // will be updated by options
	}

	// Apply all options
	for _, opt := range opts {
		opt(w)
	}

	if w.name != "worker" {
		w.logger = w.logger.Named(w.name)
	}

	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	defer func() {
		close(w.done)
	}()

	taskChan := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case task, ok := <-taskChan:
			if !ok {
				// Channel closed, worker should stop
				return
			}

			if err := w.processTask(ctx, task); err != nil {
				w.logger.Error(ctx, "error processing task", logger.Error(err))
			}
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processTask rates a single session, stores the record at its slot, and
// folds the total into the teacher aggregates.
func (w *InMemoryWorker) processTask(ctx context.Context, task queue.Task) error {
	start := time.Now()
	defer func() {
		latency := time.Since(start).Milliseconds()
		metrics.RecordWorkerProcessingLatency(float64(latency))
	}()

	r, err := w.rater.Rate(ctx, task.Session)
	if err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "rating_error")
		w.logger.Error(ctx, "rating failed for session",
			logger.String("sessionID", task.Session.ID),
			logger.Error(err),
		)
		return fmt.Errorf("failed to rate session %s: %w", task.Session.ID, err)
	}

	rec := rating.RatedSession{Session: task.Session, Ratings: r}
	if err := w.collector.Collect(ctx, task.Index, rec); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "collect_error")
		return fmt.Errorf("failed to collect session %s: %w", task.Session.ID, err)
	}

	if err := w.updater.Add(ctx, task.Session.TeacherID, r.TotalScore); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "aggregate_error")
		w.logger.Error(ctx, "aggregate update failed for session",
			logger.String("sessionID", task.Session.ID),
			logger.Error(err),
		)
		return fmt.Errorf("aggregate update failed: %w", err)
	}

	return nil
}

// Pool manages multiple workers.
type Pool struct {
	workers   []*InMemoryWorker
	queue     Queue
	rater     Rater
	collector Collector
	updater   Updater

	// Shutdown control
	shutdown chan struct{}

	// Logging
	logger logger.Logger
}

// NewPool creates a new worker pool.
func NewPool(workerCount int, queue Queue, rater Rater, collector Collector, updater Updater) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU() * defaultWorkerMultiplier
	}

	pool := &Pool{
		workers:   make([]*InMemoryWorker, workerCount),
		queue:     queue,
		rater:     rater,
		collector: collector,
		updater:   updater,
		shutdown:  make(chan struct{}),
		logger:    logger.Get().Named("worker-pool"),
	}

	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewInMemoryWorker(
			queue,
			rater,
			collector,
			updater,
			WithName("worker-"+strconv.Itoa(i)),
		)
	}

	metrics.UpdateWorkerActiveCount(workerCount)

	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, worker := range p.workers {
		go worker.Run(ctx)
	}
}

// Wait blocks until every worker has drained and stopped. Close the queue
// first, otherwise the workers never exit.
func (p *Pool) Wait(ctx context.Context) error {
	for i, worker := range p.workers {
		select {
		case <-worker.done:
		case <-ctx.Done():
			p.logger.Warn(ctx, "wait cancelled before workers drained", logger.Int("worker_id", i))
			return ctx.Err()
		}
	}
	return nil
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	close(p.shutdown)

	for _, worker := range p.workers {
		close(worker.shutdown)
	}
	for _, worker := range p.workers {
		select {
		case <-worker.done:
			// Worker finished
		case <-time.After(workerShutdownTimeout):
			// Worker timeout
		}
	}
}

// Shutdown gracefully shuts down the entire worker pool.
func (p *Pool) Shutdown(ctx context.Context) error {
	// First close the queue to stop new tasks
	if closer, ok := p.queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, worker := range p.workers {
		select {
		case <-worker.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}

	return nil
}
