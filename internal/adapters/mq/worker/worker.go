// Package worker drains the assessment queue into the history store.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/pkg/logger"
	"github.com/parvinm/screenwise/pkg/metrics"
)

const workerShutdownTimeout = 5 * time.Second

// Recorder persists a scored assessment.
type Recorder interface {
	Record(ctx context.Context, a model.Assessment) error
}

// Queue defines how workers receive assessments.
type Queue interface {
	Dequeue(ctx context.Context) <-chan model.Assessment
}

// Worker consumes assessments from the queue and records them.
type Worker struct {
	queue    Queue
	recorder Recorder
	name     string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewWorker creates a worker with configuration options.
func NewWorker(queue Queue, recorder Recorder, opts ...Option) *Worker {
	w := &Worker{
		queue:    queue,
		recorder: recorder,
		name:     "worker",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}

	return w
}

// Run processes assessments until ctx is cancelled, Shutdown is called,
// or the queue closes.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)

	items := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case a, ok := <-items:
			if !ok {
				return
			}
			if err := w.process(ctx, a); err != nil {
				w.logger.Error(ctx, "recording assessment failed",
					logger.String("assessmentID", a.ID),
					logger.Error(err),
				)
			}
		}
	}
}

// Shutdown stops the worker and waits for it to finish.
func (w *Worker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("worker shutdown timed out: %w", ctx.Err())
	}
}

func (w *Worker) process(ctx context.Context, a model.Assessment) error {
	start := time.Now()
	defer func() {
		metrics.RecordWorkerProcessingLatency(float64(time.Since(start).Milliseconds()))
	}()

	if err := w.recorder.Record(ctx, a); err != nil {
		metrics.RecordWorkerError()
		metrics.RecordErrorByComponent("worker", "record_failed")
		return fmt.Errorf("record assessment %s: %w", a.ID, err)
	}
	return nil
}

// Pool manages a fixed set of workers over one queue.
type Pool struct {
	workers []*Worker
	logger  logger.Logger
}

// NewPool creates a pool of workerCount workers. A count below one
// defaults to the number of CPUs.
func NewPool(workerCount int, queue Queue, recorder Recorder) *Pool {
	if workerCount < 1 {
		workerCount = runtime.NumCPU()
	}

	p := &Pool{
		workers: make([]*Worker, workerCount),
		logger:  logger.Get().Named("worker-pool"),
	}
	for i := range p.workers {
		p.workers[i] = NewWorker(queue, recorder, WithName("worker-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)

	return p
}

// Start launches all workers.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop shuts down all workers, waiting up to a bounded time for each.
func (p *Pool) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		if err := w.Shutdown(ctx); err != nil {
			p.logger.Warn(ctx, "worker did not stop in time", logger.Int("worker", i))
		}
	}
	metrics.UpdateWorkerCount(0)
}
