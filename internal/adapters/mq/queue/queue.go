// Package queue provides the bounded in-memory queue that decouples the
// synchronous scoring path from asynchronous history recording.
package queue

import (
	"context"
	"sync"

	"github.com/parvinm/screenwise/internal/domain/model"
	"github.com/parvinm/screenwise/pkg/metrics"
)

const defaultCapacity = 10_000

// Assessment is the payload type flowing through the queue.
type Assessment = model.Assessment

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds an assessment. Returns false if the queue is full
	// or closed and the assessment was not accepted.
	Enqueue(ctx context.Context, a Assessment) bool

	// Dequeue returns a channel receiving assessments as they arrive.
	// The channel closes when the queue is closed and drained.
	Dequeue(ctx context.Context) <-chan Assessment

	// Len returns the current number of queued assessments.
	Len(ctx context.Context) int

	// Close stops accepting new assessments.
	Close() error
}

// InMemoryQueue implements Queue with a buffered channel.
type InMemoryQueue struct {
	items    chan Assessment
	capacity int

	mu     sync.RWMutex
	closed bool
}

// NewInMemoryQueue creates a queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(q)
	}

	q.items = make(chan Assessment, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)
	metrics.UpdateQueueUtilization(0)

	return q
}

// Enqueue adds an assessment without blocking.
func (q *InMemoryQueue) Enqueue(ctx context.Context, a Assessment) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "closed")
		return false
	}

	select {
	case q.items <- a:
		metrics.RecordQueueEnqueue()
		q.publishGauges()
		return true
	case <-ctx.Done():
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "context_cancelled")
		return false
	default:
		metrics.RecordQueueEnqueueError()
		metrics.RecordErrorByComponent("queue", "full")
		return false
	}
}

// Dequeue returns a channel receiving assessments until the queue closes.
func (q *InMemoryQueue) Dequeue(ctx context.Context) <-chan Assessment {
	out := make(chan Assessment)
	go func() {
		defer close(out)
		for a := range q.items {
			select {
			case out <- a:
				metrics.RecordQueueDequeue()
				q.publishGauges()
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Len returns the current number of queued assessments.
func (q *InMemoryQueue) Len(_ context.Context) int {
	return len(q.items)
}

// Close stops accepting new assessments and lets consumers drain.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.items)
	q.closed = true
	return nil
}

func (q *InMemoryQueue) publishGauges() {
	size := len(q.items)
	metrics.UpdateQueueSize(size)
	metrics.UpdateQueueUtilization(float64(size) / float64(q.capacity))
}
