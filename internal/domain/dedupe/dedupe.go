// Package dedupe tracks seen submission ids for at-most-once recording.
package dedupe

import (
	"context"
	"sync"
)

// Deduper records seen submission ids.
type Deduper interface {
	// SeenAndRecord atomically checks whether id was seen and records it
	// if not. Returns true if id was already seen.
	SeenAndRecord(ctx context.Context, id string) bool

	// Unrecord removes an id, allowing a retry. Used when a submission
	// was marked seen but its history record could not be enqueued.
	Unrecord(ctx context.Context, id string)

	// Size returns the current number of tracked ids.
	Size() int
}

const defaultMaxSize = 50_000

// inMemoryDeduper keeps ids in a map plus a FIFO ring for eviction order.
// With maxSize <= 0 the deduper is unbounded and the ring is unused.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]struct{}
	ring    []string
	head    int // next slot to overwrite once the ring is full
	filled  int // number of occupied ring slots
	maxSize int
}

// NewInMemoryDeduper creates a deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: defaultMaxSize,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]struct{})
	if d.maxSize > 0 {
		d.ring = make([]string, d.maxSize)
	}

	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[id]; ok {
		return true
	}

	if d.maxSize > 0 {
		// Overwriting an occupied slot evicts the oldest id.
		if d.filled == d.maxSize {
			delete(d.seen, d.ring[d.head])
		} else {
			d.filled++
		}
		d.ring[d.head] = id
		d.head = (d.head + 1) % d.maxSize
	}

	d.seen[id] = struct{}{}
	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// The ring slot keeps its stale id; eviction of a stale slot is a
	// harmless no-op because the map is the source of truth.
	delete(d.seen, id)
}

func (d *inMemoryDeduper) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
