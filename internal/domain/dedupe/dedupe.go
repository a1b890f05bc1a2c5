// Package dedupe remembers client request ids so that a retried request
// replays its first outcome instead of being applied twice.
package dedupe

import (
	"container/list"
	"context"
	"sync"
)

const defaultMaxSize = 10000

// State describes what Claim found for an id.
type State int

const (
	// New means the id was unknown and is now claimed by the caller.
	New State = iota
	// Pending means another caller claimed the id and has not completed it.
	Pending
	// Done means the id completed; its stored value is returned.
	Done
)

// Deduper tracks request ids and their outcomes.
type Deduper[V any] interface {
	// Claim atomically records id if it is unknown. For a completed id the
	// stored value is returned with Done.
	Claim(ctx context.Context, id string) (V, State)

	// Complete stores the outcome of a claimed id.
	Complete(ctx context.Context, id string, v V)

	// Unrecord forgets id so that it may be retried, used when the
	// claimed work failed.
	Unrecord(ctx context.Context, id string)

	Size() int64
}

type entry[V any] struct {
	id    string
	value V
	done  bool
}

// inMemoryDeduper keeps at most maxSize ids and evicts the oldest claim.
// A maxSize <= 0 keeps every id.
type inMemoryDeduper[V any] struct {
	mu      sync.Mutex
	seen    map[string]*list.Element
	order   *list.List // front is the oldest claim
	maxSize int
}

// NewInMemoryDeduper creates a new in-memory deduper.
func NewInMemoryDeduper[V any](opts ...Option) Deduper[V] {
	cfg := config{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &inMemoryDeduper[V]{
		seen:    make(map[string]*list.Element),
		order:   list.New(),
		maxSize: cfg.maxSize,
	}
}

func (d *inMemoryDeduper[V]) Claim(_ context.Context, id string) (V, State) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.seen[id]; ok {
		e := el.Value.(*entry[V])
		if e.done {
			return e.value, Done
		}
		var zero V
		return zero, Pending
	}

	if d.maxSize > 0 && len(d.seen) >= d.maxSize {
		d.evictOldest()
	}
	d.seen[id] = d.order.PushBack(&entry[V]{id: id})

	var zero V
	return zero, New
}

func (d *inMemoryDeduper[V]) Complete(_ context.Context, id string, v V) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.seen[id]; ok {
		e := el.Value.(*entry[V])
		e.value = v
		e.done = true
	}
}

func (d *inMemoryDeduper[V]) Unrecord(_ context.Context, id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if el, ok := d.seen[id]; ok {
		d.order.Remove(el)
		delete(d.seen, id)
	}
}

// evictOldest must be called with d.mu held.
func (d *inMemoryDeduper[V]) evictOldest() {
	front := d.order.Front()
	if front == nil {
		return
	}
	d.order.Remove(front)
	delete(d.seen, front.Value.(*entry[V]).id)
}

func (d *inMemoryDeduper[V]) Size() int64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return int64(len(d.seen))
}
