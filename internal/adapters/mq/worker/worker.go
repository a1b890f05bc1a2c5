package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/accent/internal/adapters/mq/queue"
	"github.com/okian/accent/internal/domain/progress"
	"github.com/okian/accent/pkg/logger"
	"github.com/okian/accent/pkg/metrics"
)

const defaultWriteTimeout = 5 * time.Second

// Queue defines how the worker receives requests.
type Queue interface {
	Dequeue() <-chan queue.Request
}

// Snapshotter supplies the statistics to write.
type Snapshotter interface {
	Stats() progress.Stats
}

// Persister stores a statistics snapshot.
type Persister interface {
	Persist(ctx context.Context, stats progress.Stats) error
}

// Worker writes snapshots when asked.
type Worker interface {
	// Run processes requests until ctx is canceled, Shutdown is called or
	// the queue is closed.
	Run(ctx context.Context)

	// Flush writes the current snapshot synchronously.
	Flush(ctx context.Context) error

	// Shutdown stops the loop and writes a final snapshot.
	Shutdown(ctx context.Context) error
}

// InMemoryWorker is the single writer behind the stats store.
type InMemoryWorker struct {
	queue        Queue
	source       Snapshotter
	store        Persister
	name         string
	writeTimeout time.Duration

	// writeMu serializes loop writes with Flush.
	writeMu sync.Mutex
	writes  uint64
	failed  uint64

	shutdownOnce sync.Once
	shutdown     chan struct{}
	done         chan struct{}
	started      chan struct{}
	startOnce    sync.Once

	logger logger.Logger
}

// NewInMemoryWorker creates a worker reading q and writing source's
// snapshot to store.
func NewInMemoryWorker(q Queue, source Snapshotter, store Persister, opts ...Option) *InMemoryWorker {
	w := &InMemoryWorker{
		queue:        q,
		source:       source,
		store:        store,
		name:         "persist",
		writeTimeout: defaultWriteTimeout,
		shutdown:     make(chan struct{}),
		done:         make(chan struct{}),
		started:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop.
func (w *InMemoryWorker) Run(ctx context.Context) {
	w.startOnce.Do(func() { close(w.started) })
	defer close(w.done)

	requests := w.queue.Dequeue()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case r, ok := <-requests:
			if !ok {
				return
			}
			if err := w.write(ctx); err != nil {
				w.logger.Error(ctx, "persisting stats failed",
					logger.String("reason", r.Reason),
					logger.Duration("queued", time.Since(r.At)),
					logger.Error(err),
				)
			}
		}
	}
}

// Flush writes the current snapshot now.
func (w *InMemoryWorker) Flush(ctx context.Context) error {
	return w.write(ctx)
}

// Shutdown stops the loop, waits for it and flushes once more.
func (w *InMemoryWorker) Shutdown(ctx context.Context) error {
	w.shutdownOnce.Do(func() { close(w.shutdown) })

	select {
	case <-w.started:
		select {
		case <-w.done:
		case <-ctx.Done():
			w.logger.Warn(ctx, "shutdown timed out")
			return fmt.Errorf("shutdown timed out: %w", ctx.Err())
		}
	default:
	}
	return w.Flush(ctx)
}

// Stats reports how many writes succeeded and failed.
func (w *InMemoryWorker) Stats() (writes, failed uint64) {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	return w.writes, w.failed
}

func (w *InMemoryWorker) write(ctx context.Context) error {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), w.writeTimeout)
	defer cancel()

	start := time.Now()
	err := w.store.Persist(ctx, w.source.Stats())
	metrics.RecordPersist(float64(time.Since(start).Milliseconds()), time.Now().Unix(), err)
	if err != nil {
		w.failed++
		return fmt.Errorf("persist: %w", err)
	}
	w.writes++
	return nil
}
