package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	queue "github.com/okian/accent/internal/adapters/mq/queue"
	worker "github.com/okian/accent/internal/adapters/mq/worker"
	"github.com/okian/accent/internal/domain/progress"
	logging "github.com/okian/accent/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logging.Init()
}

type mockPersister struct {
	mu    sync.Mutex
	saved []progress.Stats
	err   error
}

func (m *mockPersister) Persist(_ context.Context, stats progress.Stats) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, stats)
	return nil
}

func (m *mockPersister) setError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *mockPersister) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saved)
}

func (m *mockPersister) last() progress.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved[len(m.saved)-1]
}

func TestInMemoryWorker(t *testing.T) {
	convey.Convey("Given a worker over a tracker", t, func() {
		q := queue.NewInMemoryQueue()
		tracker := progress.New()
		store := &mockPersister{}
		w := worker.NewInMemoryWorker(q, tracker, store, worker.WithName("persist-test"))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		convey.Convey("When a request is enqueued while running", func() {
			go w.Run(ctx)
			tracker.SaveAttempt("water", true, "t_flap")
			q.Enqueue(ctx, queue.Request{Reason: "attempt"})

			convey.Convey("Then the latest snapshot is written", func() {
				convey.So(waitFor(func() bool { return store.count() == 1 }), convey.ShouldBeTrue)
				convey.So(store.last().TotalRounds, convey.ShouldEqual, 1)

				writes, failed := w.Stats()
				convey.So(writes, convey.ShouldEqual, 1)
				convey.So(failed, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When persisting fails", func() {
			store.setError(errors.New("disk full"))
			go w.Run(ctx)
			q.Enqueue(ctx, queue.Request{Reason: "attempt"})

			convey.Convey("Then the worker keeps running and counts the failure", func() {
				convey.So(waitFor(func() bool { _, failed := w.Stats(); return failed == 1 }), convey.ShouldBeTrue)

				store.setError(nil)
				q.Enqueue(ctx, queue.Request{Reason: "retry"})
				convey.So(waitFor(func() bool { return store.count() == 1 }), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When shutting down", func() {
			go w.Run(ctx)
			tracker.SaveAttempt("feel", false, "stress")

			err := w.Shutdown(context.Background())

			convey.Convey("Then a final snapshot is flushed", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(store.count(), convey.ShouldBeGreaterThanOrEqualTo, 1)
				convey.So(store.last().MostMissed["feel"], convey.ShouldEqual, 1)
			})

			convey.Convey("And a second shutdown is harmless", func() {
				convey.So(w.Shutdown(context.Background()), convey.ShouldBeNil)
			})
		})

		convey.Convey("When shutting down a worker that never ran", func() {
			err := w.Shutdown(context.Background())

			convey.Convey("Then it still flushes", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(store.count(), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the queue is closed", func() {
			done := make(chan struct{})
			go func() {
				w.Run(ctx)
				close(done)
			}()
			_ = q.Close()

			convey.Convey("Then Run returns", func() {
				select {
				case <-done:
				case <-time.After(time.Second):
					convey.So("run did not return", convey.ShouldBeEmpty)
				}
			})
		})
	})
}

func waitFor(cond func() bool) bool {
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
