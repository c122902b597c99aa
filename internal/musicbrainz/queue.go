package musicbrainz

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/dramaseed/dramaseed-server/internal/errors"
)

// Queue serializes lookup calls: one at a time, paced by the limiter, in
// submission order. The queue is bounded; a call that does not fit fails
// immediately instead of piling up.
type Queue struct {
	jobs    chan job
	limiter *rate.Limiter

	stopOnce sync.Once
	done     chan struct{}
}

type job struct {
	ctx  context.Context
	run  func(context.Context) error
	errc chan error
}

// NewQueue creates a queue allowing one call per interval with at most size
// calls waiting.
func NewQueue(interval time.Duration, size int) *Queue {
	q := &Queue{
		jobs:    make(chan job, size),
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		done:    make(chan struct{}),
	}
	go q.work()
	return q
}

// Do submits fn and blocks until it ran. Callers are served in submission
// order. When the queue is full the newest call fails with a rate limited
// error right away.
func (q *Queue) Do(ctx context.Context, fn func(context.Context) error) error {
	j := job{ctx: ctx, run: fn, errc: make(chan error, 1)}
	select {
	case q.jobs <- j:
	default:
		return errors.RateLimited("lookup queue is full")
	}

	select {
	case err := <-j.errc:
		return err
	case <-ctx.Done():
		// The job still runs to completion in the worker; the caller just
		// stops waiting for it.
		return ctx.Err()
	}
}

func (q *Queue) work() {
	for {
		select {
		case j := <-q.jobs:
			if err := q.limiter.Wait(j.ctx); err != nil {
				j.errc <- err
				continue
			}
			j.errc <- j.run(j.ctx)
		case <-q.done:
			return
		}
	}
}

// Stop shuts down the worker goroutine. Queued jobs are abandoned.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		close(q.done)
	})
}
