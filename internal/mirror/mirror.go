// Package mirror is the outbound best-effort sync queue. Local state
// mutations enqueue an operation and move on; workers deliver each
// operation to the remote store at most once. Failures are logged and
// dropped, never retried and never surfaced to the caller: the local copy
// is authoritative and remote divergence after a failed mirror is accepted.
package mirror

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Op is one outbound mutation to replay against the remote store.
type Op struct {
	Kind    string
	Payload any
}

// Handler delivers one operation. A returned error is terminal for the op.
type Handler func(ctx context.Context, op Op) error

// Queue fans operations out to worker goroutines.
type Queue struct {
	handlers    map[string]Handler
	logger      *slog.Logger
	workerCount int
	ops         chan Op
	stop        chan struct{}
	wg          sync.WaitGroup
	disabled    atomic.Bool
}

func NewQueue(handlers map[string]Handler, logger *slog.Logger, workerCount int) *Queue {
	if workerCount <= 0 {
		workerCount = 2
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		handlers:    handlers,
		logger:      logger,
		workerCount: workerCount,
		ops:         make(chan Op, 64),
		stop:        make(chan struct{}),
	}
}

// Start launches the worker goroutines
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workerCount; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
}

// Stop signals workers to stop and waits for them. Queued operations that
// have not been picked up yet are dropped; at-most-once allows that.
func (q *Queue) Stop() {
	close(q.stop)
	q.wg.Wait()
}

// Disable turns the queue into a no-op. Flipped once, at startup, when the
// initial bulk fetch fails and the app enters offline mode.
func (q *Queue) Disable() {
	q.disabled.Store(true)
}

// Enqueue hands an operation to the workers without blocking the caller.
// A full queue drops the op with a warning; the local mutation has already
// happened and must not be held up by the mirror.
func (q *Queue) Enqueue(op Op) {
	if q.disabled.Load() {
		return
	}
	select {
	case q.ops <- op:
	default:
		q.logger.Warn("mirror queue full, dropping op", slog.String("kind", op.Kind))
	}
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	for {
		select {
		case <-q.stop:
			return
		case <-ctx.Done():
			q.logger.Info("context canceled, mirror worker exiting", slog.Int("id", id))
			return
		case op := <-q.ops:
			h, ok := q.handlers[op.Kind]
			if !ok {
				q.logger.Error("no mirror handler", slog.String("kind", op.Kind))
				continue
			}
			if err := h(ctx, op); err != nil {
				// Swallowed on purpose: at-most-once, silent loss.
				q.logger.Error("mirror delivery failed",
					slog.String("kind", op.Kind),
					slog.Any("err", err),
				)
			}
		}
	}
}
