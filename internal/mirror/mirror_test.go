package mirror_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/garnizeh/skillswap/internal/mirror"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// verify no goroutine leaks across tests in this package
	goleak.VerifyTestMain(m)
}

func TestEnqueueDelivers(t *testing.T) {
	delivered := make(chan mirror.Op, 1)
	handlers := map[string]mirror.Handler{
		"save_session": func(ctx context.Context, op mirror.Op) error {
			delivered <- op
			return nil
		},
	}

	q := mirror.NewQueue(handlers, slog.Default(), 1)
	q.Start(context.Background())
	defer q.Stop()

	q.Enqueue(mirror.Op{Kind: "save_session", Payload: "payload"})

	select {
	case op := <-delivered:
		if op.Payload != "payload" {
			t.Fatalf("unexpected payload: %v", op.Payload)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("handler was not called")
	}
}

func TestHandlerErrorIsSwallowed(t *testing.T) {
	var calls atomic.Int32
	handlers := map[string]mirror.Handler{
		"save_review": func(ctx context.Context, op mirror.Op) error {
			calls.Add(1)
			return errors.New("remote down")
		},
	}

	q := mirror.NewQueue(handlers, slog.Default(), 1)
	q.Start(context.Background())

	q.Enqueue(mirror.Op{Kind: "save_review"})

	// give the single worker time to process before stopping
	deadline := time.Now().Add(3 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	q.Stop()

	// at-most-once: the failed op is never retried
	if got := calls.Load(); got != 1 {
		t.Fatalf("handler called %d times, want exactly 1", got)
	}
}

func TestUnknownKindIsDropped(t *testing.T) {
	q := mirror.NewQueue(map[string]mirror.Handler{}, slog.Default(), 1)
	q.Start(context.Background())
	q.Enqueue(mirror.Op{Kind: "bogus"})
	time.Sleep(50 * time.Millisecond)
	q.Stop()
}

func TestDisabledQueueDropsSilently(t *testing.T) {
	var calls atomic.Int32
	handlers := map[string]mirror.Handler{
		"send_message": func(ctx context.Context, op mirror.Op) error {
			calls.Add(1)
			return nil
		},
	}

	q := mirror.NewQueue(handlers, slog.Default(), 1)
	q.Start(context.Background())
	q.Disable()

	q.Enqueue(mirror.Op{Kind: "send_message"})
	time.Sleep(100 * time.Millisecond)
	q.Stop()

	if calls.Load() != 0 {
		t.Fatalf("disabled queue must not deliver ops")
	}
}

func TestStopWithContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := mirror.NewQueue(map[string]mirror.Handler{}, slog.Default(), 3)
	q.Start(ctx)
	cancel()
	q.Stop()
}
