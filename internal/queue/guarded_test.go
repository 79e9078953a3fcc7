package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/randomizedcoder/twolockq/internal/queue"
)

func TestGuardedNode_AcquireRelease(t *testing.T) {
	n := queue.NewGuardedNodeWithNext[int](nil, 4)

	o := n.Acquire()
	if !o.Valid() {
		t.Fatal("expected Acquire() to return a valid owner")
	}
	got, err := n.Content(o)
	if err != nil {
		t.Fatalf("Content() error: %v", err)
	}
	if got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if err := n.Release(o); err != nil {
		t.Fatalf("Release() error: %v", err)
	}

	// Same token after release is refused
	if _, err := n.Content(o); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("expected ErrAccessViolation after Release(), got %v", err)
	}
}

func TestGuardedNode_NotAcquired(t *testing.T) {
	n := queue.NewGuardedNode("x")
	var none queue.Owner

	if _, err := n.Content(none); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("Content: expected ErrAccessViolation, got %v", err)
	}
	if err := n.SetContent(none, "y"); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("SetContent: expected ErrAccessViolation, got %v", err)
	}
	if _, err := n.Next(none); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("Next: expected ErrAccessViolation, got %v", err)
	}
	if err := n.SetNext(none, nil); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("SetNext: expected ErrAccessViolation, got %v", err)
	}
	if err := n.Release(none); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("Release: expected ErrAccessViolation, got %v", err)
	}

	var ave *queue.AccessViolationError
	_, err := n.Content(none)
	if !errors.As(err, &ave) || ave.Op != "Content" {
		t.Errorf("expected AccessViolationError{Op: Content}, got %v", err)
	}
}

func TestGuardedNode_ForeignOwner(t *testing.T) {
	a := queue.NewGuardedNode(1)
	b := queue.NewGuardedNode(2)

	oa := a.Acquire()
	defer a.Release(oa) //nolint:errcheck

	if _, err := b.Content(oa); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("expected ErrAccessViolation using another node's owner, got %v", err)
	}
	if err := b.SetContent(oa, 9); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("expected ErrAccessViolation on SetContent with foreign owner, got %v", err)
	}
	if _, err := a.Content(oa); err != nil {
		t.Errorf("expected owner of a to keep access, got %v", err)
	}
}

func TestGuardedNode_SetFields(t *testing.T) {
	tail := queue.NewGuardedNode(2)
	head := queue.NewGuardedNode(1)

	err := head.With(func(o queue.Owner) error {
		if err := head.SetContent(o, 10); err != nil {
			return err
		}
		return head.SetNext(o, tail)
	})
	if err != nil {
		t.Fatalf("With() error: %v", err)
	}

	o := head.Acquire()
	defer head.Release(o) //nolint:errcheck

	v, _ := head.Content(o)
	next, _ := head.Next(o)
	if v != 10 {
		t.Errorf("expected 10, got %d", v)
	}
	if next != tail {
		t.Error("expected Next() to return linked node")
	}
}

func TestGuardedNode_TryAcquire(t *testing.T) {
	n := queue.NewGuardedNode(0)

	o, ok := n.TryAcquire()
	if !ok {
		t.Fatal("expected TryAcquire() = true on free node")
	}
	if _, ok := n.TryAcquire(); ok {
		t.Error("expected TryAcquire() = false on held node")
	}
	if err := n.Release(o); err != nil {
		t.Fatalf("Release() error: %v", err)
	}
	o2, ok := n.TryAcquire()
	if !ok {
		t.Fatal("expected TryAcquire() = true after Release()")
	}
	if o2 == o {
		t.Error("expected a fresh owner token after re-acquire")
	}
	_ = n.Release(o2)
}

func TestGuardedNode_AcquireContext(t *testing.T) {
	n := queue.NewGuardedNode(0)
	o := n.Acquire()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := n.AcquireContext(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded on held node, got %v", err)
	}

	// The failed attempt must not have disturbed the current owner
	if _, err := n.Content(o); err != nil {
		t.Errorf("expected first owner to still hold the node, got %v", err)
	}
	if err := n.Release(o); err != nil {
		t.Fatalf("Release() error: %v", err)
	}

	o2, err := n.AcquireContext(context.Background())
	if err != nil {
		t.Fatalf("AcquireContext() error after release: %v", err)
	}
	_ = n.Release(o2)
}

func TestGuardedNode_DoubleRelease(t *testing.T) {
	n := queue.NewGuardedNode(0)
	o := n.Acquire()

	if err := n.Release(o); err != nil {
		t.Fatalf("first Release() error: %v", err)
	}
	if err := n.Release(o); !errors.Is(err, queue.ErrAccessViolation) {
		t.Errorf("expected ErrAccessViolation on second Release(), got %v", err)
	}

	// Lock is still usable
	if _, ok := n.TryAcquire(); !ok {
		t.Error("expected node to be free after refused Release()")
	}
}

func TestGuardedNode_WithReleasesOnPanic(t *testing.T) {
	n := queue.NewGuardedNode(0)

	func() {
		defer func() { _ = recover() }()
		_ = n.With(func(o queue.Owner) error {
			panic("boom")
		})
	}()

	if _, ok := n.TryAcquire(); !ok {
		t.Error("expected node to be released after panic in With()")
	}
}

func TestGuardedNode_WithReturnsError(t *testing.T) {
	n := queue.NewGuardedNode(0)
	sentinel := errors.New("stop")

	if err := n.With(func(queue.Owner) error { return sentinel }); !errors.Is(err, sentinel) {
		t.Errorf("expected With() to return fn error, got %v", err)
	}
	if _, ok := n.TryAcquire(); !ok {
		t.Error("expected node to be released after With() error")
	}
}

// TestGuardedNode_Race increments the content from many goroutines, each
// under its own acquisition.
// Run with: go test -race ./internal/queue
func TestGuardedNode_Race(t *testing.T) {
	const workers, rounds = 8, 500

	n := queue.NewGuardedNode(0)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				err := n.With(func(o queue.Owner) error {
					v, err := n.Content(o)
					if err != nil {
						return err
					}
					return n.SetContent(o, v+1)
				})
				if err != nil {
					t.Errorf("With() error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	o := n.Acquire()
	defer n.Release(o) //nolint:errcheck
	v, _ := n.Content(o)
	if v != workers*rounds {
		t.Errorf("expected %d, got %d", workers*rounds, v)
	}
}
