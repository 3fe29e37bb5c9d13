package history

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	wp := NewWorkerPool(3, 10)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)

	var done int64
	const n = 20
	for i := 0; i < n; i++ {
		if err := wp.Submit(func(ctx context.Context) error {
			atomic.AddInt64(&done, 1)
			return nil
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	wp.Close()

	if got := atomic.LoadInt64(&done); got != n {
		t.Errorf("expected %d jobs run, got %d", n, got)
	}
}

func TestWorkerPoolRejectsSubmitAfterClose(t *testing.T) {
	wp := NewWorkerPool(1, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wp.Start(ctx)
	wp.Close()

	err := wp.Submit(func(ctx context.Context) error { return nil })
	if err != ErrPoolClosed {
		t.Errorf("expected ErrPoolClosed, got %v", err)
	}
}

func TestBatchWriterFlushesOnCapacity(t *testing.T) {
	bw := NewBatchWriter(nil, 2, 0)
	var ran int64
	for i := 0; i < 4; i++ {
		if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			atomic.AddInt64(&ran, 1)
			return nil
		}); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if err := bw.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if got := atomic.LoadInt64(&ran); got != 4 {
		t.Errorf("expected all 4 writes to run, got %d", got)
	}
}
