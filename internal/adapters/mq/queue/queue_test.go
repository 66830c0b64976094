package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/okian/campusgen/internal/domain/session"
)

func testTask(i int) Task {
	return Task{
		Index: i,
		Session: session.Session{
			ID:         fmt.Sprintf("EZ%06d", i+1),
			StudentID:  "S001",
			TeacherID:  "T001",
			CourseCode: "CS101",
		},
	}
}

func TestInMemoryQueue_BasicOperations(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(2))
	ctx := context.Background()

	if l := q.Len(ctx); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}

	if !q.Enqueue(ctx, testTask(0)) {
		t.Error("expected enqueue to succeed")
	}

	if l := q.Len(ctx); l != 1 {
		t.Errorf("expected length 1, got %d", l)
	}

	taskChan := q.Dequeue(ctx)
	task := <-taskChan
	if task.Session.ID != "EZ000001" {
		t.Errorf("expected EZ000001, got %v", task.Session.ID)
	}

	if l := q.Len(ctx); l != 0 {
		t.Errorf("expected length 0, got %d", l)
	}
}

func TestInMemoryQueue_CapacityLimit(t *testing.T) {
	q := NewInMemoryQueue(WithCapacity(2), WithBufferSize(2))
	ctx := context.Background()

	if !q.Enqueue(ctx, testTask(0)) {
		t.Error("expected first enqueue to succeed")
	}
	if !q.Enqueue(ctx, testTask(1)) {
		t.Error("expected second enqueue to succeed")
	}

	if q.Enqueue(ctx, testTask(2)) {
		t.Error("expected enqueue to fail at capacity")
	}
}

func TestInMemoryQueue_Close(t *testing.T) {
	q := NewInMemoryQueue()
	ctx := context.Background()

	if !q.Enqueue(ctx, testTask(0)) {
		t.Error("expected enqueue to succeed")
	}

	if err := q.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
	if !q.IsClosed() {
		t.Error("expected queue to report closed")
	}

	if q.Enqueue(ctx, testTask(1)) {
		t.Error("expected enqueue to fail after close")
	}

	// Close is idempotent
	if err := q.Close(); err != nil {
		t.Errorf("unexpected second close error: %v", err)
	}

	// Remaining tasks drain, then the channel closes
	taskChan := q.Dequeue(ctx)
	task, ok := <-taskChan
	if !ok || task.Index != 0 {
		t.Errorf("expected drained task 0, got %v (ok=%v)", task.Index, ok)
	}

	select {
	case _, ok := <-taskChan:
		if ok {
			t.Error("expected dequeue channel to be closed")
		}
	case <-time.After(time.Second):
		t.Error("timed out waiting for dequeue channel to close")
	}
}
