package message

import (
	"sync"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(0)
	q.Enqueue("first")
	q.Enqueue("second")
	q.Enqueue("third")

	q.Dismiss()
	q.Dismiss()

	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	head, ok := q.Peek()
	if !ok || head != "third" {
		t.Errorf("Peek() = %q, %v; want \"third\", true", head, ok)
	}
}

func TestDismissEmptyIsNoop(t *testing.T) {
	q := NewQueue(0)
	q.Dismiss()

	if q.HasPending() {
		t.Error("Empty queue should have nothing pending")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek() on empty queue should report false")
	}
}

func TestAttentionCountdown(t *testing.T) {
	q := NewQueue(3)
	q.Enqueue("Level up!")

	if q.Flashing() {
		t.Error("Should not flash before blocked input")
	}

	q.NotifyBlocked()
	if q.AttentionTicks() != 3 {
		t.Errorf("AttentionTicks() = %d, want 3", q.AttentionTicks())
	}

	q.Tick()
	q.Tick()
	q.NotifyBlocked()
	if q.AttentionTicks() != 3 {
		t.Errorf("NotifyBlocked should refill, got %d", q.AttentionTicks())
	}

	for i := 0; i < 5; i++ {
		q.Tick()
	}
	if q.AttentionTicks() != 0 || q.Flashing() {
		t.Errorf("Countdown should stop at 0, got %d", q.AttentionTicks())
	}
}

func TestDismissClearsAttention(t *testing.T) {
	q := NewQueue(10)
	q.Enqueue("a")
	q.NotifyBlocked()
	q.Dismiss()

	if q.Flashing() {
		t.Error("Dismiss should clear the flash")
	}
}

func TestDefaultAttentionTicks(t *testing.T) {
	q := NewQueue(-1)
	q.NotifyBlocked()
	if q.AttentionTicks() != DefaultAttentionTicks {
		t.Errorf("AttentionTicks() = %d, want %d", q.AttentionTicks(), DefaultAttentionTicks)
	}
}

func TestConcurrentReaders(t *testing.T) {
	q := NewQueue(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Peek()
				q.HasPending()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		q.Enqueue("msg")
	}
	wg.Wait()

	if q.Len() != 100 {
		t.Errorf("Len() = %d, want 100", q.Len())
	}
}
