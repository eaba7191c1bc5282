// Package message provides the cross-scene notification queue shown as an overlay.
package message

import "sync"

// DefaultAttentionTicks is how long the overlay flashes after blocked input.
const DefaultAttentionTicks = 30

// Queue is a FIFO of pending messages. Only the head is ever displayed.
//
// The game loop is the only writer; the lock lets renderers or background
// jobs read the queue safely.
type Queue struct {
	mu             sync.RWMutex
	msgs           []string
	attention      int
	attentionTicks int
}

// NewQueue creates an empty queue whose attention flash lasts attentionTicks updates.
func NewQueue(attentionTicks int) *Queue {
	if attentionTicks <= 0 {
		attentionTicks = DefaultAttentionTicks
	}
	return &Queue{attentionTicks: attentionTicks}
}

// Enqueue appends a message to the tail.
func (q *Queue) Enqueue(text string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.msgs = append(q.msgs, text)
}

// Peek returns the head message, if any.
func (q *Queue) Peek() (string, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if len(q.msgs) == 0 {
		return "", false
	}
	return q.msgs[0], true
}

// HasPending reports whether any message is waiting.
func (q *Queue) HasPending() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.msgs) > 0
}

// Len returns the number of pending messages.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.msgs)
}

// Dismiss removes the head message. It is a no-op on an empty queue.
// Dismissing also clears any attention flash.
func (q *Queue) Dismiss() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.msgs) == 0 {
		return
	}
	q.msgs[0] = ""
	q.msgs = q.msgs[1:]
	q.attention = 0
}

// NotifyBlocked refills the attention countdown. Called when the player tries
// to act while a message is displayed.
func (q *Queue) NotifyBlocked() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.attention = q.attentionTicks
}

// Tick advances the attention countdown by one update.
func (q *Queue) Tick() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.attention > 0 {
		q.attention--
	}
}

// AttentionTicks returns the remaining attention countdown.
func (q *Queue) AttentionTicks() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.attention
}

// Flashing reports whether the overlay should currently be highlighted.
func (q *Queue) Flashing() bool {
	return q.AttentionTicks() > 0
}
