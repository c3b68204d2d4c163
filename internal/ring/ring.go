// Package ring provides a fixed-capacity, insertion-ordered buffer shared
// between one writer and one reader.
package ring

import "sync"

// Buffer holds the most recent items pushed into it, up to a fixed capacity.
// When full, a push evicts the oldest item. Push and Snapshot are safe to
// call from different goroutines; a snapshot never observes a torn push.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
	start int // index of the oldest item
	count int
	cap   int
}

// New returns an empty buffer that retains at most capacity items.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Buffer[T]{
		items: make([]T, capacity),
		cap:   capacity,
	}
}

// Push appends item, evicting the oldest entry when the buffer is full.
func (b *Buffer[T]) Push(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == b.cap {
		b.items[b.start] = item
		b.start = (b.start + 1) % b.cap
		return
	}
	b.items[(b.start+b.count)%b.cap] = item
	b.count++
}

// Snapshot returns a copy of the current contents, oldest first. The copy is
// independent of the buffer; later pushes do not invalidate it.
func (b *Buffer[T]) Snapshot() []T {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == 0 {
		return nil
	}
	out := make([]T, b.count)
	for i := 0; i < b.count; i++ {
		out[i] = b.items[(b.start+i)%b.cap]
	}
	return out
}

// Len reports the current number of items, never more than the capacity.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Cap reports the fixed capacity set at construction.
func (b *Buffer[T]) Cap() int {
	return b.cap
}
