// File: ringbuffer/ringbuffer.go
// Package ringbuffer implements a fixed-capacity overwriting FIFO buffer.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer for a single producer and a
// single consumer. Once full, a push replaces the oldest unread item and
// reports the overwrite.
// Implements api.Ring for cross-package consistency.

package ringbuffer

import "github.com/momentics/ringbuf/api"

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a fixed-capacity FIFO buffer that overwrites the oldest
// unread item when full. It carries no internal locking; a buffer has one
// owner and must not be copied or shared across goroutines without
// external synchronization.
type RingBuffer[T any] struct {
	// data holds capacity+1 slots. data[capacity] stays zero-valued and is
	// what Pop returns on an empty buffer.
	data []T
	// remaining counts free slots before the buffer is full:
	// remaining == Cap() means empty, remaining == 0 means full.
	remaining int
	// position counts writes since the last Reset. It never wraps; only
	// the derived index position % Cap() does.
	position uint64
}

// New allocates a ring buffer holding up to capacity items.
// Panics if capacity < 1.
func New[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		panic("ringbuffer: capacity must be >= 1")
	}
	return &RingBuffer[T]{
		data:      make([]T, capacity+1),
		remaining: capacity,
	}
}

// Push stores item, reporting true iff the buffer was full and the oldest
// unread item was overwritten. Push never fails.
func (r *RingBuffer[T]) Push(item T) bool {
	r.data[r.position%uint64(r.Cap())] = item
	r.position++
	if r.remaining > 0 {
		r.remaining--
		return false
	}
	return true
}

// Pop removes and returns the oldest unread item. On an empty buffer it
// returns the zero value of T and changes nothing; callers that must tell
// "no data" from a stored zero value check IsEmpty or Len first.
// The popped slot is not cleared; the value stays resident in storage
// until a later Push overwrites it.
func (r *RingBuffer[T]) Pop() T {
	c := r.Cap()
	if r.remaining == c {
		return r.data[c]
	}
	// remaining < c and position >= c-remaining, so this cannot underflow.
	idx := (r.position + uint64(r.remaining) - uint64(c)) % uint64(c)
	r.remaining++
	return r.data[idx]
}

// Len returns the number of unread items, in [0, Cap()].
func (r *RingBuffer[T]) Len() int {
	return r.Cap() - r.remaining
}

// Cap returns fixed buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data) - 1
}

// IsEmpty reports whether the buffer holds no unread items.
func (r *RingBuffer[T]) IsEmpty() bool {
	return r.remaining == r.Cap()
}

// IsFull reports whether the next Push will overwrite an unread item.
func (r *RingBuffer[T]) IsFull() bool {
	return r.remaining == 0
}

// Reset logically empties the buffer. Storage is kept for reuse and slot
// contents are left in place.
func (r *RingBuffer[T]) Reset() {
	r.remaining = r.Cap()
	r.position = 0
}
