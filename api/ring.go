// Package api
// Author: momentics@gmail.com
//
// Contract for fixed-capacity FIFO buffers with overwrite-on-full semantics.

package api

// Ring is the contract for a fixed-capacity FIFO buffer that overwrites the
// oldest unread item once full.
type Ring[T any] interface {
	// Push stores an item; reports true if an unread item was overwritten.
	Push(item T) bool
	// Pop removes and returns the oldest unread item; zero value of T if empty.
	Pop() T
	// Len returns current number of unread items.
	Len() int
	// Cap returns fixed buffer capacity.
	Cap() int
	// IsEmpty reports whether the buffer holds no unread items.
	IsEmpty() bool
	// IsFull reports whether the next Push will overwrite an unread item.
	IsFull() bool
	// Reset logically empties the buffer without releasing storage.
	Reset()
}
