// Package ringbuffer
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity single-producer/single-consumer FIFO ring buffer with
// overwrite-on-full semantics.
//
// A RingBuffer never rejects a write: pushing into a full buffer replaces
// the oldest unread item, and Push reports the overwrite so callers can
// count data loss. Pop on an empty buffer returns the zero value of the
// element type; use IsEmpty or Len when a stored zero value must be told
// apart from "no data". All operations are O(1) and non-blocking.
//
//	rb := ringbuffer.New[int](3)
//	rb.Push(1)               // false
//	rb.Push(2)               // false
//	rb.Push(3)               // false, buffer now full
//	rb.Push(4)               // true, 1 was overwritten
//	rb.Pop()                 // 2
//
// Popped slots are not zeroed; values remain in storage until a later
// push overwrites them. Callers holding sensitive data must clear it
// themselves.
package ringbuffer
