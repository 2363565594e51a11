// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "iter"

// Buffer is the combined interface implemented by every buffer variant:
// container bookkeeping, the FIFO write and read ends, and random
// access. [Fixed] (both modes) and [Growable] satisfy it.
//
// Code that only produces or only consumes should accept the narrower
// capability instead:
//
//	func record(w ring.Producer[Sample], s Sample) { w.Push(s) }
//
//	func flush(r ring.Consumer[Sample]) {
//	    for {
//	        s, err := r.Dequeue()
//	        if err != nil {
//	            return
//	        }
//	        emit(s)
//	    }
//	}
type Buffer[T any] interface {
	Container
	Producer[T]
	Consumer[T]
	Indexed[T]
}

// Container is the bookkeeping surface shared by all variants.
type Container interface {
	// Len returns the number of live elements.
	Len() int

	// Cap returns the capacity: the fixed slot count, the configured
	// limit of a bounded growable buffer, or the current allocation of
	// an unbounded one.
	Cap() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// IsFull reports whether Len() == Cap(). Always false for a
	// growable buffer without a limit.
	IsFull() bool

	// Clear removes all elements and zeroes the backing slots, keeping
	// the allocation. Cursors restart from zero, as on a fresh buffer.
	Clear()
}

// Producer is the write end. Writes never fail: a full buffer
// overwrites its oldest element (for unlimited growable buffers the
// backing storage grows instead).
type Producer[T any] interface {
	// Push appends v as the newest element, discarding the oldest
	// element first when the buffer is full.
	Push(v T)

	// Enqueue is Push that reports the displaced element: it returns
	// (oldest, true) when v overwrote the oldest element, and
	// (zero value, false) when there was room.
	Enqueue(v T) (T, bool)

	// Extend pushes vals in order, as repeated Push calls.
	Extend(vals ...T)
}

// Consumer is the read end. An empty buffer yields [ErrWouldBlock],
// which is a non-failure signal (see [IsNonFailure]), not an error to
// propagate.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element.
	// Returns (zero value, ErrWouldBlock) if the buffer is empty.
	Dequeue() (T, error)

	// Skip removes the oldest element without returning it.
	// Returns ErrWouldBlock if the buffer is empty.
	Skip() error

	// Peek returns the oldest element without removing it.
	// Returns (zero value, ErrWouldBlock) if the buffer is empty.
	Peek() (T, error)
}

// Indexed is random access over the live elements in logical order.
//
// Logical index 0 is the back (oldest element, next dequeued); index
// Len()-1 is the front (newest). Negative indices count from the
// front: -1 is the newest, -Len() the oldest.
//
// The quiet accessors report absence with a false ok or a nil pointer.
// At and SetAt are the loud spelling: they panic with [ErrOutOfBounds]
// instead, for call sites where an out-of-range index is a bug.
type Indexed[T any] interface {
	// Get returns the element at logical index i.
	Get(i int) (T, bool)

	// GetPtr returns a pointer to the element at logical index i, or
	// nil if i is out of range. The pointer stays valid until the next
	// mutation of the buffer.
	GetPtr(i int) *T

	// GetAbsolute returns the content of physical slot i of the
	// backing storage, ignoring logical order. Slots not currently
	// holding an element read as zero values. ok is false when i is
	// outside [0, len(backing)). Intended for introspection.
	GetAbsolute(i int) (T, bool)

	// GetAbsolutePtr is GetAbsolute returning a pointer, or nil when i
	// is out of range.
	GetAbsolutePtr(i int) *T

	// Front returns the newest element (most recently pushed).
	Front() (T, bool)

	// FrontPtr returns a pointer to the newest element, or nil if empty.
	FrontPtr() *T

	// Back returns the oldest element, the one Dequeue returns next.
	// It is the indexed-access spelling of Peek.
	Back() (T, bool)

	// BackPtr returns a pointer to the oldest element, or nil if empty.
	BackPtr() *T

	// At returns the element at logical index i (negative counts from
	// the front). Panics with ErrOutOfBounds when i is out of range.
	At(i int) T

	// SetAt replaces the element at logical index i.
	// Panics with ErrOutOfBounds when i is out of range.
	SetAt(i int, v T)

	// Values returns a sequence of the live elements, oldest to
	// newest. Each range over it is a fresh traversal of the current
	// contents. The buffer must not be mutated during a traversal.
	Values() iter.Seq[T]

	// All is Values with logical indices.
	All() iter.Seq2[int, T]

	// Refs yields a pointer to each live element, oldest to newest,
	// each slot exactly once per traversal. Yielded pointers stay
	// valid until the next mutation of the buffer; element updates
	// through them are visible immediately.
	Refs() iter.Seq[*T]

	// ToSlice returns the live elements, oldest to newest, in a fresh
	// slice.
	ToSlice() []T
}
