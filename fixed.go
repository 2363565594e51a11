// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"iter"
	"slices"
)

// DefaultCapacity is the capacity used by [NewDefault].
const DefaultCapacity = 1024

// Fixed is a fixed-capacity circular buffer. Pushing into a full
// buffer overwrites the oldest element, so the buffer always holds the
// newest Cap() elements pushed (a sliding window).
//
// The mode parameter M selects the slot math: [Pow2] masks (capacity
// must be a power of two), [Modulo] divides (any capacity). See [Mode].
//
// Internally the buffer keeps two monotonic cursors: write counts every
// push, read counts every removal. length = write - read, and logical
// index i lives in physical slot wrap(read + i). Slots outside the
// live range are always zero-valued: removal zeroes them, both to drop
// references for the garbage collector and so that no stale element is
// ever observable through GetAbsolute.
//
// The zero value of Fixed has no storage and is not usable; construct
// with [NewFixed], [NewFixedModulo], [NewDefault], [Wrap], [WrapPow2]
// or [FromSlice].
//
// Not safe for concurrent use; see the Thread Safety section in the
// package documentation.
type Fixed[T any, M Mode] struct {
	buf   []T
	read  uint64
	write uint64
}

// NewFixed creates a fixed-capacity buffer with masked indexing.
// Returns [ErrInvalidCapacity] unless capacity is a power of two >= 1.
func NewFixed[T any](capacity int) (*Fixed[T, Pow2], error) {
	if !isPow2(capacity) {
		return nil, ErrInvalidCapacity
	}
	return &Fixed[T, Pow2]{buf: make([]T, capacity)}, nil
}

// NewFixedModulo creates a fixed-capacity buffer that accepts any
// capacity >= 1, at the cost of a division per slot computation.
// Returns [ErrInvalidCapacity] if capacity < 1.
func NewFixedModulo[T any](capacity int) (*Fixed[T, Modulo], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Fixed[T, Modulo]{buf: make([]T, capacity)}, nil
}

// NewDefault creates a masked fixed-capacity buffer with
// [DefaultCapacity] slots.
func NewDefault[T any]() *Fixed[T, Pow2] {
	return &Fixed[T, Pow2]{buf: make([]T, DefaultCapacity)}
}

// Wrap creates a buffer over caller-provided storage, without copying
// or allocating. Capacity is cap(storage); the elements of
// storage[:len(storage)] become the initial contents, oldest first
// (wrap a zero-length slice of a backing array to start empty).
//
// Wrap is the no-heap-allocation path: backed by a stack array, the
// whole buffer lives on the caller's stack.
//
//	var win [64]Sample
//	b, err := ring.Wrap(win[:0])
//
// The buffer owns storage[:cap(storage)] afterwards: mutations are
// visible through the original slice and vice versa, and the region
// beyond the initial contents is zeroed. Returns [ErrInvalidCapacity]
// if cap(storage) is 0. The returned value must not be copied once in
// use.
func Wrap[T any](storage []T) (Fixed[T, Modulo], error) {
	if cap(storage) == 0 {
		return Fixed[T, Modulo]{}, ErrInvalidCapacity
	}
	return Fixed[T, Modulo]{
		buf:   wrapStorage(storage),
		write: uint64(len(storage)),
	}, nil
}

// WrapPow2 is [Wrap] with masked indexing.
// Returns [ErrInvalidCapacity] unless cap(storage) is a power of two.
func WrapPow2[T any](storage []T) (Fixed[T, Pow2], error) {
	if !isPow2(cap(storage)) {
		return Fixed[T, Pow2]{}, ErrInvalidCapacity
	}
	return Fixed[T, Pow2]{
		buf:   wrapStorage(storage),
		write: uint64(len(storage)),
	}, nil
}

// wrapStorage extends storage to its full capacity and zeroes the
// region past the live prefix, establishing the dead-slots-are-zero
// invariant for storage recycled by the caller.
func wrapStorage[T any](storage []T) []T {
	buf := storage[:cap(storage)]
	clear(buf[len(storage):])
	return buf
}

// FromSlice creates a full buffer holding a copy of items, oldest
// first, with capacity len(items).
// Returns [ErrInvalidCapacity] if items is empty.
func FromSlice[T any](items []T) (*Fixed[T, Modulo], error) {
	if len(items) == 0 {
		return nil, ErrInvalidCapacity
	}
	return &Fixed[T, Modulo]{
		buf:   slices.Clone(items),
		write: uint64(len(items)),
	}, nil
}

// slot maps a monotonic cursor position to a physical index.
func (b *Fixed[T, M]) slot(pos uint64) uint64 {
	var m M
	return m.wrap(uint64(len(b.buf)), pos)
}

// index resolves a signed logical index to a physical slot.
// Negative i counts from the front: -1 is the newest element.
func (b *Fixed[T, M]) index(i int) (uint64, bool) {
	n := int(b.write - b.read)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, false
	}
	return b.slot(b.read + uint64(i)), true
}

// Len returns the number of live elements.
func (b *Fixed[T, M]) Len() int { return int(b.write - b.read) }

// Cap returns the fixed capacity.
func (b *Fixed[T, M]) Cap() int { return len(b.buf) }

// IsEmpty reports whether the buffer holds no elements.
func (b *Fixed[T, M]) IsEmpty() bool { return b.write == b.read }

// IsFull reports whether the next Push will overwrite the oldest
// element.
func (b *Fixed[T, M]) IsFull() bool {
	return b.write-b.read == uint64(len(b.buf))
}

// Clear removes all elements. The backing storage is kept but zeroed,
// and both cursors restart from zero, so the buffer behaves exactly
// like a freshly constructed one of the same capacity.
func (b *Fixed[T, M]) Clear() {
	clear(b.buf)
	b.read, b.write = 0, 0
}

// Push appends v as the newest element. Never fails: when the buffer
// is full the oldest element is discarded first.
func (b *Fixed[T, M]) Push(v T) {
	if b.write-b.read == uint64(len(b.buf)) {
		b.read++
	}
	b.buf[b.slot(b.write)] = v
	b.write++
}

// Enqueue is Push that reports the displaced element: (oldest, true)
// when v overwrote the oldest element, (zero value, false) otherwise.
func (b *Fixed[T, M]) Enqueue(v T) (T, bool) {
	var old T
	evicted := false
	if b.write-b.read == uint64(len(b.buf)) {
		old = b.buf[b.slot(b.read)]
		b.read++
		evicted = true
	}
	b.buf[b.slot(b.write)] = v
	b.write++
	return old, evicted
}

// Extend pushes vals in order. Pushing more than Cap() values leaves
// the buffer holding the newest Cap() of them.
func (b *Fixed[T, M]) Extend(vals ...T) {
	for _, v := range vals {
		b.Push(v)
	}
}

// Dequeue removes and returns the oldest element.
// Returns (zero value, [ErrWouldBlock]) if the buffer is empty.
func (b *Fixed[T, M]) Dequeue() (T, error) {
	var zero T
	if b.write == b.read {
		return zero, ErrWouldBlock
	}
	i := b.slot(b.read)
	elem := b.buf[i]
	b.buf[i] = zero
	b.read++
	return elem, nil
}

// Skip removes the oldest element without returning it.
// Returns [ErrWouldBlock] if the buffer is empty.
func (b *Fixed[T, M]) Skip() error {
	if b.write == b.read {
		return ErrWouldBlock
	}
	var zero T
	b.buf[b.slot(b.read)] = zero
	b.read++
	return nil
}

// Peek returns the oldest element without removing it.
// Returns (zero value, [ErrWouldBlock]) if the buffer is empty.
func (b *Fixed[T, M]) Peek() (T, error) {
	if b.write == b.read {
		var zero T
		return zero, ErrWouldBlock
	}
	return b.buf[b.slot(b.read)], nil
}

// Get returns the element at logical index i: 0 is the oldest,
// Len()-1 the newest, negative counts from the front (-1 is the
// newest). ok is false when i is out of range.
func (b *Fixed[T, M]) Get(i int) (T, bool) {
	j, ok := b.index(i)
	if !ok {
		var zero T
		return zero, false
	}
	return b.buf[j], true
}

// GetPtr returns a pointer to the element at logical index i, or nil
// if i is out of range. The pointer stays valid until the next
// mutation of the buffer.
func (b *Fixed[T, M]) GetPtr(i int) *T {
	j, ok := b.index(i)
	if !ok {
		return nil
	}
	return &b.buf[j]
}

// GetAbsolute returns the content of physical slot i, ignoring logical
// order. Slots not holding a live element read as zero values. ok is
// false when i is outside [0, Cap()).
func (b *Fixed[T, M]) GetAbsolute(i int) (T, bool) {
	if i < 0 || i >= len(b.buf) {
		var zero T
		return zero, false
	}
	return b.buf[i], true
}

// GetAbsolutePtr is GetAbsolute returning a pointer, or nil when i is
// out of range.
func (b *Fixed[T, M]) GetAbsolutePtr(i int) *T {
	if i < 0 || i >= len(b.buf) {
		return nil
	}
	return &b.buf[i]
}

// Front returns the newest element (most recently pushed).
func (b *Fixed[T, M]) Front() (T, bool) { return b.Get(-1) }

// FrontPtr returns a pointer to the newest element, or nil if empty.
func (b *Fixed[T, M]) FrontPtr() *T { return b.GetPtr(-1) }

// Back returns the oldest element, the one Dequeue returns next.
func (b *Fixed[T, M]) Back() (T, bool) { return b.Get(0) }

// BackPtr returns a pointer to the oldest element, or nil if empty.
func (b *Fixed[T, M]) BackPtr() *T { return b.GetPtr(0) }

// At returns the element at logical index i, panicking with
// [ErrOutOfBounds] when i is out of range. The quiet spelling is Get.
func (b *Fixed[T, M]) At(i int) T {
	v, ok := b.Get(i)
	if !ok {
		panic(ErrOutOfBounds)
	}
	return v
}

// SetAt replaces the element at logical index i, panicking with
// [ErrOutOfBounds] when i is out of range.
func (b *Fixed[T, M]) SetAt(i int, v T) {
	p := b.GetPtr(i)
	if p == nil {
		panic(ErrOutOfBounds)
	}
	*p = v
}

// runs returns the live elements as their at most two contiguous
// stretches of backing storage, oldest run first.
func (b *Fixed[T, M]) runs() ([]T, []T) {
	n := b.write - b.read
	start := b.slot(b.read)
	first := min(n, uint64(len(b.buf))-start)
	return b.buf[start : start+first], b.buf[:n-first]
}

// Values returns a sequence of the live elements, oldest to newest.
// Each range over it is a fresh traversal of the current contents.
// The buffer must not be mutated during a traversal (use Refs to
// update elements in place).
func (b *Fixed[T, M]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		head, tail := b.runs()
		for _, v := range head {
			if !yield(v) {
				return
			}
		}
		for _, v := range tail {
			if !yield(v) {
				return
			}
		}
	}
}

// All is Values with logical indices.
func (b *Fixed[T, M]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range b.Values() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Refs yields a pointer to each live element, oldest to newest, each
// slot exactly once per traversal. Yielded pointers stay valid until
// the next mutation of the buffer.
func (b *Fixed[T, M]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		head, tail := b.runs()
		for i := range head {
			if !yield(&head[i]) {
				return
			}
		}
		for i := range tail {
			if !yield(&tail[i]) {
				return
			}
		}
	}
}

// ToSlice returns the live elements, oldest to newest, in a fresh
// slice.
func (b *Fixed[T, M]) ToSlice() []T {
	head, tail := b.runs()
	out := make([]T, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

// Fill resets the buffer to full, every slot holding v. Equivalent to
// Clear followed by Cap() pushes of v.
func (b *Fixed[T, M]) Fill(v T) {
	for i := range b.buf {
		b.buf[i] = v
	}
	b.read, b.write = 0, uint64(len(b.buf))
}

// FillWith resets the buffer to full, calling fn once per slot in
// oldest-to-newest order.
func (b *Fixed[T, M]) FillWith(fn func() T) {
	for i := range b.buf {
		b.buf[i] = fn()
	}
	b.read, b.write = 0, uint64(len(b.buf))
}

// SetLen forces the logical length to n, keeping the oldest element in
// place. Growing admits zero-value elements (slots past the live range
// are always zero); shrinking discards the newest elements, zeroing
// their slots like Dequeue does.
//
// Panics with [ErrOutOfBounds] when n is negative or exceeds Cap().
func (b *Fixed[T, M]) SetLen(n int) {
	if n < 0 || n > len(b.buf) {
		panic(ErrOutOfBounds)
	}
	var zero T
	for pos := b.read + uint64(n); pos < b.write; pos++ {
		b.buf[b.slot(pos)] = zero
	}
	b.write = b.read + uint64(n)
}

// Clone returns a deep copy sharing nothing with b: same mode, same
// capacity, same logical contents.
func (b *Fixed[T, M]) Clone() *Fixed[T, M] {
	return &Fixed[T, M]{
		buf:   slices.Clone(b.buf),
		read:  b.read,
		write: b.write,
	}
}
