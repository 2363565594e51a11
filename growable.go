// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"iter"
	"slices"
)

// minAlloc is the smallest backing allocation a Growable grows to.
const minAlloc = 4

// Growable is a circular buffer whose backing storage doubles as
// needed, so Push never discards anything. A limit can be configured
// at construction (see [Builder.Limit]); once Len() reaches the limit,
// Push overwrites the oldest element exactly like [Fixed].
//
// Unlike Fixed it has no mode parameter: capacities are arbitrary and
// transient, so slot math uses plain wrapping (a compare and subtract;
// positions never exceed twice the allocation).
//
// The zero value is an empty, unlimited buffer ready for use.
//
// Not safe for concurrent use; see the Thread Safety section in the
// package documentation.
type Growable[T any] struct {
	buf    []T
	head   int // physical slot of the oldest element
	length int
	limit  int // 0 = unlimited
}

// NewGrowable creates a growable buffer with room for capacity
// elements reserved up front. A non-positive capacity reserves
// nothing; the first Push allocates.
func NewGrowable[T any](capacity int) *Growable[T] {
	g := &Growable[T]{}
	if capacity > 0 {
		g.buf = make([]T, capacity)
	}
	return g
}

// newGrowableLimited is the [Builder] constructor for bounded growable
// buffers. The backing allocation never exceeds the limit.
func newGrowableLimited[T any](capacity, limit int) *Growable[T] {
	g := NewGrowable[T](min(capacity, limit))
	g.limit = limit
	return g
}

// wrap reduces a slot position into [0, len(g.buf)). Positions are at
// most one allocation length past the end, so a conditional subtraction
// replaces the division.
func (g *Growable[T]) wrap(i int) int {
	if i >= len(g.buf) {
		i -= len(g.buf)
	}
	return i
}

// index resolves a signed logical index to a physical slot.
// Negative i counts from the front: -1 is the newest element.
func (g *Growable[T]) index(i int) (int, bool) {
	if i < 0 {
		i += g.length
	}
	if i < 0 || i >= g.length {
		return 0, false
	}
	return g.wrap(g.head + i), true
}

// grow doubles the backing storage (respecting the limit, if any) and
// unwraps the live elements to the start of the new allocation.
func (g *Growable[T]) grow() {
	n := max(len(g.buf)*2, minAlloc)
	if g.limit > 0 {
		n = min(n, g.limit)
	}
	buf := make([]T, n)
	k := copy(buf, g.buf[g.head:])
	copy(buf[k:], g.buf[:g.head])
	g.buf = buf
	g.head = 0
}

// Len returns the number of live elements.
func (g *Growable[T]) Len() int { return g.length }

// Cap returns the configured limit, or the current backing allocation
// when no limit is set. In the latter case it is not a hard bound:
// the allocation keeps growing with Push.
func (g *Growable[T]) Cap() int {
	if g.limit > 0 {
		return g.limit
	}
	return len(g.buf)
}

// IsEmpty reports whether the buffer holds no elements.
func (g *Growable[T]) IsEmpty() bool { return g.length == 0 }

// IsFull reports whether Len() has reached the configured limit.
// Always false for an unlimited buffer.
func (g *Growable[T]) IsFull() bool {
	return g.limit > 0 && g.length == g.limit
}

// Clear removes all elements. The backing allocation (and limit, if
// any) is kept; all slots are zeroed.
func (g *Growable[T]) Clear() {
	clear(g.buf)
	g.head, g.length = 0, 0
}

// Push appends v as the newest element, growing the backing storage as
// needed. At a configured limit it overwrites the oldest element
// instead.
func (g *Growable[T]) Push(v T) {
	if g.limit > 0 && g.length == g.limit {
		// At the limit the allocation equals the limit, so the slot
		// past the newest element is the oldest's.
		g.buf[g.head] = v
		g.head = g.wrap(g.head + 1)
		return
	}
	if g.length == len(g.buf) {
		g.grow()
	}
	g.buf[g.wrap(g.head+g.length)] = v
	g.length++
}

// Enqueue is Push that reports the displaced element: (oldest, true)
// when v overwrote the oldest element at the limit, (zero value,
// false) otherwise.
func (g *Growable[T]) Enqueue(v T) (T, bool) {
	if g.limit > 0 && g.length == g.limit {
		old := g.buf[g.head]
		g.buf[g.head] = v
		g.head = g.wrap(g.head + 1)
		return old, true
	}
	g.Push(v)
	var zero T
	return zero, false
}

// Extend pushes vals in order, as repeated Push calls.
func (g *Growable[T]) Extend(vals ...T) {
	for _, v := range vals {
		g.Push(v)
	}
}

// Dequeue removes and returns the oldest element.
// Returns (zero value, [ErrWouldBlock]) if the buffer is empty.
func (g *Growable[T]) Dequeue() (T, error) {
	var zero T
	if g.length == 0 {
		return zero, ErrWouldBlock
	}
	elem := g.buf[g.head]
	g.buf[g.head] = zero
	g.head = g.wrap(g.head + 1)
	g.length--
	return elem, nil
}

// Skip removes the oldest element without returning it.
// Returns [ErrWouldBlock] if the buffer is empty.
func (g *Growable[T]) Skip() error {
	if g.length == 0 {
		return ErrWouldBlock
	}
	var zero T
	g.buf[g.head] = zero
	g.head = g.wrap(g.head + 1)
	g.length--
	return nil
}

// Peek returns the oldest element without removing it.
// Returns (zero value, [ErrWouldBlock]) if the buffer is empty.
func (g *Growable[T]) Peek() (T, error) {
	if g.length == 0 {
		var zero T
		return zero, ErrWouldBlock
	}
	return g.buf[g.head], nil
}

// Get returns the element at logical index i: 0 is the oldest,
// Len()-1 the newest, negative counts from the front (-1 is the
// newest). ok is false when i is out of range.
func (g *Growable[T]) Get(i int) (T, bool) {
	j, ok := g.index(i)
	if !ok {
		var zero T
		return zero, false
	}
	return g.buf[j], true
}

// GetPtr returns a pointer to the element at logical index i, or nil
// if i is out of range. The pointer stays valid until the next
// mutation of the buffer (growth moves elements).
func (g *Growable[T]) GetPtr(i int) *T {
	j, ok := g.index(i)
	if !ok {
		return nil
	}
	return &g.buf[j]
}

// GetAbsolute returns the content of physical slot i of the current
// allocation, ignoring logical order. Slots not holding a live element
// read as zero values. ok is false when i is outside
// [0, len(allocation)). Growth relocates elements, so absolute
// positions are only stable between allocations.
func (g *Growable[T]) GetAbsolute(i int) (T, bool) {
	if i < 0 || i >= len(g.buf) {
		var zero T
		return zero, false
	}
	return g.buf[i], true
}

// GetAbsolutePtr is GetAbsolute returning a pointer, or nil when i is
// out of range.
func (g *Growable[T]) GetAbsolutePtr(i int) *T {
	if i < 0 || i >= len(g.buf) {
		return nil
	}
	return &g.buf[i]
}

// Front returns the newest element (most recently pushed).
func (g *Growable[T]) Front() (T, bool) { return g.Get(-1) }

// FrontPtr returns a pointer to the newest element, or nil if empty.
func (g *Growable[T]) FrontPtr() *T { return g.GetPtr(-1) }

// Back returns the oldest element, the one Dequeue returns next.
func (g *Growable[T]) Back() (T, bool) { return g.Get(0) }

// BackPtr returns a pointer to the oldest element, or nil if empty.
func (g *Growable[T]) BackPtr() *T { return g.GetPtr(0) }

// At returns the element at logical index i, panicking with
// [ErrOutOfBounds] when i is out of range. The quiet spelling is Get.
func (g *Growable[T]) At(i int) T {
	v, ok := g.Get(i)
	if !ok {
		panic(ErrOutOfBounds)
	}
	return v
}

// SetAt replaces the element at logical index i, panicking with
// [ErrOutOfBounds] when i is out of range.
func (g *Growable[T]) SetAt(i int, v T) {
	p := g.GetPtr(i)
	if p == nil {
		panic(ErrOutOfBounds)
	}
	*p = v
}

// runs returns the live elements as their at most two contiguous
// stretches of backing storage, oldest run first.
func (g *Growable[T]) runs() ([]T, []T) {
	first := min(g.length, len(g.buf)-g.head)
	return g.buf[g.head : g.head+first], g.buf[:g.length-first]
}

// Values returns a sequence of the live elements, oldest to newest.
// Each range over it is a fresh traversal of the current contents.
// The buffer must not be mutated during a traversal (use Refs to
// update elements in place).
func (g *Growable[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		head, tail := g.runs()
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
func (g *Growable[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range g.Values() {
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
func (g *Growable[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		head, tail := g.runs()
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
func (g *Growable[T]) ToSlice() []T {
	head, tail := g.runs()
	out := make([]T, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

// Clone returns a deep copy sharing nothing with g: same allocation
// size, same limit, same logical contents.
func (g *Growable[T]) Clone() *Growable[T] {
	return &Growable[T]{
		buf:    slices.Clone(g.buf),
		head:   g.head,
		length: g.length,
		limit:  g.limit,
	}
}
