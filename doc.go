// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ring provides circular buffer implementations with
// overwrite-on-full semantics.
//
// A ring buffer holds the newest Cap() elements pushed into it: Push
// never fails and never blocks, it silently discards the oldest
// element once the buffer is full. That makes it the natural container
// for sliding windows — recent log lines, rolling metrics, last-N
// samples — anywhere dropping the oldest data is the point, not a
// problem.
//
// Two storage variants share one contract:
//
//   - Fixed: capacity chosen at construction, never reallocates
//   - Growable: storage doubles on demand, optional overwrite limit
//
// Fixed additionally selects its slot math at compile time through a
// mode type parameter:
//
//   - Pow2: power-of-two capacity, slot = position & (cap-1)
//   - Modulo: any capacity, slot = position % cap
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	b, err := ring.NewFixed[Sample](1024)      // masked, capacity 1024
//	b, err := ring.NewFixedModulo[Sample](1000) // exact odd capacity
//	g := ring.NewGrowable[Sample](64)           // grows, never drops
//
// Builder API auto-selects the variant and mode:
//
//	b, err := ring.Build[Sample](ring.New(1024))                    // → *Fixed[Sample, Pow2]
//	b, err := ring.Build[Sample](ring.New(1000))                    // → *Fixed[Sample, Modulo]
//	b, err := ring.Build[Sample](ring.New(64).Growable())           // → *Growable[Sample]
//	b, err := ring.Build[Sample](ring.New(64).Growable().Limit(4096))
//
// # Basic Usage
//
// All buffers share the same surface for writing, reading and random
// access:
//
//	b, _ := ring.NewFixed[int](4)
//
//	// Write end: never fails, overwrites the oldest when full
//	b.Push(1)
//	old, evicted := b.Enqueue(2) // reports what was displaced
//
//	// Read end: empty buffer signals ErrWouldBlock
//	v, err := b.Dequeue()
//	if ring.IsWouldBlock(err) {
//	    // buffer is empty — not a failure
//	}
//
//	// Random access: quiet (comma-ok) and loud (panicking) spellings
//	v, ok := b.Get(0)   // oldest
//	v, ok = b.Get(-1)   // newest
//	v = b.At(0)         // panics with ErrOutOfBounds when out of range
//
// # Front, Back and Indexing
//
// Terminology is fixed throughout the package: the back is the oldest
// element, the one Dequeue returns next; the front is the newest, the
// one Push just wrote. Logical indices run from the back: Get(0) is
// the oldest, Get(Len()-1) the newest. Negative indices count from the
// front, so Get(-1) is also the newest. Peek, Back and Get(0) all read
// the same element.
//
// GetAbsolute bypasses logical order and reads physical slots of the
// backing storage directly, for introspection. Slots holding no live
// element always read as zero values: every removal zeroes the slot it
// vacates, which also unpins referenced memory for the garbage
// collector.
//
// # Capacity Modes
//
// NewFixed requires a power-of-two capacity and rejects anything else
// with ErrInvalidCapacity — it does not round up, because for an
// overwriting buffer the capacity decides which elements survive.
// Round explicitly when an approximate size is fine:
//
//	b, err := ring.NewFixed[int](ring.NextPow2(1000)) // capacity 1024
//
// or keep the exact size and pay a division per slot computation:
//
//	b, err := ring.NewFixedModulo[int](1000)
//
// The Builder picks for you: power-of-two capacities get Pow2, others
// get Modulo.
//
// # Wrapped Storage
//
// Wrap builds a buffer over memory the caller already owns — no copy,
// no allocation. With a stack array as backing storage the entire
// buffer lives on the caller's stack:
//
//	var win [64]Sample            // compile-time size, stack resident
//	b, err := ring.Wrap(win[:0])  // empty buffer, capacity 64
//
// The slice length selects the initial contents (oldest first), its
// capacity the buffer capacity:
//
//	data := []int{1, 2, 3}
//	b, err := ring.Wrap(data)     // full buffer: [1 2 3]
//
// FromSlice is Wrap with a copy: the buffer gets its own storage and
// the source slice stays untouched.
//
// # Iteration
//
// Values, All and Refs return iter.Seq sequences over the live
// elements, oldest to newest. Each range is a fresh traversal of the
// current contents:
//
//	for v := range b.Values() { ... }
//	for i, v := range b.All() { ... }
//
//	for p := range b.Refs() {  // in-place updates
//	    p.Seen = true
//	}
//
// The buffer must not be pushed to, dequeued from, cleared or grown
// during a traversal; Refs pointers are valid until the next mutation.
//
// # Error Handling
//
// The read end returns [ErrWouldBlock] when the buffer is empty. This
// error is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency and classifies as a non-failure:
//
//	for {
//	    v, err := b.Dequeue()
//	    if ring.IsWouldBlock(err) {
//	        break // drained, not an error
//	    }
//	    process(v)
//	}
//
// Constructors return [ErrInvalidCapacity] for a zero or negative
// capacity, and for a non-power-of-two capacity under the Pow2 mode.
// The only panics in the package are the loud accessors At, SetAt and
// SetLen (panic value [ErrOutOfBounds]) and BuildGrowable misuse.
//
// # Thread Safety
//
// Buffers are single-owner containers: no operation is safe to call
// concurrently with any mutation, and the package contains no atomics
// or locks — that is a feature, keeping the hot path a handful of
// plain loads and stores. Wrap synchronization around a buffer
// externally, or use [code.hybscloud.com/lfq] when what you need is a
// concurrent queue rather than a sliding window.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors.
// Unlike its sibling lfq it deliberately carries no atomics or
// spin-wait dependencies: a single-owner container has nothing to
// synchronize.
package ring
