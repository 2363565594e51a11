// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

// Mode selects how a [Fixed] buffer maps a monotonic cursor position to
// a physical slot. It is a compile-time type parameter: each
// instantiation dispatches its wrap statically, with no indirect call
// on the push/get path.
//
// Mode is sealed. The two implementations are [Pow2] and [Modulo].
type Mode interface {
	// wrap returns pos reduced into [0, capacity).
	// capacity is len of the backing slice and is always >= 1
	// for a constructed buffer.
	wrap(capacity, pos uint64) uint64
}

// Pow2 wraps cursor positions with a bitmask. It requires the capacity
// to be a power of two and turns every slot computation into a single
// AND instruction.
//
// Constructors reject non-power-of-two capacities under this mode with
// [ErrInvalidCapacity] rather than rounding up: for an overwriting
// buffer the capacity decides which elements survive, so silently
// growing a requested 1000 to 1024 would change observable behavior.
// Use [NextPow2] to round explicitly, or [Modulo] for exact odd sizes.
type Pow2 struct{}

func (Pow2) wrap(capacity, pos uint64) uint64 {
	return pos & (capacity - 1)
}

// Modulo wraps cursor positions with integer division. It accepts any
// capacity >= 1 and costs a division where [Pow2] costs an AND.
//
// All positions fed to wrap are non-negative: signed logical indices
// are normalized by length before any slot math, so the result is
// always in [0, capacity) with no truncated-remainder sign surprises.
type Modulo struct{}

func (Modulo) wrap(capacity, pos uint64) uint64 {
	return pos % capacity
}

// isPow2 reports whether n is a positive power of two.
func isPow2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// NextPow2 rounds n up to the next power of 2. It returns 1 for n < 1.
//
// Useful for sizing a [Pow2] buffer from an inexact requirement:
//
//	b, err := ring.NewFixed[Sample](ring.NextPow2(1000)) // capacity 1024
func NextPow2(n int) int {
	if n < 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
