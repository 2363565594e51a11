// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/ring"
)

// =============================================================================
// Relative Indexing
// =============================================================================

// TestGetRelative exercises positive and negative logical indices on a
// wrapped buffer: 0 is the oldest, -1 the newest.
func TestGetRelative(t *testing.T) {
	for variant, b := range makeBuffers(t, 4) {
		b.Extend(0, 1, 2, 3, 4, 5) // wrapped: [2 3 4 5]

		cases := []struct {
			index int
			want  int
		}{
			{0, 2}, {1, 3}, {2, 4}, {3, 5},
			{-1, 5}, {-2, 4}, {-3, 3}, {-4, 2},
		}
		for _, c := range cases {
			if v, ok := b.Get(c.index); !ok || v != c.want {
				t.Fatalf("%s: Get(%d): got (%d, %v), want (%d, true)", variant, c.index, v, ok, c.want)
			}
		}
		for _, i := range []int{4, -5, 100, -100} {
			if v, ok := b.Get(i); ok {
				t.Fatalf("%s: Get(%d): got (%d, true), want out of range", variant, i, v)
			}
			if p := b.GetPtr(i); p != nil {
				t.Fatalf("%s: GetPtr(%d): got non-nil, want nil", variant, i)
			}
		}
	}
}

// TestFrontBack pins down the terminology: back is the oldest element
// (Dequeue's next), front the newest.
func TestFrontBack(t *testing.T) {
	for variant, b := range makeBuffers(t, 3) {
		if _, ok := b.Front(); ok {
			t.Fatalf("%s: Front on empty: got ok", variant)
		}
		if _, ok := b.Back(); ok {
			t.Fatalf("%s: Back on empty: got ok", variant)
		}
		if b.FrontPtr() != nil || b.BackPtr() != nil {
			t.Fatalf("%s: ptr accessors on empty: got non-nil", variant)
		}

		b.Extend(10, 20, 30)

		if v, ok := b.Back(); !ok || v != 10 {
			t.Fatalf("%s: Back: got (%d, %v), want (10, true)", variant, v, ok)
		}
		if v, ok := b.Front(); !ok || v != 30 {
			t.Fatalf("%s: Front: got (%d, %v), want (30, true)", variant, v, ok)
		}

		// Back, Peek and Get(0) agree.
		back, _ := b.Back()
		peek, err := b.Peek()
		get0, _ := b.Get(0)
		if err != nil || back != peek || peek != get0 {
			t.Fatalf("%s: Back=%d Peek=%d Get(0)=%d, want all equal", variant, back, peek, get0)
		}

		// Dequeue consumes the back.
		if v, err := b.Dequeue(); err != nil || v != back {
			t.Fatalf("%s: Dequeue: got (%d, %v), want (%d, nil)", variant, v, err, back)
		}
	}
}

// TestPtrAccessorsMutate verifies writes through GetPtr, FrontPtr and
// BackPtr are visible to subsequent reads.
func TestPtrAccessorsMutate(t *testing.T) {
	for variant, b := range makeBuffers(t, 3) {
		b.Extend(1, 2, 3)

		*b.BackPtr() = 100
		*b.FrontPtr() = 300
		*b.GetPtr(1) = 200

		if got := b.ToSlice(); !slices.Equal(got, []int{100, 200, 300}) {
			t.Fatalf("%s: ToSlice: got %v, want [100 200 300]", variant, got)
		}
	}
}

// =============================================================================
// Absolute Indexing
// =============================================================================

// TestGetAbsolute reads physical slots directly: after wraparound the
// newest element sits at the start of the backing storage, and dead
// slots read as zero values.
func TestGetAbsolute(t *testing.T) {
	b := mustFixed(t, 4)
	b.Extend(0, 1, 2, 3, 4) // physical layout: [4 1 2 3]

	want := []int{4, 1, 2, 3}
	for i, w := range want {
		if v, ok := b.GetAbsolute(i); !ok || v != w {
			t.Fatalf("GetAbsolute(%d): got (%d, %v), want (%d, true)", i, v, ok, w)
		}
	}
	for _, i := range []int{-1, 4, 100} {
		if _, ok := b.GetAbsolute(i); ok {
			t.Fatalf("GetAbsolute(%d): got ok, want out of range", i)
		}
		if p := b.GetAbsolutePtr(i); p != nil {
			t.Fatalf("GetAbsolutePtr(%d): got non-nil, want nil", i)
		}
	}

	// Dequeue zeroes the vacated slot: no stale element through the
	// absolute view.
	if _, err := b.Dequeue(); err != nil { // removes 1, physical slot 1
		t.Fatalf("Dequeue: %v", err)
	}
	if v, ok := b.GetAbsolute(1); !ok || v != 0 {
		t.Fatalf("GetAbsolute(1) after Dequeue: got (%d, %v), want (0, true)", v, ok)
	}
}

// TestGetAbsoluteGrowable: absolute positions index the current
// allocation.
func TestGetAbsoluteGrowable(t *testing.T) {
	g := ring.NewGrowable[int](4)
	g.Extend(1, 2)

	if v, ok := g.GetAbsolute(0); !ok || v != 1 {
		t.Fatalf("GetAbsolute(0): got (%d, %v), want (1, true)", v, ok)
	}
	if v, ok := g.GetAbsolute(2); !ok || v != 0 {
		t.Fatalf("GetAbsolute(2) on dead slot: got (%d, %v), want (0, true)", v, ok)
	}
	if _, ok := g.GetAbsolute(4); ok {
		t.Fatal("GetAbsolute(4): got ok, want out of range")
	}
}

// =============================================================================
// Loud Accessors
// =============================================================================

// TestAtPanics verifies the panicking spellings raise ErrOutOfBounds
// exactly where the quiet ones report absence.
func TestAtPanics(t *testing.T) {
	mustPanicOutOfBounds := func(t *testing.T, name string, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("%s: expected panic", name)
			}
			if err, ok := r.(error); !ok || !errors.Is(err, ring.ErrOutOfBounds) {
				t.Fatalf("%s: panic value: got %v, want ErrOutOfBounds", name, r)
			}
		}()
		fn()
	}

	for variant, b := range makeBuffers(t, 3) {
		b.Extend(1, 2)

		// In-range calls do not panic.
		if v := b.At(0); v != 1 {
			t.Fatalf("%s: At(0): got %d, want 1", variant, v)
		}
		if v := b.At(-1); v != 2 {
			t.Fatalf("%s: At(-1): got %d, want 2", variant, v)
		}
		b.SetAt(1, 20)
		if v := b.At(1); v != 20 {
			t.Fatalf("%s: At(1) after SetAt: got %d, want 20", variant, v)
		}

		mustPanicOutOfBounds(t, variant+"/At(2)", func() { b.At(2) })
		mustPanicOutOfBounds(t, variant+"/At(-3)", func() { b.At(-3) })
		mustPanicOutOfBounds(t, variant+"/SetAt(2)", func() { b.SetAt(2, 0) })
	}
}

// TestSetLenPanics: SetLen is loud like At.
func TestSetLenPanics(t *testing.T) {
	b := mustFixed(t, 4)
	for _, n := range []int{-1, 5} {
		func() {
			defer func() {
				r := recover()
				if err, ok := r.(error); !ok || !errors.Is(err, ring.ErrOutOfBounds) {
					t.Fatalf("SetLen(%d): panic value: got %v, want ErrOutOfBounds", n, r)
				}
			}()
			b.SetLen(n)
		}()
	}
}

// =============================================================================
// Iteration
// =============================================================================

// TestIterationOrder: Values, All and Refs traverse oldest to newest,
// including across the wrap seam.
func TestIterationOrder(t *testing.T) {
	for variant, b := range makeBuffers(t, 4) {
		b.Extend(0, 1, 2, 3, 4, 5) // wrapped: [2 3 4 5]

		if got := slices.Collect(b.Values()); !slices.Equal(got, []int{2, 3, 4, 5}) {
			t.Fatalf("%s: Values: got %v, want [2 3 4 5]", variant, got)
		}

		i := 0
		for idx, v := range b.All() {
			if idx != i {
				t.Fatalf("%s: All: index %d, want %d", variant, idx, i)
			}
			if want, _ := b.Get(i); v != want {
				t.Fatalf("%s: All[%d]: got %d, want %d", variant, i, v, want)
			}
			i++
		}
		if i != b.Len() {
			t.Fatalf("%s: All yielded %d elements, want %d", variant, i, b.Len())
		}

		var viaRefs []int
		for p := range b.Refs() {
			viaRefs = append(viaRefs, *p)
		}
		if !slices.Equal(viaRefs, []int{2, 3, 4, 5}) {
			t.Fatalf("%s: Refs: got %v, want [2 3 4 5]", variant, viaRefs)
		}
	}
}

// TestIterationEarlyStop: breaking out of a range is clean, and a fresh
// range restarts from the oldest element.
func TestIterationEarlyStop(t *testing.T) {
	b := mustFixed(t, 4)
	b.Extend(1, 2, 3, 4)

	var first []int
	for v := range b.Values() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	if !slices.Equal(first, []int{1, 2}) {
		t.Fatalf("partial traversal: got %v, want [1 2]", first)
	}

	if got := slices.Collect(b.Values()); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("fresh traversal: got %v, want [1 2 3 4]", got)
	}
}

// TestRefsInPlaceUpdate: element updates through Refs pointers are
// visible immediately, each slot yielded exactly once.
func TestRefsInPlaceUpdate(t *testing.T) {
	for variant, b := range makeBuffers(t, 4) {
		b.Extend(0, 1, 2, 3, 4) // wrapped: [1 2 3 4]

		for p := range b.Refs() {
			*p *= 10
		}
		if got := b.ToSlice(); !slices.Equal(got, []int{10, 20, 30, 40}) {
			t.Fatalf("%s: after Refs update: got %v, want [10 20 30 40]", variant, got)
		}
	}
}

// TestIterationEmpty: iterating an empty buffer yields nothing.
func TestIterationEmpty(t *testing.T) {
	for variant, b := range makeBuffers(t, 2) {
		for v := range b.Values() {
			t.Fatalf("%s: Values on empty yielded %d", variant, v)
		}
		for p := range b.Refs() {
			t.Fatalf("%s: Refs on empty yielded %v", variant, p)
		}
	}
}

// =============================================================================
// Fill and SetLen
// =============================================================================

// TestFill: the buffer becomes full with every slot holding the value.
func TestFill(t *testing.T) {
	b := mustModulo(t, 3)
	b.Extend(1, 2, 3, 4) // wrapped

	b.Fill(7)

	if !b.IsFull() || b.Len() != 3 {
		t.Fatalf("after Fill: Len=%d IsFull=%v", b.Len(), b.IsFull())
	}
	if got := b.ToSlice(); !slices.Equal(got, []int{7, 7, 7}) {
		t.Fatalf("ToSlice: got %v, want [7 7 7]", got)
	}
	// Same window behavior as a freshly filled buffer.
	b.Push(8)
	if got := b.ToSlice(); !slices.Equal(got, []int{7, 7, 8}) {
		t.Fatalf("ToSlice after Push: got %v, want [7 7 8]", got)
	}
}

// TestFillWith: fn is called once per slot, oldest to newest.
func TestFillWith(t *testing.T) {
	b := mustFixed(t, 4)
	n := 0
	b.FillWith(func() int { n++; return n })

	if got := b.ToSlice(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Fatalf("ToSlice: got %v, want [1 2 3 4]", got)
	}
	if n != 4 {
		t.Fatalf("fn calls: got %d, want 4", n)
	}
}

// TestSetLen: shrinking discards the newest elements and zeroes their
// slots; growing admits zero-value elements.
func TestSetLen(t *testing.T) {
	b := mustFixed(t, 4)
	b.Extend(1, 2, 3, 4)

	b.SetLen(2)
	if got := b.ToSlice(); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("after SetLen(2): got %v, want [1 2]", got)
	}
	// Discarded slots are zeroed.
	if v, ok := b.GetAbsolute(2); !ok || v != 0 {
		t.Fatalf("GetAbsolute(2): got (%d, %v), want (0, true)", v, ok)
	}

	b.SetLen(4)
	if got := b.ToSlice(); !slices.Equal(got, []int{1, 2, 0, 0}) {
		t.Fatalf("after SetLen(4): got %v, want [1 2 0 0]", got)
	}
}

// =============================================================================
// Contains and Equal
// =============================================================================

// TestContains scans the live elements only.
func TestContains(t *testing.T) {
	for variant, b := range makeBuffers(t, 3) {
		b.Extend(1, 2, 3, 4) // 1 displaced

		if !ring.Contains(b, 4) {
			t.Fatalf("%s: Contains(4): got false", variant)
		}
		if !ring.Contains(b, 2) {
			t.Fatalf("%s: Contains(2): got false", variant)
		}
		if ring.Contains(b, 1) {
			t.Fatalf("%s: Contains(1): got true for displaced element", variant)
		}
		if ring.Contains(b, 0) {
			t.Fatalf("%s: Contains(0): got true for dead-slot zero value", variant)
		}
	}
}

// TestEqual compares logical contents across variants, capacities and
// modes.
func TestEqual(t *testing.T) {
	a := mustFixed(t, 4)
	a.Extend(0, 1, 2, 3, 4, 5) // [2 3 4 5]

	b := mustModulo(t, 5)
	b.Extend(2, 3, 4, 5)

	g := ring.NewGrowable[int](0)
	g.Extend(2, 3, 4, 5)

	if !ring.Equal[int](a, b) || !ring.Equal[int](a, g) {
		t.Fatalf("Equal across variants: a=%v b=%v g=%v", a.ToSlice(), b.ToSlice(), g.ToSlice())
	}

	g.Push(6)
	if ring.Equal[int](a, g) {
		t.Fatal("Equal after diverging push: got true")
	}

	b.SetAt(0, 99)
	if ring.Equal[int](a, b) {
		t.Fatal("Equal after diverging SetAt: got true")
	}
}
