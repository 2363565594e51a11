// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import "iter"

// Contains reports whether any live element of b equals target,
// scanning oldest to newest. O(Len()).
//
// It is a package function rather than a method because it needs
// comparable elements, which a method on a [T any] buffer cannot
// require.
func Contains[T comparable](b Buffer[T], target T) bool {
	for v := range b.Values() {
		if v == target {
			return true
		}
	}
	return false
}

// Equal reports whether a and b hold equal elements in the same
// logical order. Capacity, variant and indexing mode do not matter:
// a full Fixed buffer and a Growable holding the same values compare
// equal. O(Len()).
func Equal[T comparable](a, b Buffer[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull(b.Values())
	defer stop()
	for v := range a.Values() {
		w, _ := next()
		if v != w {
			return false
		}
	}
	return true
}
