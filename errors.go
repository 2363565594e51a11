// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ring

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the read end has no data available right now.
//
// Dequeue, Skip and Peek return it when the buffer is empty. Push never
// returns it: a full buffer overwrites its oldest element instead of
// rejecting the write.
//
// ErrWouldBlock is a control flow signal, not a failure
// (IsNonFailure(ErrWouldBlock) == true). A drain loop terminates on it
// rather than propagating it.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	for {
//	    v, err := b.Dequeue()
//	    if ring.IsWouldBlock(err) {
//	        break // drained
//	    }
//	    process(v)
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrInvalidCapacity indicates a rejected construction request: the
// capacity is zero or negative, or not a power of two where the masked
// indexing mode requires one.
//
// It is returned only by constructors and [Build]; no operation on a
// constructed buffer ever returns it.
var ErrInvalidCapacity = errors.New("ring: invalid capacity")

// ErrOutOfBounds is the panic value of the loud indexed-access methods
// (At, SetAt, SetLen) when the index or length is outside the valid
// range. The quiet accessors (Get, GetPtr, GetAbsolute, Front, Back)
// never panic; they report absence through their results instead.
var ErrOutOfBounds = errors.New("ring: index out of bounds")

// IsWouldBlock reports whether err indicates an empty read end.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil and ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
