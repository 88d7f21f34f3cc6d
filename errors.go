// Copyright (c) 2026 concurrent-go authors
//
// Use of this software is governed by the MIT license included
// in the LICENSE file.

package elimstack

// ConstError is an error type that can be used to define immutable
// error constants, usable in a const block and comparable with
// errors.Is. Grounded on the teacher's own ConstError
// (go/vm/lfvm/errors.go, go/tosca/errors_test.go).
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// ErrEmpty is the sentinel PopOrErr returns when the stack is observed
// empty. Pop itself reports emptiness the idiomatic Go way, via its
// boolean second return, because spec.md §7 is explicit that Empty is
// "not an error in the failure sense, a normal outcome"; ErrEmpty exists
// for callers who prefer to plumb errors.Is through existing error-
// handling paths. Contended and Aborted, the try_ primitives' other
// internal outcomes, are never surfaced as errors or otherwise: spec.md
// §7 requires they always be converted to a retry or a fallback attempt.
const ErrEmpty = ConstError("elimstack: empty")
