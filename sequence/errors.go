// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
//
// Every fallible operation returns one of the sentinels below, wrapped with
// "<Type>.<Method>(<args>)" context via %w. Callers MUST match with errors.Is;
// the message text is informational only.
//
// Validation always runs before any write, so an operation that returns an
// error has not modified its receiver.

package sequence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlseq/option"
	"github.com/katalvlaran/lvlseq/store"
)

var (
	// ErrEmptySequence is returned by GetFirst/GetLast on a zero-length sequence.
	ErrEmptySequence = errors.New("sequence: sequence is empty")

	// ErrInvalidOperation is returned by Append/Prepend/InsertAt on an immutable sequence.
	ErrInvalidOperation = errors.New("sequence: operation not allowed on immutable sequence")
)

// Sentinels owned by the leaf packages, re-exported so callers can match
// every condition through this package alone.
var (
	// ErrIndexOutOfRange aliases store.ErrIndexOutOfRange.
	ErrIndexOutOfRange = store.ErrIndexOutOfRange

	// ErrInvalidSize aliases store.ErrInvalidSize.
	ErrInvalidSize = store.ErrInvalidSize

	// ErrInvalidArgument aliases option.ErrInvalidArgument.
	ErrInvalidArgument = option.ErrInvalidArgument
)

// seqErrorf wraps err with the calling type, method and integer arguments.
func seqErrorf(kind, method string, err error, args ...int) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("%s.%s: %w", kind, method, err)
	case 1:
		return fmt.Errorf("%s.%s(%d): %w", kind, method, args[0], err)
	default:
		return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, args[0], args[1], err)
	}
}
