// SPDX-License-Identifier: MIT
// Package store: sentinel error set.
//
// Callers branch with errors.Is; the concrete error carries the failing
// method and arguments as a "%w" prefix, e.g. "Buffer.Get(5): store: index out of range".

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index outside the valid domain for the current length.
	ErrIndexOutOfRange = errors.New("store: index out of range")

	// ErrInvalidSize indicates a negative or otherwise unusable size given to a constructor.
	ErrInvalidSize = errors.New("store: invalid size")
)

// storeErrorf wraps err with "<kind>.<method>(<args>)" context.
func storeErrorf(kind, method string, err error, args ...int) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("%s.%s: %w", kind, method, err)
	case 1:
		return fmt.Errorf("%s.%s(%d): %w", kind, method, args[0], err)
	default:
		return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, args[0], args[1], err)
	}
}
