// SPDX-License-Identifier: MIT

package store

import "iter"

// Store is the storage contract shared by Buffer and Chain.
type Store[T any] interface {
	// Get returns the element at i, or ErrIndexOutOfRange.
	Get(i int) (T, error)

	// Set overwrites the element at i, or returns ErrIndexOutOfRange.
	Set(i int, v T) error

	// Append adds v after the last element.
	Append(v T)

	// Prepend adds v before the first element.
	Prepend(v T)

	// InsertAt places v so that it ends up at index i; i must lie in [0, Len()].
	InsertAt(i int, v T) error

	// Len returns the number of stored elements.
	Len() int

	// All yields the elements in index order.
	All() iter.Seq[T]

	// Clone returns an independent deep copy of the store.
	Clone() Store[T]
}

// Compile-time conformance.
var (
	_ Store[int] = (*Buffer[int])(nil)
	_ Store[int] = (*Chain[int])(nil)
)

// checkRawSize validates the size argument of the *From constructors.
func checkRawSize(kind string, items int, n int) error {
	if n < 0 || n > items {
		return storeErrorf(kind, "From", ErrInvalidSize, n)
	}

	return nil
}
