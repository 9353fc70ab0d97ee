// SPDX-License-Identifier: MIT

package store

import (
	"iter"
	"slices"
)

const kindBuffer = "Buffer"

// Buffer is a contiguous growable store backed by a Go slice.
type Buffer[T any] struct {
	items []T
}

// NewBuffer returns an empty Buffer with room for capHint elements.
// Negative hints are treated as zero.
func NewBuffer[T any](capHint int) *Buffer[T] {
	if capHint < 0 {
		capHint = 0
	}

	return &Buffer[T]{items: make([]T, 0, capHint)}
}

// NewBufferFrom copies the first n elements of items into a new Buffer.
// Returns ErrInvalidSize if n < 0 or n > len(items).
// Complexity: O(n).
func NewBufferFrom[T any](items []T, n int) (*Buffer[T], error) {
	if err := checkRawSize(kindBuffer, len(items), n); err != nil {
		return nil, err
	}
	b := NewBuffer[T](n)
	b.items = append(b.items, items[:n]...)

	return b, nil
}

// Get returns the element at i.
// Complexity: O(1).
func (b *Buffer[T]) Get(i int) (T, error) {
	if i < 0 || i >= len(b.items) {
		var zero T
		return zero, storeErrorf(kindBuffer, "Get", ErrIndexOutOfRange, i)
	}

	return b.items[i], nil
}

// Set overwrites the element at i.
// Complexity: O(1).
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= len(b.items) {
		return storeErrorf(kindBuffer, "Set", ErrIndexOutOfRange, i)
	}
	b.items[i] = v

	return nil
}

// Append adds v at the end. O(1) amortized.
func (b *Buffer[T]) Append(v T) {
	b.items = append(b.items, v)
}

// Prepend adds v at index 0, shifting every element right. O(n).
func (b *Buffer[T]) Prepend(v T) {
	b.items = slices.Insert(b.items, 0, v)
}

// InsertAt places v at index i, shifting the tail right. O(n-i).
func (b *Buffer[T]) InsertAt(i int, v T) error {
	if i < 0 || i > len(b.items) {
		return storeErrorf(kindBuffer, "InsertAt", ErrIndexOutOfRange, i)
	}
	b.items = slices.Insert(b.items, i, v)

	return nil
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// All yields the elements in index order.
func (b *Buffer[T]) All() iter.Seq[T] {
	return slices.Values(b.items)
}

// Clone returns a deep copy with its own backing array.
func (b *Buffer[T]) Clone() Store[T] {
	return &Buffer[T]{items: slices.Clone(b.items)}
}
