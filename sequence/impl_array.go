// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/lvlseq/store"

const kindArray = "Array"

// Array is a mutable sequence over contiguous storage.
//
// Get is O(1), Append O(1) amortized, Prepend and interior InsertAt O(n).
type Array[T any] struct {
	base[T]
}

func newArray[T any](st store.Store[T]) *Array[T] {
	return &Array[T]{base: base[T]{
		st:  st,
		fam: family[T]{name: kindArray, alloc: allocBuffer[T], wrap: wrapArray[T]},
	}}
}

func wrapArray[T any](st store.Store[T]) Sequence[T] { return newArray(st) }

// NewArray returns an Array holding a copy of items.
func NewArray[T any](items ...T) *Array[T] {
	return newArray(bufferOf(items))
}

// NewArrayN returns an Array holding a copy of the first n items.
// Returns ErrInvalidSize if n < 0 or n > len(items).
func NewArrayN[T any](items []T, n int) (*Array[T], error) {
	st, err := store.NewBufferFrom(items, n)
	if err != nil {
		return nil, seqErrorf(kindArray, "NewArrayN", err)
	}

	return newArray[T](st), nil
}

// NewArrayFrom returns an Array holding a copy of src's elements.
// src may be any variant; a nil src yields an empty Array.
func NewArrayFrom[T any](src Sequence[T]) *Array[T] {
	return newArray(copyInto(allocBuffer[T], src))
}

// Clone returns a deep copy; later mutations of either side are not shared.
// Complexity: O(n).
func (a *Array[T]) Clone() *Array[T] {
	return newArray(a.st.Clone())
}

// bufferOf copies items into a new Buffer.
func bufferOf[T any](items []T) store.Store[T] {
	st := store.NewBuffer[T](len(items))
	for _, v := range items {
		st.Append(v)
	}

	return st
}

// copyInto fills a store made by alloc with src's elements.
func copyInto[T any](alloc func(int) store.Store[T], src Sequence[T]) store.Store[T] {
	if src == nil {
		return alloc(0)
	}
	st := alloc(src.Len())
	for _, v := range src.All() {
		st.Append(v)
	}

	return st
}
