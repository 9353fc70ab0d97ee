// SPDX-License-Identifier: MIT

package sequence

import "github.com/katalvlaran/lvlseq/store"

const kindList = "List"

// List is a mutable sequence over a singly-linked chain.
//
// Append and Prepend are O(1) (the chain caches its tail); Get and interior
// InsertAt walk from the head, O(i).
type List[T any] struct {
	base[T]
}

func newList[T any](st store.Store[T]) *List[T] {
	return &List[T]{base: base[T]{
		st:  st,
		fam: family[T]{name: kindList, alloc: allocChain[T], wrap: wrapList[T]},
	}}
}

func wrapList[T any](st store.Store[T]) Sequence[T] { return newList(st) }

// NewList returns a List holding a copy of items.
func NewList[T any](items ...T) *List[T] {
	return newList(chainOf(items))
}

// NewListN returns a List holding a copy of the first n items.
// Returns ErrInvalidSize if n < 0 or n > len(items).
func NewListN[T any](items []T, n int) (*List[T], error) {
	st, err := store.NewChainFrom(items, n)
	if err != nil {
		return nil, seqErrorf(kindList, "NewListN", err)
	}

	return newList[T](st), nil
}

// NewListFrom returns a List holding a copy of src's elements.
func NewListFrom[T any](src Sequence[T]) *List[T] {
	return newList(copyInto(allocChain[T], src))
}

// Clone returns a deep copy; later mutations of either side are not shared.
// Complexity: O(n).
func (l *List[T]) Clone() *List[T] {
	return newList(l.st.Clone())
}

func chainOf[T any](items []T) store.Store[T] {
	st := store.NewChain[T]()
	for _, v := range items {
		st.Append(v)
	}

	return st
}
