// SPDX-License-Identifier: MIT
// File: base.go
// Role: element access and in-place mutation shared by every variant.
//
// All four variants embed base; immutable ones shadow the mutators (see
// immutable.go). base owns its store exclusively and never exposes it.

package sequence

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lvlseq/option"
	"github.com/katalvlaran/lvlseq/store"
)

// base implements Sequence over a store.Store.
type base[T any] struct {
	st  store.Store[T]
	fam family[T]
}

// Get returns the element at i.
// Complexity: O(1) on contiguous storage, O(i) on linked storage.
func (b *base[T]) Get(i int) (T, error) {
	v, err := b.st.Get(i)
	if err != nil {
		return v, seqErrorf(b.fam.name, "Get", err, i)
	}

	return v, nil
}

// TryGet returns Some(element at i) or None when i is out of range.
func (b *base[T]) TryGet(i int) option.Option[T] {
	if i < 0 || i >= b.st.Len() {
		return option.None[T]()
	}
	v, _ := b.st.Get(i)

	return option.Some(v)
}

// GetFirst returns element 0 or ErrEmptySequence.
func (b *base[T]) GetFirst() (T, error) {
	if b.st.Len() == 0 {
		var zero T
		return zero, seqErrorf(b.fam.name, "GetFirst", ErrEmptySequence)
	}

	return b.st.Get(0)
}

// GetLast returns element Len()-1 or ErrEmptySequence.
// Complexity: O(1) for both backings (the chain caches its tail).
func (b *base[T]) GetLast() (T, error) {
	n := b.st.Len()
	if n == 0 {
		var zero T
		return zero, seqErrorf(b.fam.name, "GetLast", ErrEmptySequence)
	}

	return b.st.Get(n - 1)
}

// TryGetFirst returns Some(first) or None when empty.
func (b *base[T]) TryGetFirst() option.Option[T] {
	return b.TryGet(0)
}

// TryGetLast returns Some(last) or None when empty.
func (b *base[T]) TryGetLast() option.Option[T] {
	return b.TryGet(b.st.Len() - 1)
}

// Len returns the element count.
func (b *base[T]) Len() int { return b.st.Len() }

// Append adds item at the end, in place.
func (b *base[T]) Append(item T) error {
	b.st.Append(item)

	return nil
}

// Prepend adds item at the front, in place.
func (b *base[T]) Prepend(item T) error {
	b.st.Prepend(item)

	return nil
}

// InsertAt places item at index in place; index must lie in [0, Len()].
func (b *base[T]) InsertAt(item T, index int) error {
	if err := b.st.InsertAt(index, item); err != nil {
		return seqErrorf(b.fam.name, "InsertAt", err, index)
	}

	return nil
}

// All yields (index, element) pairs in order.
// A single pass over either backing is O(n).
func (b *base[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for v := range b.st.All() {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Values returns the elements as a newly allocated slice.
func (b *base[T]) Values() []T {
	return slices.Collect(b.st.All())
}

// String renders the elements in fmt's slice notation.
func (b *base[T]) String() string {
	return fmt.Sprint(b.Values())
}

// derive adopts st as a new sequence of the receiver's family.
func (b *base[T]) derive(st store.Store[T]) Sequence[T] {
	return b.fam.wrap(st)
}
