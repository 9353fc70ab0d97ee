// SPDX-License-Identifier: MIT
// File: immutable.go
// Role: the persistent variants.
//
// frozen embeds base, so every read and every transform is shared with the
// mutable variants. It shadows Append/Prepend/InsertAt with versions that
// always fail, and adds the *New operations, which clone the store, apply
// the change to the clone and adopt it as a new value. Nothing is shared
// between a sequence and the ones derived from it.

package sequence

import "github.com/katalvlaran/lvlseq/store"

const (
	kindImmutableArray = "ImmutableArray"
	kindImmutableList  = "ImmutableList"
)

// frozen is the immutable layer over base.
type frozen[T any] struct {
	base[T]
}

// Append always fails with ErrInvalidOperation.
func (f *frozen[T]) Append(T) error {
	return seqErrorf(f.fam.name, "Append", ErrInvalidOperation)
}

// Prepend always fails with ErrInvalidOperation.
func (f *frozen[T]) Prepend(T) error {
	return seqErrorf(f.fam.name, "Prepend", ErrInvalidOperation)
}

// InsertAt always fails with ErrInvalidOperation.
func (f *frozen[T]) InsertAt(_ T, index int) error {
	return seqErrorf(f.fam.name, "InsertAt", ErrInvalidOperation, index)
}

// AppendNew returns a copy with item at the end.
// Complexity: O(n).
func (f *frozen[T]) AppendNew(item T) Persistent[T] {
	st := f.st.Clone()
	st.Append(item)

	return f.persist(st)
}

// PrependNew returns a copy with item at the front.
// Complexity: O(n).
func (f *frozen[T]) PrependNew(item T) Persistent[T] {
	st := f.st.Clone()
	st.Prepend(item)

	return f.persist(st)
}

// InsertAtNew returns a copy with item at index. The index is validated
// against the receiver before anything is copied.
// Complexity: O(n).
func (f *frozen[T]) InsertAtNew(item T, index int) (Persistent[T], error) {
	if index < 0 || index > f.st.Len() {
		return nil, seqErrorf(f.fam.name, "InsertAtNew", ErrIndexOutOfRange, index)
	}
	st := f.st.Clone()
	if err := st.InsertAt(index, item); err != nil {
		return nil, seqErrorf(f.fam.name, "InsertAtNew", err, index)
	}

	return f.persist(st), nil
}

// persist adopts st as a new value of the receiver's immutable family.
func (f *frozen[T]) persist(st store.Store[T]) Persistent[T] {
	return f.fam.wrap(st).(Persistent[T])
}

// ImmutableArray is a persistent sequence over contiguous storage.
type ImmutableArray[T any] struct {
	frozen[T]
}

func newImmutableArray[T any](st store.Store[T]) *ImmutableArray[T] {
	return &ImmutableArray[T]{frozen: frozen[T]{base: base[T]{
		st:  st,
		fam: family[T]{name: kindImmutableArray, alloc: allocBuffer[T], wrap: wrapImmutableArray[T]},
	}}}
}

func wrapImmutableArray[T any](st store.Store[T]) Sequence[T] { return newImmutableArray(st) }

// NewImmutableArray returns an ImmutableArray holding a copy of items.
func NewImmutableArray[T any](items ...T) *ImmutableArray[T] {
	return newImmutableArray(bufferOf(items))
}

// NewImmutableArrayN returns an ImmutableArray holding a copy of the first n items.
// Returns ErrInvalidSize if n < 0 or n > len(items).
func NewImmutableArrayN[T any](items []T, n int) (*ImmutableArray[T], error) {
	st, err := store.NewBufferFrom(items, n)
	if err != nil {
		return nil, seqErrorf(kindImmutableArray, "NewImmutableArrayN", err)
	}

	return newImmutableArray[T](st), nil
}

// NewImmutableArrayFrom returns an ImmutableArray holding a copy of src's elements.
func NewImmutableArrayFrom[T any](src Sequence[T]) *ImmutableArray[T] {
	return newImmutableArray(copyInto(allocBuffer[T], src))
}

// ImmutableList is a persistent sequence over a singly-linked chain.
type ImmutableList[T any] struct {
	frozen[T]
}

func newImmutableList[T any](st store.Store[T]) *ImmutableList[T] {
	return &ImmutableList[T]{frozen: frozen[T]{base: base[T]{
		st:  st,
		fam: family[T]{name: kindImmutableList, alloc: allocChain[T], wrap: wrapImmutableList[T]},
	}}}
}

func wrapImmutableList[T any](st store.Store[T]) Sequence[T] { return newImmutableList(st) }

// NewImmutableList returns an ImmutableList holding a copy of items.
func NewImmutableList[T any](items ...T) *ImmutableList[T] {
	return newImmutableList(chainOf(items))
}

// NewImmutableListN returns an ImmutableList holding a copy of the first n items.
// Returns ErrInvalidSize if n < 0 or n > len(items).
func NewImmutableListN[T any](items []T, n int) (*ImmutableList[T], error) {
	st, err := store.NewChainFrom(items, n)
	if err != nil {
		return nil, seqErrorf(kindImmutableList, "NewImmutableListN", err)
	}

	return newImmutableList[T](st), nil
}

// NewImmutableListFrom returns an ImmutableList holding a copy of src's elements.
func NewImmutableListFrom[T any](src Sequence[T]) *ImmutableList[T] {
	return newImmutableList(copyInto(allocChain[T], src))
}
