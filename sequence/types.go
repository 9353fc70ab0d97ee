// SPDX-License-Identifier: MIT

package sequence

import (
	"iter"

	"github.com/katalvlaran/lvlseq/option"
	"github.com/katalvlaran/lvlseq/store"
)

// Sequence is the contract shared by Array, List, ImmutableArray and ImmutableList.
//
// Every method that returns a Sequence returns a fresh value of the receiver's
// own family (an Array yields Arrays, an ImmutableList yields ImmutableLists)
// that shares no storage with the receiver.
type Sequence[T any] interface {
	// Get returns the element at i; ErrIndexOutOfRange unless 0 <= i < Len().
	Get(i int) (T, error)
	// TryGet returns Some(element at i), or None when i is out of range.
	TryGet(i int) option.Option[T]
	// GetFirst returns the first element; ErrEmptySequence when empty.
	GetFirst() (T, error)
	// GetLast returns the last element; ErrEmptySequence when empty.
	GetLast() (T, error)
	// TryGetFirst is GetFirst without the error.
	TryGetFirst() option.Option[T]
	// TryGetLast is GetLast without the error.
	TryGetLast() option.Option[T]
	// Len returns the number of elements.
	Len() int

	// Append adds item at the end. Immutable variants return ErrInvalidOperation.
	Append(item T) error
	// Prepend adds item at the front. Immutable variants return ErrInvalidOperation.
	Prepend(item T) error
	// InsertAt places item at index, which must lie in [0, Len()].
	// Immutable variants return ErrInvalidOperation.
	InsertAt(item T, index int) error

	// GetSubsequence returns elements start..end inclusive.
	GetSubsequence(start, end int) (Sequence[T], error)
	// Map applies f to every element, preserving order and length.
	Map(f func(T) T) Sequence[T]
	// Where keeps the elements satisfying p, in their original order.
	Where(p func(T) bool) Sequence[T]
	// Reduce left-folds f over the elements starting from initial.
	Reduce(f func(acc, v T) T, initial T) T
	// FlatMap concatenates, in order, the sequences produced by f.
	FlatMap(f func(T) Sequence[T]) Sequence[T]
	// Find returns the first element satisfying p.
	Find(p func(T) bool) option.Option[T]
	// Split partitions the elements into those satisfying p and the rest.
	Split(p func(T) bool) (matching, rest Sequence[T])
	// Slice removes count elements at start and splices replacement (may be nil) in their place.
	Slice(start, count int, replacement Sequence[T]) (Sequence[T], error)
	// Concat returns the receiver's elements followed by other's.
	Concat(other Sequence[T]) Sequence[T]

	// All yields (index, element) pairs in order.
	All() iter.Seq2[int, T]
	// Values returns a copy of the elements as a slice.
	Values() []T
	// String renders the elements as "[a b c]".
	String() string
}

// Persistent is implemented by the immutable variants. The *New operations
// return a new independent sequence and never touch the receiver.
type Persistent[T any] interface {
	Sequence[T]

	// AppendNew returns a copy with item added at the end.
	AppendNew(item T) Persistent[T]
	// PrependNew returns a copy with item added at the front.
	PrependNew(item T) Persistent[T]
	// InsertAtNew returns a copy with item at index; index must lie in [0, Len()].
	InsertAtNew(item T, index int) (Persistent[T], error)
}

// Pair couples two values; Zip produces and Unzip consumes sequences of pairs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// family describes how to build fresh sequences of one concrete variant.
// Shared algorithms allocate a store with alloc, fill it, and hand it to wrap.
type family[T any] struct {
	name  string                              // type name used in error context
	alloc func(capHint int) store.Store[T]    // empty store of the variant's backing kind
	wrap  func(st store.Store[T]) Sequence[T] // adopt st as a new sequence of the variant
}

func allocBuffer[T any](capHint int) store.Store[T] { return store.NewBuffer[T](capHint) }

func allocChain[T any](int) store.Store[T] { return store.NewChain[T]() }

// Compile-time conformance of the four variants.
var (
	_ Sequence[int]   = (*Array[int])(nil)
	_ Sequence[int]   = (*List[int])(nil)
	_ Persistent[int] = (*ImmutableArray[int])(nil)
	_ Persistent[int] = (*ImmutableList[int])(nil)
)
