// Package sequence provides generic ordered collections behind one contract,
// Sequence[T], with four interchangeable variants:
//
//	                 mutable      immutable (Persistent)
//	contiguous       Array        ImmutableArray
//	linked           List         ImmutableList
//
// Storage and mutability are fixed when the value is constructed; code that
// receives a Sequence[T] never branches on the concrete type.
//
// Contract:
//
//	Get(i) / TryGet(i)                 // ErrIndexOutOfRange / None outside [0,n)
//	GetFirst, GetLast                  // ErrEmptySequence when n == 0
//	TryGetFirst, TryGetLast            // None when n == 0
//	Len()
//	Append, Prepend, InsertAt          // in place; ErrInvalidOperation on immutables
//	GetSubsequence(start, end)         // inclusive bounds
//	Map, Where, Reduce, FlatMap, Find, Split
//	Slice(start, count, replacement)   // negative start counts from the end
//	Concat, All, Values, String
//
// Immutable variants add AppendNew, PrependNew and InsertAtNew, which return
// a new independent value and leave the receiver untouched.
//
// Free functions work across variants: Zip/Unzip over Pair[A,B], MapTo for a
// change of element type, Equal, Sum and Product. New builds any variant from
// functional options (WithStorage, WithImmutable, WithCapacity).
//
// Ownership:
//
//	Every returned Sequence is a fresh allocation that shares no storage with
//	its receiver or arguments. Arguments such as Slice's replacement or Zip's
//	inputs are only read during the call.
//
// Errors:
//
//	ErrIndexOutOfRange, ErrEmptySequence, ErrInvalidOperation, ErrInvalidSize,
//	ErrInvalidArgument. All are returned (never panicked), wrapped with method
//	context, and matched with errors.Is. A call that fails has not modified
//	anything.
//
// Concurrency:
//
//	None of the types are safe for concurrent mutation. Reads of an immutable
//	sequence may run concurrently since nothing ever writes to it.
package sequence
