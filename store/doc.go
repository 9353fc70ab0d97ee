// Package store provides the two backing stores used by lvlseq sequences:
// a contiguous growable Buffer and a singly-linked Chain.
//
// Both satisfy the Store interface:
//
//	Get(i) / Set(i, v)   // Buffer O(1), Chain O(i)
//	Append(v)            // Buffer O(1) amortized, Chain O(1) (cached tail)
//	Prepend(v)           // Buffer O(n) shift,     Chain O(1)
//	InsertAt(i, v)       // Buffer O(n-i) shift,   Chain O(i) walk + splice
//	Len()                // O(1)
//	All()                // O(n) in-order traversal for both
//	Clone()              // O(n) deep copy, never aliases the source
//
// Indexing is 0-based with explicit bounds checks. Violations return
// ErrIndexOutOfRange; constructing from a raw slice with a negative (or
// larger-than-slice) size returns ErrInvalidSize. Nothing here panics on
// caller input.
//
// Stores are not safe for concurrent mutation; each one is expected to be
// owned by exactly one sequence.
package store
