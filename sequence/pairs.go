// SPDX-License-Identifier: MIT
// File: pairs.go
// Role: free combinators that work on any two sequences through the contract
// alone. Inputs are borrowed for the duration of the call and never retained.

package sequence

import (
	"iter"

	"github.com/katalvlaran/lvlseq/store"
)

// Zip pairs a[i] with b[i]. The result has min(a.Len(), b.Len()) elements;
// a length mismatch is not an error, the longer input is truncated.
// A nil input counts as empty.
//
// Each input is traversed once, so linked inputs stay O(n).
func Zip[A, B any](a Sequence[A], b Sequence[B]) *Array[Pair[A, B]] {
	if a == nil || b == nil {
		return NewArray[Pair[A, B]]()
	}
	out := store.NewBuffer[Pair[A, B]](min(a.Len(), b.Len()))
	nextB, stop := iter.Pull2(b.All())
	defer stop()
	for _, x := range a.All() {
		_, y, ok := nextB()
		if !ok {
			break
		}
		out.Append(Pair[A, B]{First: x, Second: y})
	}

	return newArray[Pair[A, B]](out)
}

// Unzip splits a sequence of pairs into its first and second projections.
// Both results have s.Len() elements and are never nil, even for an empty
// or nil input.
func Unzip[A, B any](s Sequence[Pair[A, B]]) (*Array[A], *Array[B]) {
	n := 0
	if s != nil {
		n = s.Len()
	}
	firsts, seconds := store.NewBuffer[A](n), store.NewBuffer[B](n)
	if s != nil {
		for _, p := range s.All() {
			firsts.Append(p.First)
			seconds.Append(p.Second)
		}
	}

	return newArray[A](firsts), newArray[B](seconds)
}

// MapTo is Map with a change of element type. Methods cannot introduce type
// parameters, so this lives here and always yields an Array.
func MapTo[T, U any](s Sequence[T], f func(T) U) *Array[U] {
	out := store.NewBuffer[U](s.Len())
	for _, v := range s.All() {
		out.Append(f(v))
	}

	return newArray[U](out)
}

// Equal reports whether a and b hold equal elements in the same order,
// regardless of their variants.
func Equal[T comparable](a, b Sequence[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	nextB, stop := iter.Pull2(b.All())
	defer stop()
	for _, x := range a.All() {
		_, y, ok := nextB()
		if !ok || x != y {
			return false
		}
	}

	return true
}
