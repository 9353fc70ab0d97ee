// SPDX-License-Identifier: MIT
// File: transforms.go
// Role: structural and functional operations that build a new sequence.
//
// Every function here reads the receiver through its store iterator and
// writes only into a freshly allocated store, which is why the immutable
// variants can reuse them unchanged.

package sequence

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/lvlseq/option"
)

// GetSubsequence returns elements start..end inclusive as a new sequence.
// Fails with ErrIndexOutOfRange if start < 0, end >= Len() or start > end.
// Complexity: O(end) traversal + O(end-start+1) copy.
func (b *base[T]) GetSubsequence(start, end int) (Sequence[T], error) {
	if start < 0 || end >= b.st.Len() || start > end {
		return nil, seqErrorf(b.fam.name, "GetSubsequence", ErrIndexOutOfRange, start, end)
	}
	out := b.fam.alloc(end - start + 1)
	i := 0
	for v := range b.st.All() {
		if i > end {
			break
		}
		if i >= start {
			out.Append(v)
		}
		i++
	}

	return b.derive(out), nil
}

// Map returns f applied to every element, preserving order and length.
func (b *base[T]) Map(f func(T) T) Sequence[T] {
	out := b.fam.alloc(b.st.Len())
	for v := range b.st.All() {
		out.Append(f(v))
	}

	return b.derive(out)
}

// Where returns the elements satisfying p in their original relative order.
func (b *base[T]) Where(p func(T) bool) Sequence[T] {
	out := b.fam.alloc(0)
	for v := range b.st.All() {
		if p(v) {
			out.Append(v)
		}
	}

	return b.derive(out)
}

// Reduce computes f(...f(f(initial, e0), e1)..., e_{n-1}).
// On an empty sequence it returns initial unchanged.
func (b *base[T]) Reduce(f func(acc, v T) T, initial T) T {
	acc := initial
	for v := range b.st.All() {
		acc = f(acc, v)
	}

	return acc
}

// FlatMap concatenates the sequences returned by f for each element, in order.
// A nil result from f contributes nothing.
func (b *base[T]) FlatMap(f func(T) Sequence[T]) Sequence[T] {
	out := b.fam.alloc(b.st.Len())
	for v := range b.st.All() {
		inner := f(v)
		if inner == nil {
			continue
		}
		for _, x := range inner.All() {
			out.Append(x)
		}
	}

	return b.derive(out)
}

// Find returns the first element satisfying p, or None.
func (b *base[T]) Find(p func(T) bool) option.Option[T] {
	for v := range b.st.All() {
		if p(v) {
			return option.Some(v)
		}
	}

	return option.None[T]()
}

// Split is a stable partition: matching holds the elements satisfying p,
// rest holds the others, both in original order.
//
// p is evaluated exactly once per element. Hits are recorded in a bitset so
// both halves can be allocated at their final size before copying.
// Complexity: O(n) time, O(n/64) extra words.
func (b *base[T]) Split(p func(T) bool) (matching, rest Sequence[T]) {
	n := b.st.Len()
	hits := bitset.New(uint(n))
	var i uint
	for v := range b.st.All() {
		if p(v) {
			hits.Set(i)
		}
		i++
	}

	matched := int(hits.Count())
	yes, no := b.fam.alloc(matched), b.fam.alloc(n-matched)
	i = 0
	for v := range b.st.All() {
		if hits.Test(i) {
			yes.Append(v)
		} else {
			no.Append(v)
		}
		i++
	}

	return b.derive(yes), b.derive(no)
}

// Slice returns a copy with count elements removed at start and, when
// replacement is non-nil, replacement's elements spliced in at that position.
//
// A negative start counts from the end (start = Len()+start) and the resolved
// index must fall in [0, Len()), otherwise ErrIndexOutOfRange. count is clamped
// to the elements remaining after start; a negative count is ErrInvalidSize.
// replacement is only read, never retained.
// Complexity: O(n + m).
func (b *base[T]) Slice(start, count int, replacement Sequence[T]) (Sequence[T], error) {
	n := b.st.Len()
	if count < 0 {
		return nil, seqErrorf(b.fam.name, "Slice", ErrInvalidSize, start, count)
	}
	from := start
	if from < 0 {
		from += n
	}
	if from < 0 || from >= n {
		return nil, seqErrorf(b.fam.name, "Slice", ErrIndexOutOfRange, start, count)
	}
	removed := min(count, n-from)

	m := 0
	if replacement != nil {
		m = replacement.Len()
	}
	out := b.fam.alloc(n - removed + m)
	i := 0
	for v := range b.st.All() {
		if i == from && replacement != nil {
			for _, r := range replacement.All() {
				out.Append(r)
			}
		}
		if i < from || i >= from+removed {
			out.Append(v)
		}
		i++
	}

	return b.derive(out), nil
}

// Concat returns the receiver's elements followed by other's.
// A nil other yields a plain copy.
func (b *base[T]) Concat(other Sequence[T]) Sequence[T] {
	extra := 0
	if other != nil {
		extra = other.Len()
	}
	out := b.fam.alloc(b.st.Len() + extra)
	for v := range b.st.All() {
		out.Append(v)
	}
	if other != nil {
		for _, v := range other.All() {
			out.Append(v)
		}
	}

	return b.derive(out)
}
