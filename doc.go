// Package lvlseq is a small library of generic ordered sequences: one
// contract, two storages, two mutability models, and the usual functional
// combinators on top.
//
// What is in the box?
//
//	option/   — Option[T], the presence/absence wrapper used by TryGet and Find
//	store/    — Buffer (contiguous, growable) and Chain (singly-linked, tail-cached)
//	sequence/ — the Sequence[T] contract and its four variants:
//	            Array, List (mutable), ImmutableArray, ImmutableList (persistent),
//	            plus Zip/Unzip, MapTo, Equal, Sum/Product and the New factory
//
// Why lvlseq?
//
//   - Program against Sequence[T]; pick storage and mutability at construction.
//   - Map, Where, Reduce, FlatMap, Find, Split, Slice behave identically on every variant.
//   - Every derived sequence is a fresh value; immutable receivers are never touched.
//   - Errors are sentinels matched with errors.Is; nothing panics on caller input.
//
// Quick example:
//
//	s := sequence.NewList(1, 2, 3, 4, 5)
//	out, _ := s.Slice(1, 2, sequence.NewArray(10, 20)) // [1 10 20 4 5]
//
//	go get github.com/katalvlaran/lvlseq
package lvlseq
