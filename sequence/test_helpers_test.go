// SPDX-License-Identifier: MIT
// Package sequence_test contains shared fixtures for the contract tests.

package sequence_test

import (
	"github.com/katalvlaran/lvlseq/sequence"
)

// variant builds one concrete family from a slice.
type variant struct {
	name      string
	immutable bool
	make      func(items ...int) sequence.Sequence[int]
}

// variants lists every implementation the contract suite runs against.
func variants() []variant {
	return []variant{
		{name: "Array", make: func(items ...int) sequence.Sequence[int] { return sequence.NewArray(items...) }},
		{name: "List", make: func(items ...int) sequence.Sequence[int] { return sequence.NewList(items...) }},
		{name: "ImmutableArray", immutable: true, make: func(items ...int) sequence.Sequence[int] {
			return sequence.NewImmutableArray(items...)
		}},
		{name: "ImmutableList", immutable: true, make: func(items ...int) sequence.Sequence[int] {
			return sequence.NewImmutableList(items...)
		}},
	}
}

func isEven(x int) bool { return x%2 == 0 }

func double(x int) int { return x * 2 }

func subtract(a, b int) int { return a - b }

// values collects s into a slice; nil-safe for readability in assertions.
func values(s sequence.Sequence[int]) []int {
	if s == nil {
		return nil
	}
	return s.Values()
}
