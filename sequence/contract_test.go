// SPDX-License-Identifier: MIT
// Package sequence_test runs the shared Sequence contract against all four variants.
//
// Purpose:
//   - Lock in identical observable behavior for Array, List, ImmutableArray, ImmutableList.
//   - Assert the family of every derived sequence and the untouched receiver.

package sequence_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlseq/sequence"
)

// ContractSuite holds one variant under test.
type ContractSuite struct {
	suite.Suite
	v variant
}

func (s *ContractSuite) seq(items ...int) sequence.Sequence[int] {
	return s.v.make(items...)
}

// requireSameFamily asserts derived has the same concrete type as src.
func (s *ContractSuite) requireSameFamily(src, derived sequence.Sequence[int]) {
	require.Equal(s.T(), fmt.Sprintf("%T", src), fmt.Sprintf("%T", derived), "derived sequence must keep the receiver's variant")
}

// TestGet covers in-range reads and both out-of-range sides.
func (s *ContractSuite) TestGet() {
	t := s.T()
	sq := s.seq(1, 2, 3)
	require.Equal(t, 3, sq.Len())
	for i, want := range []int{1, 2, 3} {
		got, err := sq.Get(i)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := sq.Get(3)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
	_, err = sq.Get(-1)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
}

// TestTryGetMatchesGet checks TryGet(i).IsSome() == (0 <= i < n) and value agreement.
func (s *ContractSuite) TestTryGetMatchesGet() {
	t := s.T()
	sq := s.seq(10, 20, 30, 40)
	for i := -2; i <= sq.Len()+1; i++ {
		o := sq.TryGet(i)
		require.Equal(t, i >= 0 && i < sq.Len(), o.IsSome(), "TryGet(%d)", i)
		if o.IsSome() {
			got, err := sq.Get(i)
			require.NoError(t, err)
			v, err := o.Value()
			require.NoError(t, err)
			require.Equal(t, got, v)
		}
	}
}

// TestFirstLast covers populated and empty sequences.
func (s *ContractSuite) TestFirstLast() {
	t := s.T()
	sq := s.seq(1, 2, 3)
	first, err := sq.GetFirst()
	require.NoError(t, err)
	require.Equal(t, 1, first)
	last, err := sq.GetLast()
	require.NoError(t, err)
	require.Equal(t, 3, last)
	require.Equal(t, 1, sq.TryGetFirst().Or(-1))
	require.Equal(t, 3, sq.TryGetLast().Or(-1))

	empty := s.seq()
	require.Equal(t, 0, empty.Len())
	_, err = empty.Get(0)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
	_, err = empty.GetFirst()
	require.ErrorIs(t, err, sequence.ErrEmptySequence)
	_, err = empty.GetLast()
	require.ErrorIs(t, err, sequence.ErrEmptySequence)
	require.True(t, empty.TryGet(0).IsNone())
	require.True(t, empty.TryGetFirst().IsNone())
	require.True(t, empty.TryGetLast().IsNone())
}

// TestGetSubsequence covers inclusive bounds and every failing edge.
func (s *ContractSuite) TestGetSubsequence() {
	t := s.T()
	sq := s.seq(1, 2, 3, 4, 5)
	sub, err := sq.GetSubsequence(1, 3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, values(sub))
	s.requireSameFamily(sq, sub)

	single, err := sq.GetSubsequence(4, 4)
	require.NoError(t, err)
	require.Equal(t, []int{5}, values(single))

	for _, bad := range [][2]int{{-1, 2}, {3, 2}, {0, 5}} {
		_, err = sq.GetSubsequence(bad[0], bad[1])
		require.ErrorIs(t, err, sequence.ErrIndexOutOfRange, "GetSubsequence(%d,%d)", bad[0], bad[1])
	}
	require.Equal(t, []int{1, 2, 3, 4, 5}, values(sq), "receiver unchanged")
}

// TestMap preserves length and applies f per index.
func (s *ContractSuite) TestMap() {
	t := s.T()
	sq := s.seq(-2, -1, 0, 1, 2)
	mapped := sq.Map(double)
	require.Equal(t, sq.Len(), mapped.Len())
	for i := 0; i < sq.Len(); i++ {
		src, _ := sq.Get(i)
		got, _ := mapped.Get(i)
		require.Equal(t, double(src), got)
	}
	s.requireSameFamily(sq, mapped)
	require.Equal(t, []int{-2, -1, 0, 1, 2}, values(sq))
	require.Equal(t, 0, s.seq().Map(double).Len())
}

// TestWhere keeps survivors in order.
func (s *ContractSuite) TestWhere() {
	t := s.T()
	sq := s.seq(5, 2, 8, 3, 6, 1)
	evens := sq.Where(isEven)
	require.Equal(t, []int{2, 8, 6}, values(evens))
	require.LessOrEqual(t, evens.Len(), sq.Len())
	s.requireSameFamily(sq, evens)

	negatives := s.seq(-2, -1, 0, 1, 2).Where(func(x int) bool { return x < 0 })
	require.Equal(t, []int{-2, -1}, values(negatives))
	require.Equal(t, 0, sq.Where(func(int) bool { return false }).Len())
}

// TestReduce is a left fold; empty returns initial.
func (s *ContractSuite) TestReduce() {
	t := s.T()
	sq := s.seq(-2, -1, 0, 1, 2)
	require.Equal(t, 0-(-2)-(-1)-0-1-2, sq.Reduce(subtract, 0))
	require.Equal(t, 6, s.seq(1, 2, 3).Reduce(func(a, b int) int { return a + b }, 0))
	require.Equal(t, 42, s.seq().Reduce(subtract, 42), "empty must return initial")
}

// TestFlatMap concatenates per-element results, including empty and nil ones.
func (s *ContractSuite) TestFlatMap() {
	t := s.T()
	sq := s.seq(1, 2, 3)
	out := sq.FlatMap(func(x int) sequence.Sequence[int] {
		return sequence.NewArray(x, x*10)
	})
	require.Equal(t, []int{1, 10, 2, 20, 3, 30}, values(out))
	s.requireSameFamily(sq, out)

	repeat := sq.FlatMap(func(x int) sequence.Sequence[int] {
		l := sequence.NewList[int]()
		for i := 0; i < x; i++ {
			_ = l.Append(x)
		}
		return l
	})
	require.Equal(t, []int{1, 2, 2, 3, 3, 3}, values(repeat))

	none := sq.FlatMap(func(int) sequence.Sequence[int] { return sequence.NewArray[int]() })
	require.Equal(t, 0, none.Len())

	skipNil := sq.FlatMap(func(x int) sequence.Sequence[int] {
		if x == 2 {
			return nil
		}
		return sequence.NewArray(x)
	})
	require.Equal(t, []int{1, 3}, values(skipNil))
}

// TestFind returns the first hit in index order.
func (s *ContractSuite) TestFind() {
	t := s.T()
	v, err := s.seq(1, 3, 4, 6).Find(isEven).Value()
	require.NoError(t, err)
	require.Equal(t, 4, v)

	require.True(t, s.seq(1, 3, 5).Find(isEven).IsNone())
	require.True(t, s.seq().Find(isEven).IsNone())
}

// TestSplit is an exhaustive, stable partition.
func (s *ContractSuite) TestSplit() {
	t := s.T()
	sq := s.seq(1, 2, 3, 4, 5, 6, 7)
	even, odd := sq.Split(isEven)
	require.Equal(t, []int{2, 4, 6}, values(even))
	require.Equal(t, []int{1, 3, 5, 7}, values(odd))
	require.Equal(t, sq.Len(), even.Len()+odd.Len())
	s.requireSameFamily(sq, even)
	s.requireSameFamily(sq, odd)

	calls := 0
	_, _ = sq.Split(func(x int) bool { calls++; return x > 3 })
	require.Equal(t, sq.Len(), calls, "predicate must run once per element")

	all, none := s.seq(2, 4, 6).Split(isEven)
	require.Equal(t, 3, all.Len())
	require.Equal(t, 0, none.Len())

	e1, e2 := s.seq().Split(isEven)
	require.NotNil(t, e1)
	require.NotNil(t, e2)
	require.Equal(t, 0, e1.Len()+e2.Len())
}

// TestSlice covers removal, negative start, clamping, replacement and errors.
func (s *ContractSuite) TestSlice() {
	t := s.T()
	sq := s.seq(1, 2, 3, 4, 5)

	cases := []struct {
		name        string
		start       int
		count       int
		replacement sequence.Sequence[int]
		want        []int
	}{
		{"remove two at 1", 1, 2, nil, []int{1, 4, 5}},
		{"negative start", -2, 1, nil, []int{1, 2, 3, 5}},
		{"negative start last", -1, 1, nil, []int{1, 2, 3, 4}},
		{"count clamped", 3, 10, nil, []int{1, 2, 3}},
		{"zero count copies", 0, 0, nil, []int{1, 2, 3, 4, 5}},
		{"replace two at 1", 1, 2, sequence.NewArray(10, 20), []int{1, 10, 20, 4, 5}},
		{"replacement from list", 1, 2, sequence.NewList(10, 20), []int{1, 10, 20, 4, 5}},
		{"insert without removal", 0, 0, sequence.NewArray(0), []int{0, 1, 2, 3, 4, 5}},
		{"replace tail longer", 4, 1, sequence.NewArray(7, 8, 9), []int{1, 2, 3, 4, 7, 8, 9}},
		{"empty replacement", 1, 1, sequence.NewArray[int](), []int{1, 3, 4, 5}},
	}
	for _, tc := range cases {
		got, err := sq.Slice(tc.start, tc.count, tc.replacement)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, values(got), tc.name)
		s.requireSameFamily(sq, got)
	}

	_, err := sq.Slice(10, 1, nil)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
	_, err = sq.Slice(5, 1, nil)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange, "start == n is outside [0,n)")
	_, err = sq.Slice(-10, 1, nil)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
	_, err = sq.Slice(0, -1, nil)
	require.ErrorIs(t, err, sequence.ErrInvalidSize)
	_, err = s.seq().Slice(0, 0, nil)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)

	require.Equal(t, []int{1, 2, 3, 4, 5}, values(sq), "receiver unchanged")
}

// TestSliceWithSelfReplacement splices the receiver into itself.
func (s *ContractSuite) TestSliceWithSelfReplacement() {
	sq := s.seq(1, 2, 3)
	got, err := sq.Slice(1, 1, sq)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{1, 1, 2, 3, 3}, values(got))
	require.Equal(s.T(), []int{1, 2, 3}, values(sq))
}

// TestConcat appends other's elements after the receiver's.
func (s *ContractSuite) TestConcat() {
	t := s.T()
	sq := s.seq(1, 2)
	out := sq.Concat(sequence.NewList(3, 4))
	require.Equal(t, []int{1, 2, 3, 4}, values(out))
	s.requireSameFamily(sq, out)
	require.Equal(t, []int{1, 2}, values(sq.Concat(nil)))
	require.Equal(t, 2, sq.Len())
}

// TestAllAndString checks iteration order, early stop and rendering.
func (s *ContractSuite) TestAllAndString() {
	t := s.T()
	sq := s.seq(7, 8, 9)
	var idx, got []int
	for i, v := range sq.All() {
		if i == 2 {
			break
		}
		idx = append(idx, i)
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1}, idx)
	require.Equal(t, []int{7, 8}, got)
	require.Equal(t, "[7 8 9]", sq.String())
	require.Equal(t, "[]", s.seq().String())
}

// TestValuesIsCopy ensures Values never exposes the backing store.
func (s *ContractSuite) TestValuesIsCopy() {
	sq := s.seq(1, 2, 3)
	vs := sq.Values()
	vs[0] = 100
	first, err := sq.GetFirst()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, first)
}

// TestConstructorCopiesInput ensures the caller's slice is not aliased.
func (s *ContractSuite) TestConstructorCopiesInput() {
	data := []int{1, 2, 3}
	sq := s.v.make(data...)
	data[0] = 100
	first, err := sq.GetFirst()
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, first)
}

// TestMutators checks the mutable/immutable divergence of Append/Prepend/InsertAt.
func (s *ContractSuite) TestMutators() {
	t := s.T()
	sq := s.seq(1, 2, 3)
	if s.v.immutable {
		require.ErrorIs(t, sq.Append(4), sequence.ErrInvalidOperation)
		require.ErrorIs(t, sq.Prepend(0), sequence.ErrInvalidOperation)
		require.ErrorIs(t, sq.InsertAt(9, 1), sequence.ErrInvalidOperation)
		require.Equal(t, []int{1, 2, 3}, values(sq), "immutable receiver unchanged")
		return
	}

	require.NoError(t, sq.Append(4))
	require.NoError(t, sq.Prepend(0))
	require.NoError(t, sq.InsertAt(9, 2))
	require.Equal(t, []int{0, 1, 9, 2, 3, 4}, values(sq))
	require.ErrorIs(t, sq.InsertAt(5, 7), sequence.ErrIndexOutOfRange)
	require.ErrorIs(t, sq.InsertAt(5, -1), sequence.ErrIndexOutOfRange)
	require.Equal(t, 6, sq.Len(), "failed insert must not change length")
	require.NoError(t, sq.InsertAt(5, sq.Len()), "index == n appends")
	last, err := sq.GetLast()
	require.NoError(t, err)
	require.Equal(t, 5, last)
}

// TestMutableFromEmpty replays the original edge-case sequence on an empty value.
func (s *ContractSuite) TestMutableFromEmpty() {
	if s.v.immutable {
		s.T().Skip("mutators rejected on immutable variants")
	}
	t := s.T()
	sq := s.seq()
	require.NoError(t, sq.Append(1))
	_, err := sq.Get(-1)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
	_, err = sq.Get(1)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
	require.ErrorIs(t, sq.InsertAt(2, 2), sequence.ErrIndexOutOfRange)
	require.NoError(t, sq.Prepend(0))
	require.NoError(t, sq.InsertAt(2, 1))
	require.Equal(t, []int{0, 2, 1}, values(sq))
}

// TestSequenceContract runs ContractSuite once per variant.
func TestSequenceContract(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			suite.Run(t, &ContractSuite{v: v})
		})
	}
}
