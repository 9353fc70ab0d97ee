// SPDX-License-Identifier: MIT

package sequence

import "golang.org/x/exp/constraints"

// Number is the element constraint of the numeric helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum folds + over s starting from zero.
func Sum[T Number](s Sequence[T]) T {
	var zero T
	return s.Reduce(func(acc, v T) T { return acc + v }, zero)
}

// Product folds * over s starting from one. An empty s yields 1.
func Product[T Number](s Sequence[T]) T {
	return s.Reduce(func(acc, v T) T { return acc * v }, 1)
}
