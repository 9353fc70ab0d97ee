// SPDX-License-Identifier: MIT

package option

import "fmt"

// Option holds either exactly one value of type T or nothing.
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.ok }

// Value returns the held value, or the zero T and ErrInvalidArgument when o is empty.
// Complexity: O(1).
func (o Option[T]) Value() (T, error) {
	if !o.ok {
		var zero T
		return zero, ErrInvalidArgument
	}

	return o.value, nil
}

// Get returns the held value and whether it was present (comma-ok form).
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Or returns the held value, or fallback when o is empty.
func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}

// String implements fmt.Stringer: "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
