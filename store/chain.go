// SPDX-License-Identifier: MIT

package store

import "iter"

const kindChain = "Chain"

// node is a single link of a Chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// Chain is a singly-linked store. head and tail are both cached so Append
// and Prepend are O(1); positional access walks from head.
type Chain[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewChain returns an empty Chain.
func NewChain[T any]() *Chain[T] {
	return &Chain[T]{}
}

// NewChainFrom links the first n elements of items into a new Chain.
// Returns ErrInvalidSize if n < 0 or n > len(items).
// Complexity: O(n).
func NewChainFrom[T any](items []T, n int) (*Chain[T], error) {
	if err := checkRawSize(kindChain, len(items), n); err != nil {
		return nil, err
	}
	c := NewChain[T]()
	for _, v := range items[:n] {
		c.Append(v)
	}

	return c, nil
}

// nodeAt walks to the node at i. Caller guarantees 0 <= i < size.
func (c *Chain[T]) nodeAt(i int) *node[T] {
	if i == c.size-1 {
		return c.tail
	}
	n := c.head
	for ; i > 0; i-- {
		n = n.next
	}

	return n
}

// Get returns the element at i.
// Complexity: O(i), O(1) for the last element.
func (c *Chain[T]) Get(i int) (T, error) {
	if i < 0 || i >= c.size {
		var zero T
		return zero, storeErrorf(kindChain, "Get", ErrIndexOutOfRange, i)
	}

	return c.nodeAt(i).value, nil
}

// Set overwrites the element at i.
// Complexity: O(i).
func (c *Chain[T]) Set(i int, v T) error {
	if i < 0 || i >= c.size {
		return storeErrorf(kindChain, "Set", ErrIndexOutOfRange, i)
	}
	c.nodeAt(i).value = v

	return nil
}

// Append links v after the tail. O(1).
func (c *Chain[T]) Append(v T) {
	n := &node[T]{value: v}
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.next = n
	}
	c.tail = n
	c.size++
}

// Prepend links v before the head. O(1).
func (c *Chain[T]) Prepend(v T) {
	c.head = &node[T]{value: v, next: c.head}
	if c.tail == nil {
		c.tail = c.head
	}
	c.size++
}

// InsertAt splices v in so that it ends up at index i.
// Complexity: O(i); O(1) at either end.
func (c *Chain[T]) InsertAt(i int, v T) error {
	switch {
	case i < 0 || i > c.size:
		return storeErrorf(kindChain, "InsertAt", ErrIndexOutOfRange, i)
	case i == 0:
		c.Prepend(v)
	case i == c.size:
		c.Append(v)
	default:
		prev := c.nodeAt(i - 1)
		prev.next = &node[T]{value: v, next: prev.next}
		c.size++
	}

	return nil
}

// Len returns the number of linked elements.
func (c *Chain[T]) Len() int { return c.size }

// All yields the elements from head to tail.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := c.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Clone relinks every element into fresh nodes.
// Complexity: O(n).
func (c *Chain[T]) Clone() Store[T] {
	out := NewChain[T]()
	for n := c.head; n != nil; n = n.next {
		out.Append(n.value)
	}

	return out
}
