// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional configuration for New, the variant-agnostic constructor.
//
// Defaults: contiguous storage, mutable, no capacity hint.
// WithX constructors panic on nonsensical values (programmer error); New
// itself never fails.

package sequence

import (
	"fmt"

	"github.com/katalvlaran/lvlseq/store"
)

// Storage selects the backing store of a sequence built by New.
type Storage int

const (
	// Contiguous backs the sequence with a growable array (Array, ImmutableArray).
	Contiguous Storage = iota
	// Linked backs the sequence with a singly-linked chain (List, ImmutableList).
	Linked
)

// String implements fmt.Stringer.
func (s Storage) String() string {
	switch s {
	case Contiguous:
		return "contiguous"
	case Linked:
		return "linked"
	default:
		return fmt.Sprintf("Storage(%d)", int(s))
	}
}

// ParseStorage maps "contiguous"/"array" and "linked"/"list" to a Storage.
// Unknown names return ErrInvalidArgument.
func ParseStorage(name string) (Storage, error) {
	switch name {
	case "contiguous", "array":
		return Contiguous, nil
	case "linked", "list":
		return Linked, nil
	default:
		return 0, fmt.Errorf("ParseStorage(%q): %w", name, ErrInvalidArgument)
	}
}

// config is the resolved option set for New.
type config struct {
	storage   Storage
	immutable bool
	capHint   int
}

// Option configures New.
type Option func(*config)

// WithStorage selects the backing store. Panics on an unknown Storage.
func WithStorage(s Storage) Option {
	if s != Contiguous && s != Linked {
		panic(fmt.Sprintf("sequence: WithStorage(%d): unknown storage", int(s)))
	}

	return func(c *config) { c.storage = s }
}

// WithImmutable makes New return a Persistent variant.
func WithImmutable() Option {
	return func(c *config) { c.immutable = true }
}

// WithCapacity pre-sizes contiguous storage for n elements. It has no effect
// on linked storage. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("sequence: WithCapacity(%d): negative capacity", n))
	}

	return func(c *config) { c.capHint = n }
}

// New returns a sequence holding a copy of items, of the variant chosen by opts.
// Callers program against the returned Sequence and never see the concrete type.
func New[T any](items []T, opts ...Option) Sequence[T] {
	cfg := config{storage: Contiguous}
	for _, opt := range opts {
		opt(&cfg)
	}

	var st store.Store[T]
	if cfg.storage == Linked {
		st = allocChain[T](0)
	} else {
		st = allocBuffer[T](max(cfg.capHint, len(items)))
	}
	for _, v := range items {
		st.Append(v)
	}

	switch {
	case cfg.storage == Linked && cfg.immutable:
		return newImmutableList(st)
	case cfg.storage == Linked:
		return newList(st)
	case cfg.immutable:
		return newImmutableArray(st)
	default:
		return newArray(st)
	}
}
