// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

import (
	"cmp"
	"fmt"
)

// CompareFunc reports the strict-weak order between a and b: negative if
// a < b, positive if a > b, zero if they are equivalent.
type CompareFunc[K any] func(a, b K) int

// Tree is an ordered key/value container backed by an array in Eytzinger
// layout and rebalanced by the scapegoat discipline (spec.md §1-§3).
// The zero value is not usable; construct with New.
//
// A Tree is not safe for concurrent use: it is a single-threaded, in-process
// container (spec.md §5).
type Tree[K any, V any] struct {
	slots []slot[K, V]
	size  int
	less  CompareFunc[K]
	alpha Alpha
	stats *Stats
}

// Option configures a Tree at construction time.
type Option[K any, V any] func(*Tree[K, V]) error

// WithComparator supplies a custom strict-weak ordering on K, replacing the
// comparator passed to New (or cmp.Compare, for NewOrdered).
func WithComparator[K any, V any](cmp CompareFunc[K]) Option[K, V] {
	return func(t *Tree[K, V]) error {
		t.less = cmp
		return nil
	}
}

// WithAlpha sets the scapegoat balance threshold (spec.md §4.5, §6).
// The baseline AlphaHalf is used if this option is not given.
func WithAlpha[K any, V any](alpha Alpha) Option[K, V] {
	return func(t *Tree[K, V]) error {
		if !alpha.valid() {
			return ErrInvalidAlpha
		}
		t.alpha = alpha
		return nil
	}
}

// WithCapacity preallocates the backing array to the given capacity, which
// must be 0 or of the form 2^h-1 (spec.md §3 invariant 4, §6).
func WithCapacity[K any, V any](capacity int) Option[K, V] {
	return func(t *Tree[K, V]) error {
		if capacity != 0 && capacityForHeight(heightForCapacity(capacity)) != capacity {
			return ErrInvalidCapacity
		}
		if capacity > 0 {
			t.slots = make([]slot[K, V], capacity)
		}
		return nil
	}
}

// WithStats attaches an instrumentation recorder (see stats.go) that
// observes rebuilds and growths.
func WithStats[K any, V any](s *Stats) Option[K, V] {
	return func(t *Tree[K, V]) error {
		t.stats = s
		return nil
	}
}

// New constructs an empty Tree with a custom comparator. Most callers with
// an ordered key type should use NewOrdered instead.
func New[K any, V any](cmp CompareFunc[K], opts ...Option[K, V]) (*Tree[K, V], error) {
	t := &Tree[K, V]{
		less:  cmp,
		alpha: AlphaHalf,
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("sgtree: new: %w", err)
		}
	}
	if t.less == nil {
		return nil, fmt.Errorf("sgtree: new: %w", errNilComparator)
	}
	return t, nil
}

// NewOrdered constructs an empty Tree for a key type with a natural
// ordering, using cmp.Compare as the comparator.
func NewOrdered[K cmp.Ordered, V any](opts ...Option[K, V]) (*Tree[K, V], error) {
	return New[K, V](cmp.Compare[K], opts...)
}

// Len returns the number of occupied entries.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// Alpha returns the balance threshold this Tree was configured with.
func (t *Tree[K, V]) Alpha() Alpha {
	return t.alpha
}

// Cap returns the current physical capacity of the backing array.
func (t *Tree[K, V]) Cap() int {
	return len(t.slots)
}
