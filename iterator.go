// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

import "iter"

// Cursor is a non-owning reference to a single occupied slot, returned
// by Find. A Cursor is valid only until the next mutating call on the
// Tree that produced it (spec.md §5); dereferencing a stale or end
// cursor is undefined by contract, not an error (spec.md §7).
type Cursor[K any, V any] struct {
	tree *Tree[K, V]
	idx  int
}

// Valid reports whether the cursor refers to an occupied slot.
func (c Cursor[K, V]) Valid() bool { return c.idx >= 0 }

// Key returns the key at the cursor's position.
func (c Cursor[K, V]) Key() K { return c.tree.slots[c.idx].key }

// Value returns the value at the cursor's position.
func (c Cursor[K, V]) Value() V { return c.tree.slots[c.idx].value }

// Iterator yields (key, value) pairs in ascending key order over the
// occupied slots of a Tree at the time Iterate was called. Like Cursor,
// an Iterator is invalidated by any subsequent mutation.
type Iterator[K any, V any] struct {
	tree *Tree[K, V]
	idx  int
}

// Iterate returns an Iterator positioned at the smallest key (not Valid
// if the tree is empty).
// Iteration never moves slots (spec.md §4.1).
func (t *Tree[K, V]) Iterate() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, idx: t.firstOccupied()}
}

// firstOccupied returns the index of the smallest occupied slot, or -1
// if the tree is empty.
func (t *Tree[K, V]) firstOccupied() int {
	if len(t.slots) == 0 || !t.slots[0].occupied {
		return -1
	}
	return t.treeSmallest(0)
}

// Valid reports whether the iterator is positioned at an occupied slot.
func (it *Iterator[K, V]) Valid() bool { return it.idx >= 0 }

// Key returns the key at the iterator's current position.
func (it *Iterator[K, V]) Key() K { return it.tree.slots[it.idx].key }

// Value returns the value at the iterator's current position.
func (it *Iterator[K, V]) Value() V { return it.tree.slots[it.idx].value }

// Next advances the iterator to the next key in ascending order.
func (it *Iterator[K, V]) Next() {
	it.idx = it.tree.treeSucc(it.idx)
}

// All returns a range-over-func sequence of (key, value) pairs in
// ascending key order, for callers on Go 1.23+ that prefer "for k, v :=
// range tree.All()" over the explicit Cursor/Iterator dance above.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := t.firstOccupied(); i >= 0; i = t.treeSucc(i) {
			if !yield(t.slots[i].key, t.slots[i].value) {
				return
			}
		}
	}
}
