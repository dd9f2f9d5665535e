// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

// Tree mode: traversal that only ever steps onto occupied slots, following
// the logical BST shape rather than raw array structure (spec.md §4.3).
// This is distinct from physical/perfect mode in slot.go, which descend
// by pure index arithmetic regardless of occupancy.

func (t *Tree[K, V]) hasLeft(i int) bool {
	j := left(i)
	return j < len(t.slots) && t.slots[j].occupied
}

func (t *Tree[K, V]) hasRight(i int) bool {
	j := right(i)
	return j < len(t.slots) && t.slots[j].occupied
}

// treeSmallest returns the index of the smallest key in the subtree rooted
// at i, following only occupied slots.
func (t *Tree[K, V]) treeSmallest(i int) int {
	for t.hasLeft(i) {
		i = left(i)
	}
	return i
}

// treeLargest is the mirror of treeSmallest.
func (t *Tree[K, V]) treeLargest(i int) int {
	for t.hasRight(i) {
		i = right(i)
	}
	return i
}

// treeSucc returns the in-order successor of i among occupied slots, or -1
// if i holds the largest key in the tree.
func (t *Tree[K, V]) treeSucc(i int) int {
	if t.hasRight(i) {
		return t.treeSmallest(right(i))
	}
	j := i
	p := parent(j)
	for p >= 0 && t.slots[p].occupied && j != left(p) {
		j = p
		p = parent(j)
	}
	if p < 0 || !t.slots[p].occupied {
		return -1
	}
	return p
}

// treePred is the mirror of treeSucc.
func (t *Tree[K, V]) treePred(i int) int {
	if t.hasLeft(i) {
		return t.treeLargest(left(i))
	}
	j := i
	p := parent(j)
	for p >= 0 && t.slots[p].occupied && j != right(p) {
		j = p
		p = parent(j)
	}
	if p < 0 || !t.slots[p].occupied {
		return -1
	}
	return p
}

// weight returns the number of occupied slots in the subtree rooted at i
// (spec.md §4.5), counted by direct recursive descent over occupied slots
// only — the "terrible" O(weight) primitive the scapegoat check is built on.
func (t *Tree[K, V]) weight(i int) int {
	if i < 0 || i >= len(t.slots) || !t.slots[i].occupied {
		return 0
	}
	return 1 + t.weight(left(i)) + t.weight(right(i))
}
