// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

// locate descends from the root comparing against k, returning the
// index of the occupied slot holding k, or the index of the first hole
// encountered (the insertion site). If the descent runs off the end of
// the backing array, idx comes back >= len(t.slots); callers must grow
// before using it as a slot index (spec.md §4.2, §4.4).
func (t *Tree[K, V]) locate(k K) (idx int, found bool) {
	i := 0
	for i < len(t.slots) && t.slots[i].occupied {
		switch c := t.less(k, t.slots[i].key); {
		case c < 0:
			i = left(i)
		case c > 0:
			i = right(i)
		default:
			return i, true
		}
	}
	return i, false
}

// grow doubles the backing array's capacity, preserving the 2^h-1 shape
// (spec.md §4.4). Existing slots keep their indices; new slots are
// holes.
func (t *Tree[K, V]) grow() {
	newSlots := make([]slot[K, V], 2*len(t.slots)+1)
	copy(newSlots, t.slots)
	t.slots = newSlots
	if t.stats != nil {
		t.stats.observeGrowth(len(t.slots))
	}
}

// Find returns a cursor at k, or an end cursor if k is absent
// (spec.md §4.1). Find never moves slots.
func (t *Tree[K, V]) Find(k K) Cursor[K, V] {
	if idx, found := t.locate(k); found {
		return Cursor[K, V]{tree: t, idx: idx}
	}
	return Cursor[K, V]{tree: t, idx: -1}
}

// Get is a convenience alternative to Find for callers that prefer an
// error-returning lookup over an explicit end-cursor check; on a miss it
// returns ErrKeyNotFound itself rather than introducing a second miss
// signal.
func (t *Tree[K, V]) Get(k K) (V, error) {
	c := t.Find(k)
	if !c.Valid() {
		var zero V
		return zero, ErrKeyNotFound
	}
	return c.Value(), nil
}

// Insert inserts k/v, or overwrites the value at k if it is already
// present. Count increases by exactly 1 for a new key, by 0 on an
// overwrite (spec.md §4.1, §9).
func (t *Tree[K, V]) Insert(k K, v V) {
	t.insert(k, v)
}

// insert is Insert's implementation, returning the final index holding
// k (which a rebuild may have relocated).
func (t *Tree[K, V]) insert(k K, v V) int {
	for {
		idx, found := t.locate(k)
		if found {
			t.slots[idx].value = v
			return idx
		}
		if idx >= len(t.slots) {
			t.grow()
			continue
		}
		return t.insertAt(idx, k, v)
	}
}

// insertAt places a new key at a known hole site, triggering a
// scapegoat rebuild if the insert would unbalance an ancestor
// (spec.md §4.3, §4.5).
func (t *Tree[K, V]) insertAt(site int, k K, v V) int {
	g, ok := t.findScapegoat(site)
	t.size++
	if !ok {
		t.slots[site] = slot[K, V]{occupied: true, key: k, value: v}
		return site
	}
	return t.rebuild(g.root, g.weight, g.height, k, v)
}

// GetOrDefault returns a pointer to the value at k, inserting a
// zero-valued entry first if k is absent (spec.md §4.1). The pointer is
// only valid until the next mutating call on the tree.
func (t *Tree[K, V]) GetOrDefault(k K) *V {
	idx, found := t.locate(k)
	if found {
		return &t.slots[idx].value
	}
	for idx >= len(t.slots) {
		t.grow()
		idx, found = t.locate(k)
		if found {
			return &t.slots[idx].value
		}
	}
	var zero V
	final := t.insertAt(idx, k, zero)
	return &t.slots[final].value
}

// Erase removes k if present, returning whether it was found. Count
// decreases by exactly 1 on a hit, 0 on a miss. Erase never triggers
// rebalancing (spec.md §4.2, §9).
func (t *Tree[K, V]) Erase(k K) bool {
	idx, found := t.locate(k)
	if !found {
		return false
	}
	cur := idx
	for {
		if t.hasRight(cur) {
			succ := t.treeSmallest(right(cur))
			t.slots[cur].key, t.slots[cur].value = t.slots[succ].key, t.slots[succ].value
			cur = succ
			continue
		}
		if t.hasLeft(cur) {
			pred := t.treeLargest(left(cur))
			t.slots[cur].key, t.slots[cur].value = t.slots[pred].key, t.slots[pred].value
			cur = pred
			continue
		}
		t.slots[cur] = slot[K, V]{}
		break
	}
	t.size--
	return true
}
