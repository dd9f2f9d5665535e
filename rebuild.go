// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

// regionTreePred is treePred restricted to not ascend above root: the
// in-order predecessor of i among occupied slots, bounded to the
// subtree rooted at root. Used by phase A of rebuild (below), which
// walks the tree-mode cursor backward without ever leaving the
// scapegoat's own subtree. Ancestors already passed by phase A may
// have become holes, so ascent does not stop at unoccupied slots.
func (t *Tree[K, V]) regionTreePred(root, i int) int {
	if t.hasLeft(i) {
		return t.treeLargest(left(i))
	}
	j := i
	p := parent(j)
	for p >= root && j != right(p) {
		j = p
		p = parent(j)
	}
	if p < root {
		return -1
	}
	return p
}

// rebuild performs the in-place scapegoat rebuild of spec.md §4.3. The
// subtree rooted at g currently holds w-1 occupied slots (plus holes)
// within a physical region of at least capacityForHeight(h) array slots
// (widened below when the subtree reaches deeper than h levels); rebuild
// transforms that region into the unique perfectly balanced BST on
// those w-1 keys plus the new key k/v, using O(1) auxiliary entry
// storage. It returns the index where k now resides.
//
// Phase A packs the existing keys into a contiguous suffix of the
// physical region (largest key first, so the suffix ends up ascending).
// Phase B sweeps that suffix forward while walking a perfect-mode
// cursor over the w-sized ideal tree, inserting k where the comparator
// says it belongs. Packing first is what makes the in-place move
// correct: a single pass would read and write overlapping slots in an
// unpredictable order, since perfect-tree destinations and tree/physical
// sources interleave in the Eytzinger numbering.
func (t *Tree[K, V]) rebuild(g, w, h int, k K, v V) int {
	if t.stats != nil {
		t.stats.observeRebuild(w)
	}

	if w == 1 {
		t.slots[g] = slot[K, V]{occupied: true, key: k, value: v}
		return g
	}

	// Widen the region until it covers every occupied slot of g's
	// subtree, which may sit deeper than the h levels w alone needs.
	for {
		lo, deeper := g<<uint(h)+1<<uint(h)-1, false
		for i := lo; i < lo+1<<uint(h) && i < len(t.slots); i++ {
			deeper = deeper || t.slots[i].occupied
		}
		if !deeper {
			break
		}
		h++
	}
	regionBound := physicalBound(g, capacityForHeight(h))
	perfectBound := physicalBound(g, w)

	// Phase A: pack to a contiguous suffix, largest key first.
	tc := t.treeLargest(g)
	pc := boundedLargest(regionBound, g)
	for step := 0; step < w-1; step++ {
		t.slots[tc], t.slots[pc] = t.slots[pc], t.slots[tc]
		if step < w-2 {
			tc = t.regionTreePred(g, tc)
			pc = boundedPred(g, regionBound, pc)
		}
	}
	suffixStart := pc

	// Phase B: distribute into the perfect arrangement, inserting k.
	p := boundedSmallest(perfectBound, g)
	src := suffixStart
	placed := 0
	for placed < w-1 && t.less(t.slots[src].key, k) < 0 {
		t.slots[p], t.slots[src] = t.slots[src], t.slots[p]
		p = boundedSucc(g, perfectBound, p)
		src = boundedSucc(g, regionBound, src)
		placed++
	}
	result := p
	t.slots[p] = slot[K, V]{occupied: true, key: k, value: v}
	p = boundedSucc(g, perfectBound, p)
	for placed < w-1 {
		t.slots[p], t.slots[src] = t.slots[src], t.slots[p]
		p = boundedSucc(g, perfectBound, p)
		src = boundedSucc(g, regionBound, src)
		placed++
	}
	return result
}
