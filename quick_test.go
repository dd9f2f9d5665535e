// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

import (
	"slices"
	"sort"
	"testing"
	"testing/quick"
)

var quickConfig = &quick.Config{MaxCount: 500}

// TestQuickRoundTrip checks spec.md §8 invariant 5: for any permutation
// of a key set, inserting them in any order and then iterating yields
// the same ordered sequence.
func TestQuickRoundTrip(t *testing.T) {
	roundTrip := func(keys []int16) bool {
		seen := map[int16]bool{}
		var unique []int
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				unique = append(unique, int(k))
			}
		}

		tr, err := NewOrdered[int, int]()
		if err != nil {
			t.Fatal(err)
		}
		for _, k := range unique {
			tr.Insert(k, k)
		}
		if err := tr.CheckBalance(); err != nil {
			t.Logf("unbalanced after inserting %v: %v", unique, err)
			return false
		}

		var got []int
		for it := tr.Iterate(); it.Valid(); it.Next() {
			got = append(got, it.Key())
		}

		want := slices.Clone(unique)
		sort.Ints(want)
		return slices.Equal(got, want)
	}
	if err := quick.Check(roundTrip, quickConfig); err != nil {
		t.Error(err)
	}
}

// TestQuickCountMatchesIteration checks spec.md §8 invariant 2: the
// recorded count equals the number of occupied slots, which equals the
// length of an in-order traversal.
func TestQuickCountMatchesIteration(t *testing.T) {
	countMatches := func(keys []int16) bool {
		tr, err := NewOrdered[int, int]()
		if err != nil {
			t.Fatal(err)
		}
		seen := map[int16]bool{}
		for _, k := range keys {
			tr.Insert(int(k), int(k))
			seen[k] = true
		}

		n := 0
		for it := tr.Iterate(); it.Valid(); it.Next() {
			n++
		}
		return n == tr.Len() && n == len(seen)
	}
	if err := quick.Check(countMatches, quickConfig); err != nil {
		t.Error(err)
	}
}
