// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	fuzzKeyRange  = 1000
	fuzzNumOps    = 1000
	fuzzNumRounds = 5
)

// TestFixedSeedRandomWorkload is the single-threaded adaptation of the
// teacher's fuzz_test.go multi-worker stress harness: spec.md §8
// scenario 4's fixed-seed mix of insert/erase/lookup, checking BST
// ordering, count, and alpha-balance after every mutating operation.
func TestFixedSeedRandomWorkload(t *testing.T) {
	for round := 0; round < fuzzNumRounds; round++ {
		seed := int64(round + 1)
		t.Run("", func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed))
			tr, err := NewOrdered[int, int]()
			require.NoError(t, err)

			shadow := map[int]int{}
			for i := 0; i < fuzzNumOps; i++ {
				key := rng.Intn(fuzzKeyRange)
				switch rng.Intn(3) {
				case 0: // insert
					tr.Insert(key, key)
					shadow[key] = key
				case 1: // erase
					delete(shadow, key)
					tr.Erase(key)
				case 2: // lookup
					c := tr.Find(key)
					v, ok := shadow[key]
					require.Equal(t, ok, c.Valid(), "lookup mismatch for key %d at op %d", key, i)
					if ok {
						require.Equal(t, v, c.Value())
					}
					continue
				}

				require.NoError(t, tr.CheckBalance(), "unbalanced after op %d (seed %d)", i, seed)
				require.Equal(t, len(shadow), tr.Len(), "count mismatch after op %d (seed %d)", i, seed)

				var prev int
				first := true
				for it := tr.Iterate(); it.Valid(); it.Next() {
					if !first {
						require.Less(t, prev, it.Key(), "ordering violated after op %d (seed %d)", i, seed)
					}
					prev = it.Key()
					first = false
				}
			}
		})
	}
}
