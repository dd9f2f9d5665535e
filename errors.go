// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

import "errors"

// ErrInvalidAlpha is returned by New when an Option supplies a balance
// threshold outside [1/2, 1].
var ErrInvalidAlpha = errors.New("sgtree: alpha must satisfy 1/2 <= alpha <= 1")

// ErrInvalidCapacity is returned by New when an Option supplies an initial
// capacity that is not of the form 2^h-1 (spec.md §3 invariant 4).
var ErrInvalidCapacity = errors.New("sgtree: initial capacity must be 0 or 2^h-1")

// ErrKeyNotFound is returned by operations that require an existing key
// (spec.md §7).
var ErrKeyNotFound = errors.New("sgtree: key not found")

// errNilComparator is an internal guard: New requires a non-nil comparator.
var errNilComparator = errors.New("comparator must not be nil")
