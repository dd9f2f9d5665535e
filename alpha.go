// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

// Alpha is the scapegoat balance threshold, expressed as an exact
// rational Num/Den so that the unbalance check (§4.5) never needs
// floating point. Valid range is [1/2, 1]; the baseline is AlphaHalf,
// which makes the in-place rebuild region exactly match the packed
// perfect tree (spec.md §4.5).
//
// This mirrors the original implementation's std::ratio<Num,Den>
// non-type template parameter (original_source/trees/compact_sgtree.hpp),
// translated to a value since Go generics cannot be parametrized by a
// rational constant the way C++ template value-parameters can.
type Alpha struct {
	Num, Den int
}

// The five presets the original implementation instantiated
// (compact_sgtree12/58/34/78/11).
var (
	AlphaHalf          = Alpha{1, 2}
	AlphaFiveEighths   = Alpha{5, 8}
	AlphaThreeQuarters = Alpha{3, 4}
	AlphaSevenEighths  = Alpha{7, 8}
	AlphaOne           = Alpha{1, 1}
)

func (a Alpha) valid() bool {
	return a.Den > 0 && a.Num*2 >= a.Den && a.Num <= a.Den
}

// exceeds reports whether weight/total exceeds this alpha, i.e. whether
// weight*Den > Num*total, computed without floating point.
func (a Alpha) exceeds(weight, total int) bool {
	return weight*a.Den > a.Num*total
}
