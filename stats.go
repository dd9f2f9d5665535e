// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

import (
	"expvar"
	"fmt"
	"strings"
)

// Stats is an optional instrumentation recorder, attached with
// WithStats, that observes rebuilds and growths over a Tree's lifetime.
// Modeled on the teacher's ExpVarMetrics (metrics.go): the same stdlib
// expvar approach, scoped down to the handful of counters this
// container can usefully report.
type Stats struct {
	RebuildsVar    *expvar.Int
	MaxWeightVar   *expvar.Int
	GrowthsVar     *expvar.Int
	MaxCapacityVar *expvar.Int
}

// NewStats constructs a Stats recorder. If publish is true, its
// counters are registered under the expvar package's global handler
// (visible at /debug/vars); otherwise they are private to the returned
// value.
func NewStats(publish bool, name string) *Stats {
	newInt := func(suffix string) *expvar.Int {
		if publish {
			return expvar.NewInt(name + "_" + suffix)
		}
		return new(expvar.Int)
	}
	return &Stats{
		RebuildsVar:    newInt("rebuilds"),
		MaxWeightVar:   newInt("max_weight"),
		GrowthsVar:     newInt("growths"),
		MaxCapacityVar: newInt("max_capacity"),
	}
}

func (s *Stats) observeRebuild(weight int) {
	s.RebuildsVar.Add(1)
	if int64(weight) > s.MaxWeightVar.Value() {
		s.MaxWeightVar.Set(int64(weight))
	}
}

func (s *Stats) observeGrowth(capacity int) {
	s.GrowthsVar.Add(1)
	if int64(capacity) > s.MaxCapacityVar.Value() {
		s.MaxCapacityVar.Set(int64(capacity))
	}
}

// String renders the counters one per line as "name: value".
func (s *Stats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rebuilds: %s\n", s.RebuildsVar.String())
	fmt.Fprintf(&b, "max_weight: %s\n", s.MaxWeightVar.String())
	fmt.Fprintf(&b, "growths: %s\n", s.GrowthsVar.String())
	fmt.Fprintf(&b, "max_capacity: %s\n", s.MaxCapacityVar.String())
	return b.String()
}
