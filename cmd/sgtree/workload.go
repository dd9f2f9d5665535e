// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/spf13/pflag"
	"golang.org/x/time/rate"

	"github.com/geky/sgtree"
)

// WorkloadConfig describes a randomized mixed insert/erase/find
// workload, the spec.md §8 scenario-4 random-workload harness turned
// into a reusable shape so "bench" and "load" can share one runner.
type WorkloadConfig struct {
	Seed       int64   `yaml:"seed"`
	KeyRange   int     `yaml:"keyRange"`
	Ops        int     `yaml:"ops"`
	RatePerSec float64 `yaml:"ratePerSec"`
}

// Flags registers cfg's fields onto a pflag.FlagSet, the same shape as
// the teacher's own Config.Flags (reconciler/example/types.go), so
// "bench" can populate a WorkloadConfig straight from cobra's flag set
// instead of threading each field through individually.
func (cfg *WorkloadConfig) Flags(flags *pflag.FlagSet) {
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "PRNG seed")
	flags.IntVar(&cfg.KeyRange, "keys", cfg.KeyRange, "key range [0, keys)")
	flags.IntVar(&cfg.Ops, "ops", cfg.Ops, "number of operations")
	flags.Float64Var(&cfg.RatePerSec, "rate", cfg.RatePerSec, "operations per second (0 = unthrottled)")
}

// WorkloadSummary reports what a run observed.
type WorkloadSummary struct {
	Inserts, Erases, Finds int
	FinalLen               int
	MaxDepth               int
}

// RunWorkload drives a Tree[int,int] through cfg.Ops uniformly chosen
// insert/erase/find operations on keys in [0, cfg.KeyRange), checking
// the alpha-balance invariant after every mutation (spec.md §8 scenario
// 4). If cfg.RatePerSec is positive, operations are throttled with
// golang.org/x/time/rate the way the teacher throttles its reconciler
// benchmark (reconciler/benchmark/main.go).
func RunWorkload(ctx context.Context, logger *slog.Logger, cfg WorkloadConfig) (WorkloadSummary, error) {
	tree, err := sgtree.NewOrdered[int, int]()
	if err != nil {
		return WorkloadSummary{}, err
	}

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var summary WorkloadSummary
	for i := 0; i < cfg.Ops; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return summary, fmt.Errorf("sgtree workload: %w", err)
			}
		}
		key := rng.Intn(cfg.KeyRange)
		switch rng.Intn(3) {
		case 0:
			tree.Insert(key, key)
			summary.Inserts++
		case 1:
			tree.Erase(key)
			summary.Erases++
		case 2:
			tree.Find(key)
			summary.Finds++
			continue // lookups never mutate, nothing to re-check
		}
		if err := tree.CheckBalance(); err != nil {
			return summary, fmt.Errorf("sgtree workload: after op %d: %w", i, err)
		}
		logger.Debug("workload op", "i", i, "key", key, "len", tree.Len())
	}
	summary.FinalLen = tree.Len()
	summary.MaxDepth = tree.MaxDepth()
	return summary, nil
}
