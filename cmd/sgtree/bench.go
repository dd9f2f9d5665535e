// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newBenchCmd builds "sgtree bench": the spec.md §8 scenario-4
// fixed-seed randomized workload, run directly from flags.
func newBenchCmd() *cobra.Command {
	cfg := WorkloadConfig{Seed: 1, KeyRange: 1000, Ops: 1000}
	var verbose bool

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run a fixed-seed randomized insert/erase/find workload",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			summary, err := RunWorkload(cmd.Context(), logger, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserts=%d erases=%d finds=%d final_len=%d max_depth=%d\n",
				summary.Inserts, summary.Erases, summary.Finds, summary.FinalLen, summary.MaxDepth)
			return nil
		},
	}
	cfg.Flags(cmd.Flags())
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
