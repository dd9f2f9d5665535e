// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// newLoadCmd builds "sgtree load <config.yaml>": the same randomized
// workload as "bench", but configured from a YAML file instead of
// flags, grounded on the teacher's own yaml.v3 usage
// (testutils/script.go).
func newLoadCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "load <config.yaml>",
		Short: "Run a randomized workload described by a YAML config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("sgtree load: %w", err)
			}
			var cfg WorkloadConfig
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("sgtree load: %w", err)
			}
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
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}
