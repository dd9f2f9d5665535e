// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

// Command sgtree is a small driver around the sgtree library: it is
// ambient tooling around the container, not part of its public
// contract (spec.md §1, §6 name no CLI or wire protocol for the
// library itself).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

// run is split out from main so the test suite can register it with
// testscript.RunMain (main_test.go) and exercise the built binary's
// behavior without actually forking a process per test.
func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sgtree",
		Short: "Drive and exercise an in-place Eytzinger scapegoat tree",
	}
	root.AddCommand(newRunCmd(), newBenchCmd(), newLoadCmd())
	return root
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
