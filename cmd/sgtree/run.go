// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geky/sgtree"
)

// newRunCmd builds "sgtree run <script>": a line-oriented replay of
// insert/find/erase/iterate commands against one Tree[string,string],
// the external-collaborator harness spec.md §1 places out of the
// library's own scope, reimplemented here as ambient tooling.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Replay an insert/find/erase/iterate script against one tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("sgtree run: %w", err)
			}
			defer f.Close()
			return runScript(cmd.OutOrStdout(), f)
		},
	}
	return cmd
}

func runScript(out io.Writer, in io.Reader) error {
	tree, err := sgtree.NewOrdered[string, string]()
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "insert":
			if len(fields) != 3 {
				return fmt.Errorf("sgtree run: insert wants 2 args, got %q", line)
			}
			tree.Insert(fields[1], fields[2])
		case "find":
			if len(fields) != 2 {
				return fmt.Errorf("sgtree run: find wants 1 arg, got %q", line)
			}
			c := tree.Find(fields[1])
			if !c.Valid() {
				fmt.Fprintf(out, "end\n")
				continue
			}
			fmt.Fprintf(out, "%s\n", c.Value())
		case "erase":
			if len(fields) != 2 {
				return fmt.Errorf("sgtree run: erase wants 1 arg, got %q", line)
			}
			fmt.Fprintf(out, "%t\n", tree.Erase(fields[1]))
		case "iterate":
			for it := tree.Iterate(); it.Valid(); it.Next() {
				fmt.Fprintf(out, "%s=%s\n", it.Key(), it.Value())
			}
		default:
			return fmt.Errorf("sgtree run: unknown command %q", fields[0])
		}
	}
	return scanner.Err()
}
