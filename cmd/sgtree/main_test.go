// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package main

import (
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

// TestMain registers the sgtree binary's entry point with testscript,
// the same way the teacher drives its own CLI tooling end to end
// (script_test.go, testutils/script.go), so testdata/*.txtar can invoke
// "sgtree" without actually compiling and forking a separate process.
func TestMain(m *testing.M) {
	os.Exit(testscript.RunMain(m, map[string]func() int{
		"sgtree": run,
	}))
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
	})
}
