// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of Cilium

package sgtree

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
