// Copyright © 2026 The clang-complete authors

package input

import (
	"testing"

	"go.uber.org/goleak"
)

// Loader decodes files on errgroup goroutines; all of them must be joined.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
