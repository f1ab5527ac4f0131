package obstruction_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package if any probe goroutine outlives its search.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
