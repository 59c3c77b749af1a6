package guard_test

import (
	"testing"

	"github.com/dmitrov/guardkit/pkg/guard"
)

// enableChecks turns checks on for the duration of a test and restores
// the disabled default afterwards.
func enableChecks(t *testing.T) {
	t.Helper()
	guard.Enable()
	t.Cleanup(guard.Disable)
}
