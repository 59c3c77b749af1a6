//go:build !guarddebug

package assert

// Enabled is false in release builds; all assertions compile to no-ops.
const Enabled = false

// That is a no-op in release builds.
func That(condition bool, msg string, args ...any) {}

// NotNil is a no-op in release builds.
func NotNil(value any, name string) {}

// NoError is a no-op in release builds.
func NoError(err error, msg string) {}

// Unreachable is a no-op in release builds.
func Unreachable(msg string) {}
