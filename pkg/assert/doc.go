// Package assert provides panic-on-violation assertions for internal
// invariants, compiled out of regular builds.
//
// Unlike pkg/guard, which returns errors for bad caller input, assert
// is for conditions the programmer believes cannot be false: violated
// assertions indicate a bug, so they panic rather than return. In
// default builds every assertion is an empty-body no-op; build with the
// guarddebug tag to arm them. Anything expensive that only feeds an
// assertion should be wrapped in an Enabled check so release builds can
// drop it entirely:
//
//	if assert.Enabled {
//	    assert.That(tree.balanced(), "index tree out of balance")
//	}
package assert
