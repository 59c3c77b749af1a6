//go:build guardchecks

package guard

// enabledDefault is true when built with the guardchecks tag: all checks
// evaluate their predicates and report violations.
const enabledDefault = true
