// Package guard provides cheap, removable precondition checks for
// function arguments: presence checks for references and optional
// values, emptiness and whitespace checks for strings and collections,
// general boolean conditions, and enumeration validity including
// bit-flag combinations.
//
// Every check takes the candidate value plus a label naming it for
// diagnostics, and returns nil on success or a typed error on failure.
// The package is stateless apart from a single process-wide switch;
// all checks are pure and safe for concurrent use.
//
// # The switch
//
// Checks are off by default and every operation is then an immediate
// nil return that never evaluates its predicate. Turn them on with the
// guardchecks build tag, at runtime with Enable, or from the
// GUARD_CHECKS environment variable via FromEnv. Because the switch is
// consulted before anything else, lazy sequences and deferred error
// constructors are never touched while checks are off.
//
// # Error Handling
//
// Failures come in two kinds: NilArgumentError for values that are
// absent where presence is required and InvalidArgumentError for
// present values that violate a constraint. Both carry the label and
// match the package sentinels:
//
//	if err := guard.NotNilOrWhitespace(name, "name"); err != nil {
//	    if errors.Is(err, guard.ErrNilArgument) {
//	        // absent
//	    }
//	    return err
//	}
//
// The deferred-condition form ThatFunc returns whatever error the
// caller's constructor produces instead.
//
// # Enum checks
//
// Go cannot enumerate an enum type's members, so enum checks take an
// EnumSpec declared once next to the enum's constants, carrying the
// defined members, an optional flags marker and optional display
// names:
//
//	var modeSpec = guard.EnumSpec[Mode]{
//	    Flags:  true,
//	    Values: []Mode{ModeNone, ModeRead, ModeWrite, ModeAppend},
//	}
//
//	if err := guard.ValidEnum(mode, modeSpec, "mode"); err != nil {
//	    return err
//	}
//
// Flag enums accept any OR-combination of defined bits; plain enums
// require an exact member. PermittedEnum narrows the check to an
// explicit subset and reports defined-but-not-permitted members
// distinctly from undefined values.
package guard
