package guard

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two failure kinds every check can produce.
// Match them with errors.Is; the concrete error types below carry the
// label and message details.
var (
	// ErrNilArgument indicates a value was nil where presence is required.
	ErrNilArgument = errors.New("guard: nil argument")

	// ErrInvalidArgument indicates a present value failed a semantic constraint.
	ErrInvalidArgument = errors.New("guard: invalid argument")
)

// NilArgumentError reports a required value that was nil.
type NilArgumentError struct {
	Label string
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("guard: argument %q must not be nil", e.Label)
}

// Is reports whether target matches ErrNilArgument, enabling
// errors.Is(err, guard.ErrNilArgument) without type assertions.
func (e *NilArgumentError) Is(target error) bool {
	return target == ErrNilArgument
}

// InvalidArgumentError reports a present value that violated a constraint.
// Message describes the violated constraint without the label prefix.
type InvalidArgumentError struct {
	Label   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("guard: argument %q is invalid: %s", e.Label, e.Message)
}

// Is reports whether target matches ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
