package guard

// That checks an arbitrary precondition and reports the caller-supplied
// message when it does not hold.
func That(condition bool, message, label string) error {
	if !Enabled() {
		return nil
	}
	if condition {
		return nil
	}
	return &InvalidArgumentError{Label: label, Message: message}
}

// ThatFunc checks an arbitrary condition with a deferred error
// constructor. The constructor is invoked only on failure, so building
// an expensive error value costs nothing on the happy path, and the
// resulting error is returned verbatim rather than wrapped in one of
// this package's kinds.
func ThatFunc(condition bool, errFn func() error) error {
	if !Enabled() {
		return nil
	}
	if condition {
		return nil
	}
	if errFn == nil {
		return &NilArgumentError{Label: "errFn"}
	}
	return errFn()
}
