package guard

import "strings"

// NotEmpty checks that a string is not the empty string. Whitespace-only
// strings pass; use NotWhitespace to reject those too.
func NotEmpty(value string, label string) error {
	if !Enabled() {
		return nil
	}
	if value == "" {
		return &InvalidArgumentError{Label: label, Message: "cannot be empty"}
	}
	return nil
}

// NotNilOrEmpty checks an optional string: nil fails as a nil argument,
// the empty string fails as an invalid one.
func NotNilOrEmpty(value *string, label string) error {
	if !Enabled() {
		return nil
	}
	if value == nil {
		return &NilArgumentError{Label: label}
	}
	if *value == "" {
		return &InvalidArgumentError{Label: label, Message: "cannot be empty"}
	}
	return nil
}

// NotWhitespace checks that a string contains at least one
// non-whitespace character.
func NotWhitespace(value string, label string) error {
	if !Enabled() {
		return nil
	}
	if strings.TrimSpace(value) == "" {
		return &InvalidArgumentError{Label: label, Message: "cannot be white-space"}
	}
	return nil
}

// NotNilOrWhitespace checks an optional string for presence and at least
// one non-whitespace character.
func NotNilOrWhitespace(value *string, label string) error {
	if !Enabled() {
		return nil
	}
	if value == nil {
		return &NilArgumentError{Label: label}
	}
	return NotWhitespace(*value, label)
}
