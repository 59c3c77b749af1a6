package guard

import (
	"fmt"
	"iter"
)

// NotNilSlice checks that a slice is present. With checkItems set and a
// nillable element type, it additionally rejects nil elements; for value
// element types the scan is skipped entirely, so large slices of structs
// or ints cost nothing beyond the nil check.
func NotNilSlice[T any](values []T, checkItems bool, label string) error {
	if !Enabled() {
		return nil
	}
	if values == nil {
		return &NilArgumentError{Label: label}
	}
	if !checkItems || !nillable[T]() {
		return nil
	}
	for i := range values {
		if isNil(any(values[i])) {
			return &InvalidArgumentError{
				Label:   label,
				Message: fmt.Sprintf("element at index %d must not be nil", i),
			}
		}
	}
	return nil
}

// NotEmptySeq checks that a lazily-produced sequence yields at least one
// element. It pulls at most one element and does not replay the
// sequence; one-shot sequences are partially consumed by this check.
func NotEmptySeq[T any](seq iter.Seq[T], label string) error {
	if !Enabled() {
		return nil
	}
	if seq == nil {
		return &NilArgumentError{Label: label}
	}
	for range seq {
		return nil
	}
	return &InvalidArgumentError{Label: label, Message: "cannot be empty"}
}

// NotEmptySlice checks that a slice is present and has at least one element.
func NotEmptySlice[T any](values []T, label string) error {
	if !Enabled() {
		return nil
	}
	if values == nil {
		return &NilArgumentError{Label: label}
	}
	if len(values) == 0 {
		return &InvalidArgumentError{Label: label, Message: "cannot be empty"}
	}
	return nil
}

// NotEmptyMap checks that a map is present and has at least one entry.
func NotEmptyMap[K comparable, V any](values map[K]V, label string) error {
	if !Enabled() {
		return nil
	}
	if values == nil {
		return &NilArgumentError{Label: label}
	}
	if len(values) == 0 {
		return &InvalidArgumentError{Label: label, Message: "cannot be empty"}
	}
	return nil
}
