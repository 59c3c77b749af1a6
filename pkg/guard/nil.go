package guard

import "reflect"

// NotNil checks that a reference is present. It catches both nil
// interfaces and typed nils (a nil *T stored in an any), which a plain
// == nil comparison misses.
func NotNil(value any, label string) error {
	if !Enabled() {
		return nil
	}
	if isNil(value) {
		return &NilArgumentError{Label: label}
	}
	return nil
}

// NotNilPtr checks that an optional value, modeled as a pointer, is present.
func NotNilPtr[T any](value *T, label string) error {
	if !Enabled() {
		return nil
	}
	if value == nil {
		return &NilArgumentError{Label: label}
	}
	return nil
}

// Present checks a generic slot whose nullability depends on the type
// argument: pointers, maps, slices, channels, funcs and interfaces fail
// when nil, while non-nillable value types always pass. The always-pass
// path is deliberate policy, not an omission.
func Present[T any](value T, label string) error {
	if !Enabled() {
		return nil
	}
	rv := reflect.ValueOf(&value).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		if rv.IsNil() {
			return &NilArgumentError{Label: label}
		}
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// nillable reports whether T is a type whose zero value is nil.
func nillable[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	}
	return false
}
