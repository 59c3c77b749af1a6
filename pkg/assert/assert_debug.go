//go:build guarddebug

package assert

import (
	"fmt"
	"reflect"
)

// Enabled is true in guarddebug builds.
const Enabled = true

// That panics with the formatted message if the condition is false.
func That(condition bool, msg string, args ...any) {
	if condition {
		return
	}
	if len(args) > 0 {
		panic("assertion failed: " + fmt.Sprintf(msg, args...))
	}
	panic("assertion failed: " + msg)
}

// NotNil panics if value is nil, including typed nils stored in an
// interface.
func NotNil(value any, name string) {
	That(!isNil(value), "%s must not be nil", name)
}

// NoError panics if err is non-nil.
func NoError(err error, msg string) {
	That(err == nil, "%s: %v", msg, err)
}

// Unreachable marks code paths that must never execute.
func Unreachable(msg string) {
	panic("assertion failed: reached unreachable code: " + msg)
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
