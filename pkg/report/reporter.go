package report

import (
	"context"
	"log/slog"
	"reflect"
)

// Reporter logs precondition violations as structured warnings instead
// of failing. Safe for concurrent use; the zero-cost path is a single
// boolean test.
type Reporter struct {
	log *slog.Logger
}

// New creates a Reporter writing through the given logger. A nil
// logger falls back to slog.Default().
func New(log *slog.Logger) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{log: log}
}

// IfNot logs message when the condition does not hold and returns the
// condition, so call sites can branch on the same expression:
//
//	if !r.IfNot(len(batch) > 0, "empty batch submitted") {
//	    return
//	}
func (r *Reporter) IfNot(condition bool, message string, attrs ...slog.Attr) bool {
	if !condition {
		r.log.LogAttrs(context.Background(), slog.LevelWarn, message, attrs...)
	}
	return condition
}

// If logs message when the condition holds and returns the condition.
func (r *Reporter) If(condition bool, message string, attrs ...slog.Attr) bool {
	if condition {
		r.log.LogAttrs(context.Background(), slog.LevelWarn, message, attrs...)
	}
	return condition
}

// IfNil logs message when value is nil, including typed nils stored in
// an interface, and reports whether it was nil.
func (r *Reporter) IfNil(value any, message string, attrs ...slog.Attr) bool {
	absent := isNil(value)
	if absent {
		r.log.LogAttrs(context.Background(), slog.LevelWarn, message, attrs...)
	}
	return absent
}

// IfError logs message with the error attached when err is non-nil and
// reports whether an error was present.
func (r *Reporter) IfError(err error, message string, attrs ...slog.Attr) bool {
	if err == nil {
		return false
	}
	attrs = append(attrs, Error(err))
	r.log.LogAttrs(context.Background(), slog.LevelWarn, message, attrs...)
	return true
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
