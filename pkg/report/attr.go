package report

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Label records the name of the checked value under the key "label".
func Label(name string) slog.Attr {
	return slog.String("label", name)
}

// Value records the offending value under the key "value".
func Value(v any) slog.Attr {
	return slog.Any("value", v)
}
