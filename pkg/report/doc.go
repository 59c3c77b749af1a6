// Package report provides a report-and-continue counterpart to
// pkg/guard: instead of returning errors, violated conditions are
// logged as structured slog warnings and execution proceeds.
//
// It suits invariants worth surfacing in production telemetry but not
// worth failing a request over:
//
//	r := report.New(logger)
//	r.IfNot(cursor.Valid(), "stale cursor used", report.Label("cursor"))
//	if r.IfError(err, "cache refresh failed") {
//	    // serve stale data
//	}
//
// Every method returns a boolean describing what it observed, so a call
// can double as the branch condition. Attrs are plain slog.Attr values;
// the Error, Label and Value helpers cover the common fields.
package report
