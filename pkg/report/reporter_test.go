package report_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrov/guardkit/pkg/report"
)

func newTestReporter() (*report.Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return report.New(log), &buf
}

func TestIfNot(t *testing.T) {
	t.Run("logs nothing when the condition holds", func(t *testing.T) {
		r, buf := newTestReporter()
		assert.True(t, r.IfNot(true, "should not appear"))
		assert.Empty(t, buf.String())
	})

	t.Run("logs a warning when the condition fails", func(t *testing.T) {
		r, buf := newTestReporter()
		assert.False(t, r.IfNot(false, "empty batch submitted", report.Label("batch")))
		out := buf.String()
		assert.Contains(t, out, "empty batch submitted")
		assert.Contains(t, out, "label=batch")
		assert.Contains(t, out, "WARN")
	})
}

func TestIf(t *testing.T) {
	r, buf := newTestReporter()

	assert.False(t, r.If(false, "quiet"))
	assert.Empty(t, buf.String())

	assert.True(t, r.If(true, "deprecated option used"))
	assert.Contains(t, buf.String(), "deprecated option used")
}

func TestIfNil(t *testing.T) {
	t.Run("reports nil interface", func(t *testing.T) {
		r, buf := newTestReporter()
		assert.True(t, r.IfNil(nil, "missing handler"))
		assert.Contains(t, buf.String(), "missing handler")
	})

	t.Run("reports typed nil", func(t *testing.T) {
		r, buf := newTestReporter()
		var p *int
		assert.True(t, r.IfNil(p, "missing pointer"))
		assert.Contains(t, buf.String(), "missing pointer")
	})

	t.Run("stays silent for present values", func(t *testing.T) {
		r, buf := newTestReporter()
		assert.False(t, r.IfNil(42, "should not appear"))
		assert.Empty(t, buf.String())
	})
}

func TestIfError(t *testing.T) {
	t.Run("stays silent for nil error", func(t *testing.T) {
		r, buf := newTestReporter()
		assert.False(t, r.IfError(nil, "should not appear"))
		assert.Empty(t, buf.String())
	})

	t.Run("logs the error under the error key", func(t *testing.T) {
		r, buf := newTestReporter()
		assert.True(t, r.IfError(errors.New("connection reset"), "cache refresh failed"))
		out := buf.String()
		assert.Contains(t, out, "cache refresh failed")
		assert.Contains(t, out, "connection reset")
	})
}

func TestNewWithNilLogger(t *testing.T) {
	r := report.New(nil)
	require.NotNil(t, r)
	assert.NotPanics(t, func() { r.IfNot(true, "noop") })
}

func TestAttrHelpers(t *testing.T) {
	assert.Equal(t, slog.Attr{}, report.Error(nil))
	assert.Equal(t, "error", report.Error(errors.New("x")).Key)
	assert.Equal(t, "label", report.Label("candidate").Key)
	assert.Equal(t, "value", report.Value(1).Key)
}
