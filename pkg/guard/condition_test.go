package guard_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrov/guardkit/pkg/guard"
)

func TestThat(t *testing.T) {
	enableChecks(t)

	t.Run("passes for true condition", func(t *testing.T) {
		assert.NoError(t, guard.That(1 < 2, "must be ordered", "bounds"))
	})

	t.Run("fails for false condition with supplied message and label", func(t *testing.T) {
		err := guard.That(false, "offset must precede limit", "offset")
		require.Error(t, err)

		var invErr *guard.InvalidArgumentError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, "offset", invErr.Label)
		assert.True(t, strings.HasPrefix(invErr.Message, "offset must precede limit"))
	})

	t.Run("arbitrary message and label pairs survive verbatim", func(t *testing.T) {
		pairs := [][2]string{
			{"", ""},
			{"a", "b"},
			{"message with 'quotes' and %v verbs", "weird label\t"},
		}
		for _, p := range pairs {
			err := guard.That(false, p[0], p[1])
			var invErr *guard.InvalidArgumentError
			require.ErrorAs(t, err, &invErr)
			assert.Equal(t, p[0], invErr.Message)
			assert.Equal(t, p[1], invErr.Label)
		}
	})
}

func TestThatFunc(t *testing.T) {
	enableChecks(t)

	t.Run("passes for true condition without calling constructor", func(t *testing.T) {
		called := false
		err := guard.ThatFunc(true, func() error {
			called = true
			return errors.New("boom")
		})
		assert.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("returns the constructed error verbatim on failure", func(t *testing.T) {
		sentinel := errors.New("quota exceeded")
		err := guard.ThatFunc(false, func() error { return sentinel })
		assert.Same(t, sentinel, err)
	})

	t.Run("fails when constructor itself is nil", func(t *testing.T) {
		err := guard.ThatFunc(false, nil)
		assert.ErrorIs(t, err, guard.ErrNilArgument)
	})
}
