package guard

import (
	"sync/atomic"

	"github.com/dmitrov/guardkit/pkg/config"
)

// enabled is the process-wide switch. It is seeded from the build-tag
// constant and can be flipped at runtime; every check consults it before
// evaluating anything else, so expensive predicates (sequence pulls,
// deferred error constructors) never run while checks are off.
var enabled atomic.Bool

func init() {
	enabled.Store(enabledDefault)
}

// Enable turns all checks on for the whole process, effective on the
// very next call.
func Enable() {
	enabled.Store(true)
}

// Disable turns all checks off; every operation becomes a nil-returning
// no-op regardless of input.
func Disable() {
	enabled.Store(false)
}

// Enabled reports whether checks are currently active. Callers can use
// it to skip expensive setup that only feeds a check.
func Enabled() bool {
	return enabled.Load()
}

// Config holds the environment-driven switch state.
type Config struct {
	Enabled bool `env:"GUARD_CHECKS" envDefault:"false"`
}

// FromEnv sets the switch from the GUARD_CHECKS environment variable
// (unset or false keeps checks off). It overrides both the build-tag
// default and any earlier Enable/Disable call.
func FromEnv() error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}
	enabled.Store(cfg.Enabled)
	return nil
}
