package engine

import (
	"errors"
	"fmt"
)

const (
	// AcuteWindowDays is fixed: the trailing week including the as-of day.
	AcuteWindowDays = 7

	// MinChronicPeriodDays is a hard floor. A shorter chronic window would
	// undermine the acute:chronic contrast the metric exists to provide, so
	// shorter configurations are rejected outright, never clamped.
	MinChronicPeriodDays = 28

	DefaultChronicPeriodDays = 28
)

// ErrInvalidConfiguration is returned when a configuration fails validation.
// Invalid configurations are rejected at write time, before any computation.
var ErrInvalidConfiguration = errors.New("invalid training load configuration")

// Config names one calculation profile. DecayRate 0 selects the simple
// unweighted chronic mean; a positive rate selects the exponentially decayed
// weighted mean. Exactly one configuration is active per user at a time.
type Config struct {
	ChronicPeriodDays int     `json:"chronicPeriodDays"`
	DecayRate         float64 `json:"decayRate"`
}

// DefaultConfig is the system profile applied when a user has no override.
func DefaultConfig() Config {
	return Config{
		ChronicPeriodDays: DefaultChronicPeriodDays,
		DecayRate:         0,
	}
}

func (c Config) Validate() error {
	if c.ChronicPeriodDays < MinChronicPeriodDays {
		return fmt.Errorf(
			"%w: chronic period %d days is below the minimum of %d",
			ErrInvalidConfiguration, c.ChronicPeriodDays, MinChronicPeriodDays,
		)
	}
	if c.DecayRate < 0 {
		return fmt.Errorf("%w: decay rate %f is negative", ErrInvalidConfiguration, c.DecayRate)
	}
	return nil
}

// ID is the deterministic configuration identifier used to key persisted
// computed metrics, so rows from different profiles never mix.
func (c Config) ID() string {
	return fmt.Sprintf("chronic%d-decay%.4f", c.ChronicPeriodDays, c.DecayRate)
}
