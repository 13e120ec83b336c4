package hands

import (
	"fmt"

	"github.com/jsphweid/handsplit/constants"
)

// Params configures the cost model and the greedy hysteresis margin.
type Params struct {
	// MaxFingers is how many distinct pitch classes a hand may hold before
	// a new one is penalized.
	MaxFingers int `json:"max_fingers" yaml:"max_fingers"`

	// AllowedSpread is the widest comfortable span in semitones.
	AllowedSpread int `json:"allowed_spread" yaml:"allowed_spread"`

	// Hysteresis is the factor a hand's cost must beat the other hand's by.
	// Only the greedy engine uses it.
	Hysteresis float64 `json:"hysteresis" yaml:"hysteresis"`
}

func DefaultParams() Params {
	return Params{
		MaxFingers:    constants.DefaultMaxFingers,
		AllowedSpread: constants.DefaultAllowedSpread,
		Hysteresis:    constants.DefaultHysteresis,
	}
}

func (p Params) Validate() error {
	if p.MaxFingers < 1 {
		return fmt.Errorf("%w: max fingers must be at least 1, got %d", ErrInvalidParams, p.MaxFingers)
	}
	if p.AllowedSpread < 0 {
		return fmt.Errorf("%w: allowed spread must not be negative, got %d", ErrInvalidParams, p.AllowedSpread)
	}
	if !(p.Hysteresis > 0 && p.Hysteresis <= 1) {
		return fmt.Errorf("%w: hysteresis must be in (0, 1], got %v", ErrInvalidParams, p.Hysteresis)
	}
	return nil
}
