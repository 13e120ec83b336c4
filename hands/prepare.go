package hands

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/handsplit/constants"
	"github.com/jsphweid/handsplit/model"
)

// Validate checks every note and reports the first malformed one by index.
func Validate(notes model.Notes) error {
	for i, n := range notes {
		if err := validateNote(n); err != nil {
			return fmt.Errorf("note %d (%v): %w", i, n, err)
		}
	}
	return nil
}

func validateNote(n model.Note) error {
	switch {
	case n.Pitch < constants.MinPitch || n.Pitch > constants.MaxPitch:
		return fmt.Errorf("%w: pitch %d outside %d-%d", ErrInvalidNote, n.Pitch, constants.MinPitch, constants.MaxPitch)
	case n.Velocity < 0 || n.Velocity > constants.MaxVelocity:
		return fmt.Errorf("%w: velocity %d outside 0-%d", ErrInvalidNote, n.Velocity, constants.MaxVelocity)
	case math.IsNaN(n.Onset) || math.IsInf(n.Onset, 0) || math.IsNaN(n.Offset) || math.IsInf(n.Offset, 0):
		return fmt.Errorf("%w: non-finite timing", ErrInvalidNote)
	case n.Offset <= n.Onset:
		return fmt.Errorf("%w: offset %v not after onset %v", ErrInvalidNote, n.Offset, n.Onset)
	}
	return nil
}

// Prepare validates notes and returns a copy stable-sorted by onset, then
// pitch. The input slice is left untouched.
func Prepare(notes model.Notes) (model.Notes, error) {
	if err := Validate(notes); err != nil {
		return nil, err
	}

	sorted := make(model.Notes, len(notes))
	copy(sorted, notes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Onset != sorted[j].Onset {
			return sorted[i].Onset < sorted[j].Onset
		}
		return sorted[i].Pitch < sorted[j].Pitch
	})
	return sorted, nil
}
