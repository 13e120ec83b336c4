package hands

import (
	"errors"
	"fmt"

	"github.com/jsphweid/handsplit/model"
)

var (
	// ErrInvalidNote is returned before any assignment work when an input
	// note is malformed.
	ErrInvalidNote = errors.New("invalid note")

	// ErrInvalidParams is returned when engine parameters are out of range.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrUnknownEngine is returned by NewEngine for an unregistered name.
	ErrUnknownEngine = errors.New("unknown engine")

	// ErrInvalidCost is returned when a cost function yields NaN, an
	// infinity or a negative value.
	ErrInvalidCost = errors.New("invalid cost")

	// ErrLabelCount is returned by Evaluate when labels and notes differ in length.
	ErrLabelCount = errors.New("label count does not match note count")

	// ErrInternal signals a defect inside an engine, such as an unreachable
	// final table state.
	ErrInternal = errors.New("internal engine error")
)

// CostError reports which evaluation produced an unusable cost.
type CostError struct {
	Index int
	Hand  model.Hand
	Value float64
}

func (e *CostError) Error() string {
	return fmt.Sprintf("%v: note %d, %v hand: %v", ErrInvalidCost, e.Index, e.Hand, e.Value)
}

func (e *CostError) Unwrap() error {
	return ErrInvalidCost
}
