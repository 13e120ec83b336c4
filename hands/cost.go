package hands

import (
	"math"

	"github.com/jsphweid/handsplit/constants"
	"github.com/jsphweid/handsplit/model"
)

// CostFunc prices putting n in hand given what that hand currently holds.
// It must return a finite, non-negative value.
type CostFunc func(n model.Note, hand model.Hand, s HandState) float64

// Breakdown is the cost model split into its terms.
type Breakdown struct {
	Span     float64 `json:"span"`
	Finger   float64 `json:"finger"`
	Register float64 `json:"register"`
	Density  float64 `json:"density"`
}

func (b Breakdown) Total() float64 {
	return b.Span + b.Finger + b.Register + b.Density
}

// Score evaluates each term of the cost model.
func Score(n model.Note, hand model.Hand, s HandState, p Params) Breakdown {
	var b Breakdown

	if over := s.SpanWith(n.Pitch) - p.AllowedSpread; over > 0 {
		b.Span = float64(over * over)
	}
	if s.FingersUsed >= p.MaxFingers && !s.HasPitchClass(n.PitchClass()) {
		b.Finger = constants.FingerPenalty
	}
	if wrongRegister(n, hand) {
		b.Register = constants.RegisterPenalty
	}
	b.Density = constants.DensityWeight * float64(s.Active)

	return b
}

func Cost(n model.Note, hand model.Hand, s HandState, p Params) float64 {
	return Score(n, hand, s, p).Total()
}

// CostFunc binds the default cost model to p.
func (p Params) CostFunc() CostFunc {
	return func(n model.Note, hand model.Hand, s HandState) float64 {
		return Cost(n, hand, s, p)
	}
}

// wrongRegister reports a left hand at or above middle C, or a right hand
// below it.
func wrongRegister(n model.Note, hand model.Hand) bool {
	if hand == model.Left {
		return n.Pitch >= constants.MiddleC
	}
	return n.Pitch < constants.MiddleC
}

func checkCost(c float64, index int, hand model.Hand) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
		return &CostError{Index: index, Hand: hand, Value: c}
	}
	return nil
}
