package hands

import (
	"testing"

	"github.com/jsphweid/handsplit/model"
	"github.com/stretchr/testify/assert"
)

func TestSpreadBeyondAllowedIsSquared(t *testing.T) {
	held := model.Notes{note(60, 0, 2), note(72, 0, 2)}
	s := StateAt(held, 1)

	b := Score(note(61, 1, 2), model.Right, s, DefaultParams())

	assert := assert.New(t)
	assert.Equal(12, s.SpanWith(61))
	assert.Equal(16.0, b.Span)
	assert.Equal(0.0, b.Finger)
	assert.Equal(0.0, b.Register)
	assert.InDelta(0.4, b.Density, 1e-9)
	assert.InDelta(16.4, b.Total(), 1e-9)
	assert.InDelta(17.2, Cost(note(61, 1, 2), model.Left, s, DefaultParams()), 1e-9)
}

func TestSpreadWithinAllowedIsFree(t *testing.T) {
	s := StateAt(model.Notes{note(60, 0, 2)}, 1)

	assert := assert.New(t)
	assert.Equal(0.0, Score(note(68, 1, 2), model.Right, s, DefaultParams()).Span)
	assert.Equal(1.0, Score(note(69, 1, 2), model.Right, s, DefaultParams()).Span)

	wide := DefaultParams()
	wide.AllowedSpread = 12
	assert.Equal(0.0, Score(note(72, 1, 2), model.Right, s, wide).Span)
}

func TestFingerPenaltyOnlyForNewPitchClass(t *testing.T) {
	var held model.Notes
	for _, p := range []int{60, 61, 62, 63, 64} {
		held = append(held, note(p, 0, 2))
	}
	s := StateAt(held, 1)

	assert := assert.New(t)
	assert.Equal(5, s.FingersUsed)
	assert.Equal(2.0, Score(note(65, 1, 2), model.Right, s, DefaultParams()).Finger)
	// 72 doubles the held C
	assert.Equal(0.0, Score(note(72, 1, 2), model.Right, s, DefaultParams()).Finger)

	roomy := DefaultParams()
	roomy.MaxFingers = 6
	assert.Equal(0.0, Score(note(65, 1, 2), model.Right, s, roomy).Finger)
}

func TestRegisterPenalty(t *testing.T) {
	cases := []struct {
		hand  model.Hand
		pitch int
		want  float64
	}{
		{model.Left, 59, 0},
		{model.Left, 60, 0.8},
		{model.Right, 59, 0.8},
		{model.Right, 60, 0},
		{model.Right, 108, 0},
		{model.Left, 21, 0},
	}

	for _, c := range cases {
		b := Score(note(c.pitch, 0, 1), c.hand, HandState{}, DefaultParams())
		assert.Equal(t, c.want, b.Register, "%v hand pitch %d", c.hand, c.pitch)
	}
}

func TestDensityCountsSoundingNotes(t *testing.T) {
	held := model.Notes{note(40, 0, 3), note(43, 0, 3), note(47, 0, 0.5)}
	s := StateAt(held, 1)
	assert.InDelta(t, 0.4, Score(note(45, 1, 2), model.Left, s, DefaultParams()).Density, 1e-9)
}

func TestParamsCostFuncMatchesCost(t *testing.T) {
	p := DefaultParams()
	s := StateAt(model.Notes{note(55, 0, 2), note(67, 0, 2)}, 1)
	n := note(70, 1, 2)
	assert.Equal(t, Cost(n, model.Left, s, p), p.CostFunc()(n, model.Left, s))
}
