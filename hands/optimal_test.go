package hands

import (
	"errors"
	"math"
	"testing"

	"github.com/jsphweid/handsplit/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimalEmptyInput(t *testing.T) {
	o, err := NewOptimal(DefaultParams())
	require.NoError(t, err)

	p, err := o.Assign(nil)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Empty(p.Left)
	assert.Empty(p.Right)
	assert.Empty(p.Labels)
	assert.Equal(0.0, p.Cost)
	assert.Equal(0, p.Len())
}

func TestOptimalBacktracksPastGreedyChoice(t *testing.T) {
	cost := tableCost(map[int][2]float64{
		60: {1.0, 1.05},
		61: {1.0, 1.05},
		62: {2.0, 1.0},
	})
	notes := model.Notes{note(60, 0, 1), note(61, 1, 2), note(62, 2, 3)}

	dp, err := Split(OptimalName, notes, DefaultParams(), WithCostFunc(cost))
	require.NoError(t, err)
	greedy, err := Split(GreedyName, notes, DefaultParams(), WithCostFunc(cost))
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]model.Hand{model.Left, model.Left, model.Right}, dp.Labels)
	assert.InDelta(3.0, dp.Cost, 1e-9)
	assert.NotEqual(greedy.Labels, dp.Labels)
	assert.Less(dp.Cost, greedy.Cost)

	diff, err := Disagreements(dp, greedy)
	require.NoError(t, err)
	assert.Equal(1, diff)
}

func TestOptimalFinalTieGoesLeft(t *testing.T) {
	cost := tableCost(map[int][2]float64{60: {1, 1}})
	p, err := Split(OptimalName, model.Notes{note(60, 0, 1)}, DefaultParams(), WithCostFunc(cost))
	require.NoError(t, err)
	assert.Equal(t, []model.Hand{model.Left}, p.Labels)
}

func TestOptimalSeparatesRegisters(t *testing.T) {
	notes := twoRegisterPiece(4)
	p, err := Split(OptimalName, notes, DefaultParams())
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Len(p.Left, 12)
	assert.Len(p.Right, 16)
	for _, n := range p.Left {
		assert.Less(n.Pitch, 60)
	}
	for _, n := range p.Right {
		assert.GreaterOrEqual(n.Pitch, 60)
	}
}

func TestOptimalNotWorseThanGreedy(t *testing.T) {
	params := DefaultParams()
	pieces := map[string]model.Notes{
		"two registers": twoRegisterPiece(8),
		"register pressure": {
			note(64, 0, 0.5), note(66, 0.5, 1), note(68, 1, 1.5), note(70, 1.5, 2), note(72, 2, 2.5),
		},
		"crossing lines": {
			note(48, 0, 1), note(67, 0, 1), note(50, 1, 2), note(69, 1, 2),
		},
	}

	for name, notes := range pieces {
		t.Run(name, func(t *testing.T) {
			dp, err := Split(OptimalName, notes, params)
			require.NoError(t, err)
			greedy, err := Split(GreedyName, notes, params)
			require.NoError(t, err)

			greedyCost, err := Evaluate(greedy.Notes, greedy.Labels, params.CostFunc())
			require.NoError(t, err)
			assert.LessOrEqual(t, dp.Cost, greedyCost)
		})
	}
}

func TestOptimalCostMatchesItsOwnHistory(t *testing.T) {
	params := DefaultParams()
	for _, seed := range []int64{1, 2, 3} {
		p, err := Split(OptimalName, randomPiece(seed, 400), params)
		require.NoError(t, err)

		total, err := Evaluate(p.Notes, p.Labels, params.CostFunc())
		require.NoError(t, err)
		assert.InDelta(t, p.Cost, total, 1e-6, "seed %d", seed)
	}
}

func TestOptimalRejectsBadCost(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), -1} {
		cost := func(n model.Note, hand model.Hand, _ HandState) float64 {
			if hand == model.Right && n.Pitch == 62 {
				return v
			}
			return 1
		}
		notes := model.Notes{note(60, 0, 1), note(62, 1, 2)}

		_, err := Split(OptimalName, notes, DefaultParams(), WithCostFunc(cost))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidCost)

		var costErr *CostError
		require.True(t, errors.As(err, &costErr))
		assert.Equal(t, 1, costErr.Index)
		assert.Equal(t, model.Right, costErr.Hand)

		_, err = Split(GreedyName, notes, DefaultParams(), WithCostFunc(cost))
		assert.ErrorIs(t, err, ErrInvalidCost)
	}
}

func TestOptimalRejectsInvalidNotes(t *testing.T) {
	_, err := Split(OptimalName, model.Notes{note(60, 1, 1)}, DefaultParams())
	assert.ErrorIs(t, err, ErrInvalidNote)
}
