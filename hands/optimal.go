package hands

import (
	"fmt"
	"math"

	"github.com/jsphweid/handsplit/model"
	"go.uber.org/zap"
)

// Optimal minimizes cumulative cost with a dynamic program over
// (note index, hand) and recovers the hand sequence by backtracking.
//
// The cost of placing note i in a hand is computed once per (i, hand), from
// a single running history: every earlier note sits in the hand whose table
// cell was cheaper when its row was filled. The cost does not depend on which
// predecessor is being compared, so it is not evaluated against the history
// of each branch.
// TODO: price each branch against its own history and compare results on
// real transcriptions before switching the default.
type Optimal struct {
	params Params
	opts   options
}

var _ Engine = (*Optimal)(nil)

func NewOptimal(p Params, opts ...Option) (*Optimal, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Optimal{params: p, opts: buildOptions(p, opts)}, nil
}

func (o *Optimal) Name() string {
	return OptimalName
}

// cell is one entry of the table: the cheapest total for the row's note
// ending in this hand, and the hand the previous note was in.
type cell struct {
	cost float64
	prev model.Hand
}

type row [2]cell

type table []row

// cheaper picks the hand of the lower cell in a row, Left on a tie.
func (r row) cheaper() model.Hand {
	if r[model.Left].cost <= r[model.Right].cost {
		return model.Left
	}
	return model.Right
}

func (o *Optimal) Assign(notes model.Notes) (*model.Partition, error) {
	sorted, err := Prepare(notes)
	if err != nil {
		return nil, err
	}
	if len(sorted) == 0 {
		return assemble(OptimalName, sorted, nil, 0), nil
	}

	t, err := o.fill(sorted)
	if err != nil {
		return nil, err
	}
	labels, cost, err := t.backtrack()
	if err != nil {
		return nil, err
	}

	p := assemble(OptimalName, sorted, labels, cost)
	o.opts.logger.Debug("optimal split",
		zap.Int("notes", len(sorted)),
		zap.Int("left", len(p.Left)),
		zap.Int("right", len(p.Right)),
		zap.Float64("cost", cost))
	return p, nil
}

func (o *Optimal) fill(sorted model.Notes) (table, error) {
	t := make(table, len(sorted))
	tr := newTracker()

	// the row before the first note costs nothing in either hand
	prev := [2]float64{0, 0}
	for i, n := range sorted {
		tr.advance(n.Onset)

		for _, h := range model.Hands {
			c := o.opts.cost(n, h, tr.state(h))
			if err := checkCost(c, i, h); err != nil {
				return nil, err
			}

			best := cell{cost: math.Inf(1)}
			for _, ph := range model.Hands {
				if total := prev[ph] + c; total < best.cost {
					best = cell{cost: total, prev: ph}
				}
			}
			t[i][h] = best
		}

		tr.assign(t[i].cheaper(), n)
		prev = [2]float64{t[i][model.Left].cost, t[i][model.Right].cost}
	}
	return t, nil
}

func (t table) backtrack() ([]model.Hand, float64, error) {
	last := len(t) - 1
	final := t[last].cheaper()
	cost := t[last][final].cost
	if math.IsInf(cost, 0) || math.IsNaN(cost) {
		return nil, 0, fmt.Errorf("%w: final state unreachable (cost %v)", ErrInternal, cost)
	}

	labels := make([]model.Hand, len(t))
	labels[last] = final
	for i := last - 1; i >= 0; i-- {
		labels[i] = t[i+1][labels[i+1]].prev
	}
	return labels, cost, nil
}
