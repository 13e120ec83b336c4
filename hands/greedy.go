package hands

import (
	"github.com/jsphweid/handsplit/model"
	"go.uber.org/zap"
)

// Greedy assigns notes in a single pass and never revisits a decision.
type Greedy struct {
	params Params
	opts   options
}

var _ Engine = (*Greedy)(nil)

func NewGreedy(p Params, opts ...Option) (*Greedy, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Greedy{params: p, opts: buildOptions(p, opts)}, nil
}

func (g *Greedy) Name() string {
	return GreedyName
}

// Assign walks the sorted notes once. For each note both hands are priced
// against what they hold at its onset; a hand wins only if its cost is below
// Hysteresis times the other's. Otherwise the note goes to the hand that has
// received fewer notes so far, Left on a tie.
//
// Partition.Cost is the sum of the winning costs.
func (g *Greedy) Assign(notes model.Notes) (*model.Partition, error) {
	sorted, err := Prepare(notes)
	if err != nil {
		return nil, err
	}

	labels := make([]model.Hand, len(sorted))
	tr := newTracker()
	var total float64
	for i, n := range sorted {
		tr.advance(n.Onset)

		var costs [2]float64
		for _, h := range model.Hands {
			costs[h] = g.opts.cost(n, h, tr.state(h))
			if err := checkCost(costs[h], i, h); err != nil {
				return nil, err
			}
		}

		hand := g.choose(costs, tr)
		tr.assign(hand, n)
		labels[i] = hand
		total += costs[hand]
	}

	p := assemble(GreedyName, sorted, labels, total)
	g.opts.logger.Debug("greedy split",
		zap.Int("notes", len(sorted)),
		zap.Int("left", len(p.Left)),
		zap.Int("right", len(p.Right)),
		zap.Float64("cost", total))
	return p, nil
}

func (g *Greedy) choose(costs [2]float64, tr *tracker) model.Hand {
	left, right := costs[model.Left], costs[model.Right]
	switch {
	case left < right*g.params.Hysteresis:
		return model.Left
	case right < left*g.params.Hysteresis:
		return model.Right
	case tr.count(model.Right) < tr.count(model.Left):
		return model.Right
	default:
		return model.Left
	}
}
