package hands

import (
	"fmt"
	"sort"

	"github.com/jsphweid/handsplit/model"
	"go.uber.org/zap"
)

const (
	GreedyName  = "greedy"
	OptimalName = "optimal"
)

// Engine partitions notes between the two hands.
//
// Implementations validate and sort their input, never mutate it, and return
// the same partition for the same input.
type Engine interface {
	Name() string
	Assign(notes model.Notes) (*model.Partition, error)
}

type Option func(*options)

type options struct {
	cost   CostFunc
	logger *zap.Logger
}

// WithCostFunc replaces the default cost model.
func WithCostFunc(fn CostFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.cost = fn
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(p Params, opts []Option) options {
	o := options{
		cost:   p.CostFunc(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

var constructors = map[string]func(Params, ...Option) (Engine, error){
	GreedyName: func(p Params, opts ...Option) (Engine, error) {
		g, err := NewGreedy(p, opts...)
		if err != nil {
			return nil, err
		}
		return g, nil
	},
	OptimalName: func(p Params, opts ...Option) (Engine, error) {
		o, err := NewOptimal(p, opts...)
		if err != nil {
			return nil, err
		}
		return o, nil
	},
}

// EngineNames lists the registered engines in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func NewEngine(name string, p Params, opts ...Option) (Engine, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownEngine, name, EngineNames())
	}
	return ctor(p, opts...)
}

// Split runs the named engine once.
func Split(name string, notes model.Notes, p Params, opts ...Option) (*model.Partition, error) {
	engine, err := NewEngine(name, p, opts...)
	if err != nil {
		return nil, err
	}
	return engine.Assign(notes)
}

// assemble builds the output streams from per-note labels. Both streams keep
// processing order.
func assemble(engine string, sorted model.Notes, labels []model.Hand, cost float64) *model.Partition {
	p := &model.Partition{
		Engine: engine,
		Notes:  sorted,
		Labels: labels,
		Left:   make(model.Notes, 0, len(sorted)),
		Right:  make(model.Notes, 0, len(sorted)),
		Cost:   cost,
	}
	if p.Labels == nil {
		p.Labels = []model.Hand{}
	}
	for i, n := range sorted {
		if labels[i] == model.Left {
			p.Left = append(p.Left, n)
		} else {
			p.Right = append(p.Right, n)
		}
	}
	return p
}
