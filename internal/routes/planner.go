package routes

import (
	"context"

	"github.com/zjrosen/switchboard/internal/dispatch"
	"github.com/zjrosen/switchboard/internal/log"
)

// Planner is the route-calculation context: it holds a dispatcher bound to
// the current Calculator and forwards every request to it. The planner never
// inspects which concrete calculator is bound.
type Planner struct {
	strategy *dispatch.Dispatcher[Calculator]
}

// NewPlanner creates a planner bound to an initial calculator.
func NewPlanner(initial Calculator) (*Planner, error) {
	d, err := dispatch.New(initial)
	if err != nil {
		return nil, err
	}
	return &Planner{strategy: d}, nil
}

// SetStrategy rebinds the planner to a different calculator. Requests
// already in flight finish on the calculator they started with.
func (p *Planner) SetStrategy(c Calculator) error {
	if err := p.strategy.Rebind(c); err != nil {
		return err
	}
	log.Debug(log.CatRoutes, "strategy changed", "calculator", typeName(c))
	return nil
}

// Plan forwards to the currently bound calculator and returns its result
// unchanged.
func (p *Planner) Plan(ctx context.Context, start, end string) (Route, error) {
	return p.strategy.Current().Calculate(ctx, start, end)
}
