package engine

import (
	"fmt"
	"math"
	"runtime"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"golang.org/x/sync/errgroup"
)

// run is the outcome of one strategy evaluation.
type run struct {
	strategy string
	result   floorResult
	err      error
}

// selection is the winning floor layout plus the report of every run.
type selection struct {
	winner   run
	outcomes []model.StrategyOutcome
}

// selectBest evaluates every strategy on its own floor packer and returns the
// best layout. Runs are independent, so parallel and sequential evaluation
// give the same answer. A failing run is excluded from the comparison.
func selectBest(truck model.Truck, instances []instance, strategies []strategy, parallel bool) (selection, error) {
	runs := make([]run, len(strategies))

	if parallel && len(strategies) > 1 {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, s := range strategies {
			g.Go(func() error {
				runs[i] = evaluate(truck, instances, s)
				return nil
			})
		}
		// runs carry their own errors; Wait is the join point
		_ = g.Wait()
	} else {
		for i, s := range strategies {
			runs[i] = evaluate(truck, instances, s)
		}
	}

	sel := selection{outcomes: make([]model.StrategyOutcome, len(runs))}
	best := -1
	for i, r := range runs {
		sel.outcomes[i] = outcomeOf(truck, r)
		if r.err != nil {
			continue
		}
		if best < 0 || better(truck, r.result, runs[best].result) {
			best = i
		}
	}
	if best < 0 {
		return sel, fmt.Errorf("%w: %d runs", ErrAllStrategiesFailed, len(runs))
	}
	sel.winner = runs[best]
	return sel, nil
}

// evaluate runs a single strategy and keeps the better of its tie-break
// passes. Panics are turned into errors so that one broken run cannot take
// the request down.
func evaluate(truck model.Truck, instances []instance, s strategy) (r run) {
	r.strategy = s.name
	defer func() {
		if p := recover(); p != nil {
			r.result = floorResult{}
			r.err = fmt.Errorf("strategy %s panicked: %v", s.name, p)
		}
	}()

	ordered := s.order(instances)
	if len(ordered) != len(instances) {
		r.err = fmt.Errorf("%w: strategy %s reordered %d of %d instances",
			errBookkeeping, s.name, len(ordered), len(instances))
		return r
	}
	// one pass per tie-break, so swapping width and length cannot change the utilization
	for i, tb := range tieBreaks {
		res, err := packFloor(truck, ordered, tb)
		if err != nil {
			r.result = floorResult{}
			r.err = fmt.Errorf("strategy %s (%s): %w", s.name, tb, err)
			return r
		}
		if i == 0 || better(truck, res, r.result) {
			r.result = res
		}
	}
	return r
}

// better reports whether a beats b: higher utilization, then more placed
// instances, then fewer non-stackable instances left behind.
func better(truck model.Truck, a, b floorResult) bool {
	ua, ub := a.utilization(truck), b.utilization(truck)
	if math.Abs(ua-ub) > eps {
		return ua > ub
	}
	if len(a.placed) != len(b.placed) {
		return len(a.placed) > len(b.placed)
	}
	return a.unplacedNonStackable() < b.unplacedNonStackable()
}

func outcomeOf(truck model.Truck, r run) model.StrategyOutcome {
	if r.err != nil {
		return model.StrategyOutcome{Name: r.strategy, Failed: true, Error: r.err.Error()}
	}
	return model.StrategyOutcome{
		Name:               r.strategy,
		UtilizationPercent: utilizationPercent(r.result.usedArea, truck),
		Placed:             len(r.result.placed),
		Unplaced:           len(r.result.unplaced),
	}
}
