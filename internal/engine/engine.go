package engine

import (
	"fmt"

	"github.com/guttosm/truckload-service/internal/domain/model"
)

// coordinatePrecision is the number of decimals kept on output coordinates.
const coordinatePrecision = 6

// Option configures an Engine.
type Option func(*Engine)

// Engine packs box requests onto a truck floor. An Engine only holds
// configuration and is safe for concurrent use.
type Engine struct {
	maxBoxSide float64
	sequential bool
	strategies []strategy
}

// New creates an Engine evaluating the six built-in strategies in parallel.
func New(opts ...Option) *Engine {
	e := &Engine{strategies: defaultStrategies}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithMaxBoxSide rejects boxes with a side longer than limit as invalid.
// A limit of zero or less disables the check.
func WithMaxBoxSide(limit float64) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.maxBoxSide = limit
		}
	}
}

// WithSequential evaluates strategies one after another on the calling goroutine.
func WithSequential(sequential bool) Option {
	return func(e *Engine) {
		e.sequential = sequential
	}
}

// Optimize computes a load plan for req.
//
// Invalid truck dimensions and negative counts fail the whole request.
// Lines with invalid or oversized boxes are reported as rejected and counted
// as not placed. Every requested box ends up exactly once on the floor,
// stacked, or not placed.
func (e *Engine) Optimize(req model.LoadRequest) (model.LoadPlan, error) {
	truck := req.Truck
	if !validLength(truck.Width) || !validLength(truck.Length) {
		return model.LoadPlan{}, fmt.Errorf("%w: %gx%g", ErrInvalidTruckDimensions, truck.Width, truck.Length)
	}
	for i, l := range req.Lines {
		if l.Count < 0 {
			return model.LoadPlan{}, fmt.Errorf("%w: line %d (%s) requests %d", ErrNegativeCount, i, l.BoxTypeID, l.Count)
		}
	}

	plan := model.EmptyPlan(truck)
	instances, rejections, rejected := e.expand(truck, req.Lines)
	plan.Rejected = rejections

	var floor []model.PlacedBox
	var leftover []instance
	if len(instances) > 0 {
		sel, err := selectBest(truck, instances, e.strategies, !e.sequential)
		plan.Strategies = sel.outcomes
		if err != nil {
			return plan, err
		}
		plan.Strategy = sel.winner.strategy
		floor = toPlaced(sel.winner.result.placed)
		leftover = sel.winner.result.unplaced
	}

	placed, still := stack(floor, leftover)
	sum := summarize(truck, placed, still, rejected, req.Lines)

	plan.Placed = placed
	plan.Stats = sum.stats
	plan.Shortfall = sum.shortfall
	plan.Types = sum.types
	return plan, nil
}

// CheckLine classifies a request line against the truck and the configured
// bounds. It returns nil, ErrInvalidBoxDimensions or ErrOversizedBox.
func (e *Engine) CheckLine(truck model.Truck, l model.BoxLine) error {
	if !validLength(l.Width) || !validLength(l.Length) {
		return fmt.Errorf("%w: %s is %gx%g", ErrInvalidBoxDimensions, l.BoxTypeID, l.Width, l.Length)
	}
	if e.maxBoxSide > 0 && (l.Width > e.maxBoxSide+eps || l.Length > e.maxBoxSide+eps) {
		return fmt.Errorf("%w: %s exceeds maximum side %g", ErrInvalidBoxDimensions, l.BoxTypeID, e.maxBoxSide)
	}
	floor := Rect{W: truck.Width, H: truck.Length}
	if !floor.Fits(l.Width, l.Length) && !floor.Fits(l.Length, l.Width) {
		return fmt.Errorf("%w: %s is %gx%g", ErrOversizedBox, l.BoxTypeID, l.Width, l.Length)
	}
	return nil
}

// expand turns request lines into box instances. Lines that can never be
// placed are not expanded; they are returned as rejections instead. The
// first accepted line of a type fixes its footprint, later lines of the same
// type with other dimensions are rejected.
func (e *Engine) expand(truck model.Truck, lines []model.BoxLine) ([]instance, []model.Rejection, int) {
	var (
		instances  []instance
		rejections []model.Rejection
		rejected   int
		seq        int
	)
	footprints := make(map[string][2]float64)
	for i, l := range lines {
		if l.Count == 0 {
			continue
		}
		err := e.CheckLine(truck, l)
		if err == nil {
			if fp, ok := footprints[l.BoxTypeID]; ok && fp != [2]float64{l.Width, l.Length} {
				err = fmt.Errorf("%w: %s is %gx%g, earlier line has %gx%g",
					ErrInvalidBoxDimensions, l.BoxTypeID, l.Width, l.Length, fp[0], fp[1])
			}
		}
		if err != nil {
			rejections = append(rejections, model.Rejection{
				BoxTypeID: l.BoxTypeID,
				Stackable: l.Stackable,
				Count:     l.Count,
				Reason:    RejectionReason(err),
			})
			rejected += l.Count
			seq += l.Count
			continue
		}
		footprints[l.BoxTypeID] = [2]float64{l.Width, l.Length}
		for range l.Count {
			instances = append(instances, instance{
				seq:       seq,
				line:      i,
				typeID:    l.BoxTypeID,
				w:         l.Width,
				l:         l.Length,
				stackable: l.Stackable,
			})
			seq++
		}
	}
	return instances, rejections, rejected
}

// toPlaced converts floor placements into output boxes in placement order.
func toPlaced(ps []placement) []model.PlacedBox {
	out := make([]model.PlacedBox, len(ps))
	for i, p := range ps {
		out[i] = model.PlacedBox{
			BoxTypeID:    p.inst.typeID,
			X:            roundTo(p.rect.X, coordinatePrecision),
			Y:            roundTo(p.rect.Y, coordinatePrecision),
			W:            roundTo(p.rect.W, coordinatePrecision),
			H:            roundTo(p.rect.H, coordinatePrecision),
			Stackable:    p.inst.stackable,
			Rotated:      p.rotated,
			SupportIndex: -1,
		}
	}
	return out
}
