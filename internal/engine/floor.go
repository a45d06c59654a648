package engine

import (
	"github.com/guttosm/truckload-service/internal/domain/model"
)

// instance is one physical box to load, expanded from a request line.
type instance struct {
	seq       int // position in the expanded request order
	line      int // index of the originating request line
	typeID    string
	w, l      float64
	stackable bool
}

func (in instance) area() float64 {
	return in.w * in.l
}

func (in instance) longSide() float64 {
	return max(in.w, in.l)
}

func (in instance) shortSide() float64 {
	return min(in.w, in.l)
}

// placement is a floor box produced by the floor packer.
type placement struct {
	inst    instance
	rect    Rect
	rotated bool
}

// floorResult is the outcome of one floor packing run.
type floorResult struct {
	placed   []placement
	unplaced []instance
	usedArea float64
}

// utilization returns covered area over floor area, in [0, 1].
func (r floorResult) utilization(truck model.Truck) float64 {
	if truck.Area() <= 0 {
		return 0
	}
	return r.usedArea / truck.Area()
}

// unplacedNonStackable counts left-over instances that cannot be rescued by
// a same-type stackable base later on.
func (r floorResult) unplacedNonStackable() int {
	n := 0
	for _, in := range r.unplaced {
		if !in.stackable {
			n++
		}
	}
	return n
}

// packFloor places instances greedily in the given order. An instance that
// does not fit when its turn comes is never retried.
func packFloor(truck model.Truck, instances []instance, tb tieBreak) (floorResult, error) {
	fs := newFreeSpace(truck)
	res := floorResult{
		placed:   make([]placement, 0, len(instances)),
		unplaced: make([]instance, 0),
	}

	for _, in := range instances {
		c, ok := bestCandidate(fs, in.w, in.l, tb)
		if !ok {
			res.unplaced = append(res.unplaced, in)
			continue
		}
		fp := c.footprint()
		if err := fs.Commit(fp); err != nil {
			return floorResult{}, err
		}
		res.placed = append(res.placed, placement{inst: in, rect: fp, rotated: c.rotated})
		res.usedArea += fp.Area()
	}
	return res, nil
}
