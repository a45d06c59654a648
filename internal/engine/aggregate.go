package engine

import (
	"github.com/guttosm/truckload-service/internal/domain/model"
)

// UtilizationPrecision is the number of decimal places utilization is rounded to.
const UtilizationPrecision = 1

// utilizationPercent converts covered floor area into a rounded percentage
// clamped to [0, 100].
func utilizationPercent(floorArea float64, truck model.Truck) float64 {
	if truck.Area() <= 0 || floorArea <= 0 {
		return 0
	}
	pct := roundTo(100*floorArea/truck.Area(), UtilizationPrecision)
	return min(pct, 100)
}

type shortfallKey struct {
	typeID    string
	stackable bool
}

// summary is the aggregated part of a load plan.
type summary struct {
	stats     model.Stats
	shortfall []model.Shortfall
	types     []model.TypeSummary
}

// summarize derives statistics, per (type, stackable) shortfall and per type
// breakdown from the final placements. rejected counts instances refused
// before packing; they are reported as not placed.
func summarize(truck model.Truck, placed []model.PlacedBox, unplaced []instance, rejected int, lines []model.BoxLine) summary {
	var s summary
	floorArea := 0.0
	for _, p := range placed {
		if p.Stacked {
			s.stats.StackedCount++
			continue
		}
		s.stats.FloorCount++
		floorArea += p.Area()
	}
	s.stats.TotalPlaced = len(placed)
	s.stats.NotPlaced = len(unplaced) + rejected
	s.stats.UtilizationPercent = utilizationPercent(floorArea, truck)

	var keys []shortfallKey
	requested := make(map[shortfallKey]int)
	var typeOrder []string
	types := make(map[string]*model.TypeSummary)
	for _, l := range lines {
		k := shortfallKey{typeID: l.BoxTypeID, stackable: l.Stackable}
		if _, ok := requested[k]; !ok {
			keys = append(keys, k)
		}
		requested[k] += max(l.Count, 0)
		s.stats.TotalRequested += max(l.Count, 0)

		t, ok := types[l.BoxTypeID]
		if !ok {
			t = &model.TypeSummary{
				BoxTypeID: l.BoxTypeID,
				Name:      l.Name,
				Width:     l.Width,
				Length:    l.Length,
			}
			types[l.BoxTypeID] = t
			typeOrder = append(typeOrder, l.BoxTypeID)
		}
		t.Requested += max(l.Count, 0)
	}

	placedBy := make(map[shortfallKey]int)
	for _, p := range placed {
		placedBy[shortfallKey{typeID: p.BoxTypeID, stackable: p.Stackable}]++
		if t, ok := types[p.BoxTypeID]; ok {
			if p.Stacked {
				t.Stacked++
			} else {
				t.Floor++
			}
		}
	}

	s.shortfall = make([]model.Shortfall, 0, len(keys))
	for _, k := range keys {
		req, got := requested[k], placedBy[k]
		s.shortfall = append(s.shortfall, model.Shortfall{
			BoxTypeID: k.typeID,
			Stackable: k.stackable,
			Requested: req,
			Placed:    got,
			Missing:   max(req-got, 0),
		})
	}

	s.types = make([]model.TypeSummary, 0, len(typeOrder))
	for _, id := range typeOrder {
		s.types = append(s.types, *types[id])
	}
	return s
}
