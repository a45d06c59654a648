package engine

import (
	"slices"

	"github.com/guttosm/truckload-service/internal/domain/model"
)

// stack puts left-over instances on top of same-type stackable floor boxes,
// one box per base and never above the second layer. Instances are served in
// request order and take the first free base of their type.
func stack(placed []model.PlacedBox, unplaced []instance) ([]model.PlacedBox, []instance) {
	targets := make(map[string][]int)
	for i, p := range placed {
		if p.Stacked || !p.Stackable {
			continue
		}
		targets[p.BoxTypeID] = append(targets[p.BoxTypeID], i)
	}

	pending := slices.Clone(unplaced)
	slices.SortStableFunc(pending, func(a, b instance) int { return a.seq - b.seq })

	out := make([]model.PlacedBox, len(placed), len(placed)+len(pending))
	copy(out, placed)
	still := make([]instance, 0, len(pending))
	for _, in := range pending {
		queue := targets[in.typeID]
		if len(queue) == 0 {
			still = append(still, in)
			continue
		}
		baseIdx := queue[0]
		targets[in.typeID] = queue[1:]

		base := placed[baseIdx]
		out = append(out, model.PlacedBox{
			BoxTypeID:    in.typeID,
			X:            base.X,
			Y:            base.Y,
			W:            base.W,
			H:            base.H,
			Stackable:    in.stackable,
			Rotated:      base.Rotated,
			Stacked:      true,
			SupportIndex: baseIdx,
		})
	}
	return out, still
}
