package engine

import (
	"cmp"
	"slices"
)

// Strategy names, in evaluation order. The evaluation order is the final
// tie-break between equally good layouts.
const (
	StrategyAreaDesc        = "area_desc"
	StrategyLongSideDesc    = "long_side_desc"
	StrategyShortSideDesc   = "short_side_desc"
	StrategyGroupedByType   = "grouped_by_type"
	StrategyInputOrder      = "input_order"
	StrategyStackInterleave = "stack_interleave"
)

// strategy is a deterministic ordering of box instances fed to the floor packer.
type strategy struct {
	name  string
	order func([]instance) []instance
}

// defaultStrategies is the closed set of orderings evaluated per request.
var defaultStrategies = []strategy{
	{name: StrategyAreaDesc, order: sortedBy(byAreaDesc)},
	{name: StrategyLongSideDesc, order: sortedBy(byLongSideDesc)},
	{name: StrategyShortSideDesc, order: sortedBy(byShortSideDesc)},
	{name: StrategyGroupedByType, order: groupedByType},
	{name: StrategyInputOrder, order: inputOrder},
	{name: StrategyStackInterleave, order: stackInterleave},
}

// StrategyNames returns the names of the evaluated strategies in evaluation order.
func StrategyNames() []string {
	names := make([]string, len(defaultStrategies))
	for i, s := range defaultStrategies {
		names[i] = s.name
	}
	return names
}

func byAreaDesc(a, b instance) int {
	return cmp.Compare(b.area(), a.area())
}

func byLongSideDesc(a, b instance) int {
	return cmp.Compare(b.longSide(), a.longSide())
}

func byShortSideDesc(a, b instance) int {
	return cmp.Compare(b.shortSide(), a.shortSide())
}

// sortedBy returns a stable sort over a copy of the input.
func sortedBy(fn func(a, b instance) int) func([]instance) []instance {
	return func(in []instance) []instance {
		out := slices.Clone(in)
		slices.SortStableFunc(out, fn)
		return out
	}
}

func inputOrder(in []instance) []instance {
	return slices.Clone(in)
}

type groupKey struct {
	typeID    string
	stackable bool
}

// groupedByType keeps instances of the same type and stackability together.
// Groups appear in first-seen order and keep input order inside.
func groupedByType(in []instance) []instance {
	var keys []groupKey
	groups := make(map[groupKey][]instance)
	for _, it := range in {
		k := groupKey{typeID: it.typeID, stackable: it.stackable}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], it)
	}

	out := make([]instance, 0, len(in))
	for _, k := range keys {
		out = append(out, groups[k]...)
	}
	return out
}

// stackInterleave walks types in first-seen order and alternates their
// non-stackable and stackable instances, non-stackable first.
func stackInterleave(in []instance) []instance {
	var types []string
	seen := make(map[string]bool)
	plain := make(map[string][]instance)
	stackable := make(map[string][]instance)
	for _, it := range in {
		if !seen[it.typeID] {
			seen[it.typeID] = true
			types = append(types, it.typeID)
		}
		if it.stackable {
			stackable[it.typeID] = append(stackable[it.typeID], it)
		} else {
			plain[it.typeID] = append(plain[it.typeID], it)
		}
	}

	out := make([]instance, 0, len(in))
	for _, id := range types {
		ns, s := plain[id], stackable[id]
		for i := 0; i < max(len(ns), len(s)); i++ {
			if i < len(ns) {
				out = append(out, ns[i])
			}
			if i < len(s) {
				out = append(out, s[i])
			}
		}
	}
	return out
}
