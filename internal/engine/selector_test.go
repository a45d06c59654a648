package engine

import (
	"testing"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedInstances() []instance {
	in := makeInstances("american", 1.0, 1.2, true, 8, 0)
	in = append(in, makeInstances("european", 1.2, 0.8, false, 10, 8)...)
	in = append(in, makeInstances("crate", 0.6, 0.9, true, 12, 18)...)
	return append(in, makeInstances("american", 1.0, 1.2, false, 6, 30)...)
}

func panicking([]instance) []instance {
	panic("boom")
}

func TestSelectBest_ParallelMatchesSequential(t *testing.T) {
	in := mixedInstances()

	par, err := selectBest(model.DefaultTruck, in, defaultStrategies, true)
	require.NoError(t, err)
	seq, err := selectBest(model.DefaultTruck, in, defaultStrategies, false)
	require.NoError(t, err)

	assert.Equal(t, seq.winner, par.winner)
	assert.Equal(t, seq.outcomes, par.outcomes)
	require.Len(t, par.outcomes, len(defaultStrategies))
	for i, o := range par.outcomes {
		assert.Equal(t, defaultStrategies[i].name, o.Name)
		assert.False(t, o.Failed)
		assert.Equal(t, len(in), o.Placed+o.Unplaced)
	}
}

func TestSelectBest_WinnerHasBestUtilization(t *testing.T) {
	sel, err := selectBest(model.DefaultTruck, mixedInstances(), defaultStrategies, true)
	require.NoError(t, err)

	winnerUtil := sel.winner.result.utilization(model.DefaultTruck)
	for _, o := range sel.outcomes {
		assert.LessOrEqual(t, o.UtilizationPercent, utilizationPercent(winnerUtil*model.DefaultTruck.Area(), model.DefaultTruck))
	}
}

func TestSelectBest_Failures(t *testing.T) {
	in := makeInstances("american", 1.0, 1.2, true, 3, 0)
	dropping := func(in []instance) []instance { return in[:len(in)-1] }

	tests := []struct {
		name       string
		strategies []strategy
		winner     string
		failed     []bool
		expectErr  error
	}{
		{
			name: "panicking strategy is excluded",
			strategies: []strategy{
				{name: "broken", order: panicking},
				{name: StrategyInputOrder, order: inputOrder},
			},
			winner: StrategyInputOrder,
			failed: []bool{true, false},
		},
		{
			name: "strategy losing instances is excluded",
			strategies: []strategy{
				{name: "lossy", order: dropping},
				{name: StrategyAreaDesc, order: sortedBy(byAreaDesc)},
			},
			winner: StrategyAreaDesc,
			failed: []bool{true, false},
		},
		{
			name: "all strategies failing is an error",
			strategies: []strategy{
				{name: "broken", order: panicking},
				{name: "lossy", order: dropping},
			},
			failed:    []bool{true, true},
			expectErr: ErrAllStrategiesFailed,
		},
	}

	for _, tt := range tests {
		for _, parallel := range []bool{true, false} {
			t.Run(tt.name, func(t *testing.T) {
				sel, err := selectBest(model.DefaultTruck, in, tt.strategies, parallel)

				require.Len(t, sel.outcomes, len(tt.failed))
				for i, f := range tt.failed {
					assert.Equal(t, f, sel.outcomes[i].Failed)
					if f {
						assert.NotEmpty(t, sel.outcomes[i].Error)
					}
				}
				if tt.expectErr != nil {
					assert.ErrorIs(t, err, tt.expectErr)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.winner, sel.winner.strategy)
			})
		}
	}
}

func TestSelectBest_TieKeepsEvaluationOrder(t *testing.T) {
	strategies := []strategy{
		{name: "first", order: inputOrder},
		{name: "second", order: inputOrder},
	}

	sel, err := selectBest(model.DefaultTruck, makeInstances("american", 1.0, 1.2, true, 5, 0), strategies, true)

	require.NoError(t, err)
	assert.Equal(t, "first", sel.winner.strategy)
}

func TestBetter(t *testing.T) {
	truck := model.Truck{Width: 2, Length: 2}
	placed := func(n int) []placement { return make([]placement, n) }

	tests := []struct {
		name   string
		a, b   floorResult
		better bool
	}{
		{
			name:   "higher utilization wins",
			a:      floorResult{placed: placed(1), usedArea: 2},
			b:      floorResult{placed: placed(3), usedArea: 1},
			better: true,
		},
		{
			name:   "more placed wins on equal utilization",
			a:      floorResult{placed: placed(3), usedArea: 2},
			b:      floorResult{placed: placed(2), usedArea: 2},
			better: true,
		},
		{
			name:   "fewer unplaced non-stackable wins",
			a:      floorResult{placed: placed(2), usedArea: 2, unplaced: []instance{{stackable: true}}},
			b:      floorResult{placed: placed(2), usedArea: 2, unplaced: []instance{{stackable: false}}},
			better: true,
		},
		{
			name:   "identical results are a tie",
			a:      floorResult{placed: placed(2), usedArea: 2},
			b:      floorResult{placed: placed(2), usedArea: 2},
			better: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.better, better(truck, tt.a, tt.b))
		})
	}
}
