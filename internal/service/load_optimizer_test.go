//go:build !integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/truckload-service/internal/domain/model"
	"github.com/guttosm/truckload-service/internal/engine"
	"github.com/guttosm/truckload-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func americanRequest(count int) model.LoadRequest {
	return model.LoadRequest{
		Truck: model.DefaultTruck,
		Lines: []model.BoxLine{model.American.Line(true, count)},
	}
}

func TestNewLoadOptimizerService(t *testing.T) {
	tests := []struct {
		name     string
		options  []Option
		validate func(*testing.T, *LoadOptimizerService)
	}{
		{
			name: "defaults",
			validate: func(t *testing.T, svc *LoadOptimizerService) {
				assert.NotNil(t, svc.engine)
				assert.Nil(t, svc.cache)
				assert.Equal(t, model.DefaultTruck, svc.DefaultTruck())
			},
		},
		{
			name:    "custom truck",
			options: []Option{WithDefaultTruck(model.Truck{Width: 2.45, Length: 7.7})},
			validate: func(t *testing.T, svc *LoadOptimizerService) {
				assert.Equal(t, model.Truck{Width: 2.45, Length: 7.7}, svc.DefaultTruck())
			},
		},
		{
			name:    "enables cache with option",
			options: []Option{WithCache(100, time.Minute)},
			validate: func(t *testing.T, svc *LoadOptimizerService) {
				assert.IsType(t, &ShardedCache{}, svc.cache)
			},
		},
		{
			name:    "zero capacity keeps cache disabled",
			options: []Option{WithCache(0, time.Minute)},
			validate: func(t *testing.T, svc *LoadOptimizerService) {
				assert.Nil(t, svc.cache)
			},
		},
		{
			name:    "nil engine is ignored",
			options: []Option{WithEngine(nil)},
			validate: func(t *testing.T, svc *LoadOptimizerService) {
				assert.NotNil(t, svc.engine)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewLoadOptimizerService(tt.options...)
			defer svc.Stop()
			tt.validate(t, svc)
		})
	}
}

func TestLoadOptimizerService_Optimize(t *testing.T) {
	svc := NewLoadOptimizerService(WithEngine(engine.New(engine.WithSequential(true))))

	plan, err := svc.Optimize(context.Background(), americanRequest(10))

	require.NoError(t, err)
	assert.Equal(t, 10, plan.Stats.TotalPlaced)
	assert.Equal(t, 10, plan.Stats.FloorCount)
	assert.Equal(t, 37.9, plan.Stats.UtilizationPercent)
	assert.Len(t, plan.Strategies, len(engine.StrategyNames()))
}

func TestLoadOptimizerService_Errors(t *testing.T) {
	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	canceled, cancel2 := context.WithCancel(context.Background())
	cancel2()

	tests := []struct {
		name    string
		ctx     context.Context
		request model.LoadRequest
		wantErr error
	}{
		{
			name:    "invalid truck",
			ctx:     context.Background(),
			request: model.LoadRequest{Truck: model.Truck{Width: 0, Length: 13.2}},
			wantErr: engine.ErrInvalidTruckDimensions,
		},
		{
			name: "negative count",
			ctx:  context.Background(),
			request: model.LoadRequest{
				Truck: model.DefaultTruck,
				Lines: []model.BoxLine{model.European.Line(false, -1)},
			},
			wantErr: engine.ErrNegativeCount,
		},
		{
			name:    "deadline already passed",
			ctx:     expired,
			request: americanRequest(1),
			wantErr: context.DeadlineExceeded,
		},
		{
			name:    "canceled",
			ctx:     canceled,
			request: americanRequest(1),
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache := mocks.NewMockCache(t)
			if tt.ctx.Err() == nil {
				mockCache.On("Get", Fingerprint(tt.request)).Return(model.LoadPlan{}, false)
			}
			svc := NewLoadOptimizerService(WithCacheInterface(mockCache))

			_, err := svc.Optimize(tt.ctx, tt.request)

			assert.ErrorIs(t, err, tt.wantErr)
			mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		})
	}
}

func TestLoadOptimizerService_Cache(t *testing.T) {
	req := americanRequest(4)
	key := Fingerprint(req)

	t.Run("hit skips the engine", func(t *testing.T) {
		cached := model.LoadPlan{Strategy: "from-cache"}
		mockCache := mocks.NewMockCache(t)
		mockCache.On("Get", key).Return(cached, true).Once()
		svc := NewLoadOptimizerService(WithCacheInterface(mockCache))

		plan, err := svc.Optimize(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, cached, plan)
	})

	t.Run("miss stores the plan", func(t *testing.T) {
		mockCache := mocks.NewMockCache(t)
		mockCache.On("Get", key).Return(model.LoadPlan{}, false).Once()
		mockCache.On("Set", key, mock.MatchedBy(func(p model.LoadPlan) bool {
			return p.Stats.TotalPlaced == 4
		})).Once()
		svc := NewLoadOptimizerService(WithCacheInterface(mockCache))

		plan, err := svc.Optimize(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 4, plan.Stats.TotalPlaced)
	})

	t.Run("real cache returns identical plan", func(t *testing.T) {
		svc := NewLoadOptimizerService(WithCache(16, time.Minute))
		defer svc.Stop()

		first, err := svc.Optimize(context.Background(), req)
		require.NoError(t, err)
		second, err := svc.Optimize(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		svc.InvalidateCache()
		m := svc.cache.(*ShardedCache).Metrics()
		assert.Zero(t, m.Size)
	})

	t.Run("renamed type is not served from cache", func(t *testing.T) {
		svc := NewLoadOptimizerService(WithCache(256, time.Minute))
		defer svc.Stop()
		crate := func(name string) model.LoadRequest {
			return model.LoadRequest{
				Truck: model.DefaultTruck,
				Lines: []model.BoxLine{{BoxTypeID: "crate", Name: name, Width: 1, Length: 1, Count: 2}},
			}
		}

		first, err := svc.Optimize(context.Background(), crate("Crate"))
		require.NoError(t, err)
		second, err := svc.Optimize(context.Background(), crate("Wooden crate"))
		require.NoError(t, err)

		require.Len(t, first.Types, 1)
		require.Len(t, second.Types, 1)
		assert.Equal(t, "Crate", first.Types[0].Name)
		assert.Equal(t, "Wooden crate", second.Types[0].Name)
		assert.Equal(t, 2, svc.cache.(*ShardedCache).Metrics().Size)
	})

	t.Run("invalidate clears cache", func(t *testing.T) {
		mockCache := mocks.NewMockCache(t)
		mockCache.On("Clear").Once()
		svc := NewLoadOptimizerService(WithCacheInterface(mockCache))

		svc.InvalidateCache()
	})

	t.Run("invalidate without cache is a no-op", func(t *testing.T) {
		svc := NewLoadOptimizerService()
		assert.NotPanics(t, svc.InvalidateCache)
	})
}

func TestFingerprint(t *testing.T) {
	base := model.LoadRequest{
		Truck: model.DefaultTruck,
		Lines: []model.BoxLine{model.American.Line(true, 10), model.European.Line(false, 3)},
	}
	clone := func(mutate func(*model.LoadRequest)) model.LoadRequest {
		r := base
		r.Lines = append([]model.BoxLine(nil), base.Lines...)
		mutate(&r)
		return r
	}

	tests := []struct {
		name  string
		other model.LoadRequest
		same  bool
	}{
		{name: "identical", other: clone(func(*model.LoadRequest) {}), same: true},
		{name: "display name", other: clone(func(r *model.LoadRequest) { r.Lines[0].Name = "Other" }), same: false},
		{name: "name and type id do not run together", other: clone(func(r *model.LoadRequest) {
			r.Lines[0].BoxTypeID, r.Lines[0].Name = r.Lines[0].BoxTypeID+r.Lines[0].Name, ""
		}), same: false},
		{name: "count", other: clone(func(r *model.LoadRequest) { r.Lines[0].Count = 11 }), same: false},
		{name: "stackability", other: clone(func(r *model.LoadRequest) { r.Lines[1].Stackable = true }), same: false},
		{name: "dimensions", other: clone(func(r *model.LoadRequest) { r.Lines[1].Width = 1.21 }), same: false},
		{name: "truck", other: clone(func(r *model.LoadRequest) { r.Truck.Length = 13.6 }), same: false},
		{name: "line order", other: clone(func(r *model.LoadRequest) {
			r.Lines[0], r.Lines[1] = r.Lines[1], r.Lines[0]
		}), same: false},
		{name: "type id", other: clone(func(r *model.LoadRequest) { r.Lines[0].BoxTypeID = "american2" }), same: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, Fingerprint(base) == Fingerprint(tt.other))
		})
	}
}

func TestFingerprintString(t *testing.T) {
	assert.Equal(t, "00000000000000ff", FingerprintString(255))
	assert.Len(t, FingerprintString(Fingerprint(americanRequest(1))), 16)
}
