//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDependency = errors.New("dependency down")

// fakeClock lets tests move time without sleeping.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestBreaker(failures, successes int) (*CircuitBreaker, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	cb := New(Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          time.Minute,
		Name:             "test",
	})
	cb.now = clock.now
	return cb, clock
}

func fail() error    { return errDependency }
func succeed() error { return nil }

func TestCircuitBreaker_Execute_Success(t *testing.T) {
	cb := New(DefaultConfig())

	err := cb.Execute(context.Background(), succeed)

	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(2, 1)
	ctx := context.Background()

	assert.ErrorIs(t, cb.Execute(ctx, fail), errDependency)
	assert.Equal(t, StateClosed, cb.State())

	assert.ErrorIs(t, cb.Execute(ctx, fail), errDependency)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _ := newTestBreaker(2, 1)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, succeed)
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, 1, cb.GetStats().FailureCount)
}

func TestCircuitBreaker_Recovery(t *testing.T) {
	tests := []struct {
		name     string
		trials   []func() error
		expected State
	}{
		{name: "one success stays half-open", trials: []func() error{succeed}, expected: StateHalfOpen},
		{name: "enough successes close", trials: []func() error{succeed, succeed}, expected: StateClosed},
		{name: "failure reopens", trials: []func() error{fail}, expected: StateOpen},
		{name: "failure after success reopens", trials: []func() error{succeed, fail}, expected: StateOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb, clock := newTestBreaker(2, 2)
			ctx := context.Background()
			_ = cb.Execute(ctx, fail)
			_ = cb.Execute(ctx, fail)
			require.Equal(t, StateOpen, cb.State())

			clock.advance(30 * time.Second)
			require.ErrorIs(t, cb.Execute(ctx, succeed), ErrCircuitOpen)

			clock.advance(31 * time.Second)
			for _, trial := range tt.trials {
				_ = cb.Execute(ctx, trial)
			}

			assert.Equal(t, tt.expected, cb.State())
		})
	}
}

func TestCircuitBreaker_ContextHandling(t *testing.T) {
	t.Run("done context is not executed", func(t *testing.T) {
		cb, _ := newTestBreaker(1, 1)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := cb.Execute(ctx, func() error {
			called = true
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("cancellation is not a failure", func(t *testing.T) {
		cb, _ := newTestBreaker(1, 1)

		err := cb.Execute(context.Background(), func() error {
			return context.Canceled
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateClosed, cb.State())
	})
}

func TestDo(t *testing.T) {
	cb, _ := newTestBreaker(1, 1)

	v, err := Do(context.Background(), cb, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Do(context.Background(), cb, func() (int, error) { return 0, errDependency })
	assert.ErrorIs(t, err, errDependency)

	v, err = Do(context.Background(), cb, func() (int, error) { return 7, nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Zero(t, v)
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	clock := &fakeClock{t: time.Now()}
	cb := New(Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Second,
		Name:             "plans",
		OnStateChange: func(name string, from, to State) {
			transitions = append(transitions, name+":"+from.String()+"->"+to.String())
		},
	})
	cb.now = clock.now

	_ = cb.Execute(context.Background(), fail)
	clock.advance(2 * time.Second)
	_ = cb.Execute(context.Background(), succeed)

	assert.Equal(t, []string{
		"plans:closed->open",
		"plans:open->half-open",
		"plans:half-open->closed",
	}, transitions)
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "circuit-breaker", stats.Name)
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = cb.Execute(context.Background(), fail)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestNew_NormalizesThresholds(t *testing.T) {
	cb := New(Config{Name: "zero"})

	_ = cb.Execute(context.Background(), fail)

	assert.True(t, cb.IsOpen())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "circuit-breaker", config.Name)
}
