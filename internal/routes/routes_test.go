package routes

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlanner_SwapsStrategyWithoutCallerChanges(t *testing.T) {
	planner, err := NewPlanner(Driving{})
	require.NoError(t, err)

	ctx := context.Background()

	driving, err := planner.Plan(ctx, "Home", "Office")
	require.NoError(t, err)
	require.Equal(t, "driving", driving.Mode)
	require.Contains(t, driving.Description, "Home")
	require.Contains(t, driving.Description, "Office")

	require.NoError(t, planner.SetStrategy(Walking{}))

	walking, err := planner.Plan(ctx, "Home", "Office")
	require.NoError(t, err)
	require.Equal(t, "walking", walking.Mode)
	require.Contains(t, walking.Description, "Home")
	require.Contains(t, walking.Description, "Office")
	require.NotEqual(t, driving.Description, walking.Description)
}

func TestPlanner_RejectsNilCalculator(t *testing.T) {
	_, err := NewPlanner(nil)
	require.Error(t, err)

	planner, err := NewPlanner(Cycling{})
	require.NoError(t, err)
	require.Error(t, planner.SetStrategy(nil))

	// The failed rebind left the previous binding in effect.
	route, err := planner.Plan(context.Background(), "A", "B")
	require.NoError(t, err)
	require.Equal(t, "cycling", route.Mode)
}

func TestPlanner_ForwardingIsTransparent(t *testing.T) {
	for _, calc := range []Calculator{Driving{}, Walking{}, Cycling{}} {
		planner, err := NewPlanner(calc)
		require.NoError(t, err)

		ctx := context.Background()
		direct, err := calc.Calculate(ctx, "Dock", "Summit")
		require.NoError(t, err)

		dispatched, err := planner.Plan(ctx, "Dock", "Summit")
		require.NoError(t, err)
		require.Equal(t, direct, dispatched)
	}
}

func TestCalculators_BlankEndpointsYieldEmptyDescription(t *testing.T) {
	ctx := context.Background()
	for _, calc := range []Calculator{Driving{}, Walking{}, Cycling{}} {
		route, err := calc.Calculate(ctx, "", "Office")
		require.NoError(t, err)
		require.Empty(t, route.Description)

		route, err = calc.Calculate(ctx, "Home", "   ")
		require.NoError(t, err)
		require.Empty(t, route.Description)
	}
}

// countingCalculator counts how many times it is actually consulted.
type countingCalculator struct {
	calls atomic.Int64
	inner Calculator
	err   error
}

func (c *countingCalculator) Calculate(ctx context.Context, start, end string) (Route, error) {
	c.calls.Add(1)
	if c.err != nil {
		return Route{}, c.err
	}
	return c.inner.Calculate(ctx, start, end)
}

func TestCached_ServesRepeatsFromCache(t *testing.T) {
	counting := &countingCalculator{inner: Driving{}}
	cached := NewCached(counting, time.Minute)

	ctx := context.Background()

	first, err := cached.Calculate(ctx, "Home", "Office")
	require.NoError(t, err)

	second, err := cached.Calculate(ctx, "Home", "Office")
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, int64(1), counting.calls.Load())

	// A different endpoint pair is a different key.
	_, err = cached.Calculate(ctx, "Home", "Gym")
	require.NoError(t, err)
	require.Equal(t, int64(2), counting.calls.Load())
}

func TestCached_DoesNotCacheErrors(t *testing.T) {
	boom := errors.New("no map data")
	counting := &countingCalculator{inner: Driving{}, err: boom}
	cached := NewCached(counting, time.Minute)

	ctx := context.Background()

	_, err := cached.Calculate(ctx, "Home", "Office")
	require.ErrorIs(t, err, boom)

	_, err = cached.Calculate(ctx, "Home", "Office")
	require.ErrorIs(t, err, boom)
	require.Equal(t, int64(2), counting.calls.Load())
}

func TestCached_BindsAsOrdinaryVariant(t *testing.T) {
	planner, err := NewPlanner(Walking{})
	require.NoError(t, err)

	require.NoError(t, planner.SetStrategy(NewCached(Walking{}, time.Minute)))

	route, err := planner.Plan(context.Background(), "Home", "Office")
	require.NoError(t, err)
	require.Equal(t, "walking", route.Mode)
}
