//go:build unit

package queries

import (
	"context"
	"testing"
	"time"

	"parkhaus/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalyticsReadStore struct{ mock.Mock }

func (m *mockAnalyticsReadStore) PaidRevenueSince(ctx context.Context, cutoff time.Time) (float64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsReadStore) CountVehiclesByColor(ctx context.Context, color string, activeOnly bool) (int64, error) {
	args := m.Called(ctx, color, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsReadStore) ActiveSessionCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsReadStore) DailyEntryAverageSince(ctx context.Context, cutoff time.Time) (float64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsReadStore) PaidTotalsSince(ctx context.Context, cutoff time.Time) (float64, int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

func (m *mockAnalyticsReadStore) AverageDurationByColor(ctx context.Context, color string) (float64, error) {
	args := m.Called(ctx, color)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsReadStore) RevenueByDaySince(ctx context.Context, cutoff time.Time) ([]DayRevenue, error) {
	args := m.Called(ctx, cutoff)
	if v := args.Get(0); v != nil {
		return v.([]DayRevenue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsReadStore) BrandDistribution(ctx context.Context, activeOnly bool) ([]BrandCount, error) {
	args := m.Called(ctx, activeOnly)
	if v := args.Get(0); v != nil {
		return v.([]BrandCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsReadStore) FloorDistribution(ctx context.Context, activeOnly bool) ([]FloorCount, error) {
	args := m.Called(ctx, activeOnly)
	if v := args.Get(0); v != nil {
		return v.([]FloorCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsReadStore) HourlyOccupancy(ctx context.Context) ([]HourOccupancy, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]HourOccupancy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsReadStore) EntriesSince(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsReadStore) AverageDurationCompletedSince(ctx context.Context, dayStart time.Time) (float64, error) {
	args := m.Called(ctx, dayStart)
	return args.Get(0).(float64), args.Error(1)
}

var analyticsNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func newAnalyticsFixture() (*mockAnalyticsReadStore, AnalyticsQueries) {
	store := &mockAnalyticsReadStore{}
	return store, NewAnalyticsQueries(store, clock.NewMockClock(analyticsNow))
}

func TestRevenueLastHours(t *testing.T) {
	ctx := context.Background()

	t.Run("cutoff is now minus the window", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("PaidRevenueSince", ctx, analyticsNow.Add(-24*time.Hour)).Return(125.5, nil)

		got, err := q.RevenueLastHours(ctx, 24)

		require.NoError(t, err)
		assert.InDelta(t, 125.50, got, 1e-9)
		store.AssertExpectations(t)
	})

	t.Run("empty window yields zero", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("PaidRevenueSince", ctx, mock.Anything).Return(0.0, nil)

		got, err := q.RevenueLastHours(ctx, 1)

		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestAverageDailySpending(t *testing.T) {
	ctx := context.Background()

	t.Run("revenue over distinct paying vehicles, rounded", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("PaidTotalsSince", ctx, analyticsNow.AddDate(0, 0, -7)).Return(10.0, int64(3), nil)

		got, err := q.AverageDailySpending(ctx, 7)

		require.NoError(t, err)
		assert.InDelta(t, 3.33, got, 1e-9)
	})

	t.Run("no paying vehicles yields zero, not a division error", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("PaidTotalsSince", ctx, mock.Anything).Return(0.0, int64(0), nil)

		got, err := q.AverageDailySpending(ctx, 30)

		require.NoError(t, err)
		assert.Zero(t, got)
	})
}

func TestDailyAverageVehicles(t *testing.T) {
	ctx := context.Background()
	store, q := newAnalyticsFixture()
	store.On("DailyEntryAverageSince", ctx, analyticsNow.AddDate(0, 0, -7)).Return(4.666666, nil)

	got, err := q.DailyAverageVehicles(ctx, 7)

	require.NoError(t, err)
	assert.InDelta(t, 4.67, got, 1e-9)
}

func TestAverageDurationByColor(t *testing.T) {
	ctx := context.Background()
	store, q := newAnalyticsFixture()
	store.On("AverageDurationByColor", ctx, "red").Return(1.23456, nil)

	got, err := q.AverageDurationByColor(ctx, "red")

	require.NoError(t, err)
	assert.InDelta(t, 1.23, got, 1e-9)
}

func TestRevenueByDay(t *testing.T) {
	ctx := context.Background()

	t.Run("per-day revenue is rounded", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("RevenueByDaySince", ctx, analyticsNow.AddDate(0, 0, -7)).Return([]DayRevenue{
			{Date: "2026-03-09", Revenue: 12.345},
			{Date: "2026-03-10", Revenue: 5.0},
		}, nil)

		got, err := q.RevenueByDay(ctx, 7)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.InDelta(t, 12.35, got[0].Revenue, 1e-9)
		assert.InDelta(t, 5.00, got[1].Revenue, 1e-9)
	})

	t.Run("empty window returns an empty slice", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("RevenueByDaySince", ctx, mock.Anything).Return(nil, nil)

		got, err := q.RevenueByDay(ctx, 7)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDistributions(t *testing.T) {
	ctx := context.Background()

	t.Run("brand counts pass through with the active flag", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("BrandDistribution", ctx, true).Return([]BrandCount{{Brand: "Toyota", Count: 2}}, nil)

		got, err := q.BrandDistribution(ctx, true)

		require.NoError(t, err)
		assert.Equal(t, []BrandCount{{Brand: "Toyota", Count: 2}}, got)
	})

	t.Run("empty floor distribution returns an empty slice", func(t *testing.T) {
		store, q := newAnalyticsFixture()
		store.On("FloorDistribution", ctx, false).Return(nil, nil)

		got, err := q.FloorDistribution(ctx, false)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	store, q := newAnalyticsFixture()
	store.On("ActiveSessionCount", ctx).Return(int64(4), nil)
	store.On("PaidRevenueSince", ctx, dayStart).Return(42.509, nil)
	store.On("EntriesSince", ctx, dayStart).Return(int64(9), nil)
	store.On("AverageDurationCompletedSince", ctx, dayStart).Return(1.5, nil)

	got, err := q.Overview(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(4), got.CurrentOccupancy)
	assert.InDelta(t, 42.51, got.TodayRevenue, 1e-9)
	assert.Equal(t, int64(9), got.TodayVehicles)
	assert.InDelta(t, 1.5, got.AverageDurationHours, 1e-9)
	store.AssertExpectations(t)
}
