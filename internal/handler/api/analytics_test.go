//go:build unit

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"parkhaus/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAnalyticsQueries struct{ mock.Mock }

func (m *mockAnalyticsQueries) RevenueLastHours(ctx context.Context, hours int) (float64, error) {
	args := m.Called(ctx, hours)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsQueries) CountByColor(ctx context.Context, color string, activeOnly bool) (int64, error) {
	args := m.Called(ctx, color, activeOnly)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsQueries) CurrentVehicleCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnalyticsQueries) DailyAverageVehicles(ctx context.Context, days int) (float64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsQueries) AverageDailySpending(ctx context.Context, days int) (float64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsQueries) AverageDurationByColor(ctx context.Context, color string) (float64, error) {
	args := m.Called(ctx, color)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnalyticsQueries) RevenueByDay(ctx context.Context, days int) ([]queries.DayRevenue, error) {
	args := m.Called(ctx, days)
	if v := args.Get(0); v != nil {
		return v.([]queries.DayRevenue), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsQueries) BrandDistribution(ctx context.Context, activeOnly bool) ([]queries.BrandCount, error) {
	args := m.Called(ctx, activeOnly)
	if v := args.Get(0); v != nil {
		return v.([]queries.BrandCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsQueries) FloorDistribution(ctx context.Context, activeOnly bool) ([]queries.FloorCount, error) {
	args := m.Called(ctx, activeOnly)
	if v := args.Get(0); v != nil {
		return v.([]queries.FloorCount), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsQueries) HourlyOccupancy(ctx context.Context) ([]queries.HourOccupancy, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]queries.HourOccupancy), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnalyticsQueries) Overview(ctx context.Context) (*queries.OverviewView, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*queries.OverviewView), args.Error(1)
	}
	return nil, args.Error(1)
}

func newAnalyticsRouter(qs *mockAnalyticsQueries) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAnalyticsHandler(qs)
	r := gin.New()
	g := r.Group("/api/parking/analytics")
	g.GET("/revenue/:hours", h.RevenueLastHours)
	g.GET("/vehicles/color/:color", h.CountByColor)
	g.GET("/current-count", h.CurrentVehicleCount)
	g.GET("/daily-average/:days", h.DailyAverageVehicles)
	g.GET("/average-spending/:days", h.AverageDailySpending)
	g.GET("/duration/color/:color", h.AverageDurationByColor)
	g.GET("/revenue-by-day/:days", h.RevenueByDay)
	g.GET("/brands", h.BrandDistribution)
	g.GET("/floors", h.FloorDistribution)
	g.GET("/hourly-occupancy", h.HourlyOccupancy)
	g.GET("/overview", h.Overview)
	return r
}

func TestRevenueLastHoursEndpoint(t *testing.T) {
	t.Run("window is parsed from the path", func(t *testing.T) {
		qs := &mockAnalyticsQueries{}
		qs.On("RevenueLastHours", mock.Anything, 24).Return(125.5, nil)
		r := newAnalyticsRouter(qs)

		w := getJSON(r, "/api/parking/analytics/revenue/24")

		assert.Equal(t, http.StatusOK, w.Code)
		var got map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.InDelta(t, 125.5, got["revenue"], 1e-9)
		qs.AssertExpectations(t)
	})

	t.Run("non-numeric window is a bad request", func(t *testing.T) {
		qs := &mockAnalyticsQueries{}
		r := newAnalyticsRouter(qs)

		w := getJSON(r, "/api/parking/analytics/revenue/soon")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		qs.AssertNotCalled(t, "RevenueLastHours", mock.Anything, mock.Anything)
	})

	t.Run("zero window is a bad request", func(t *testing.T) {
		r := newAnalyticsRouter(&mockAnalyticsQueries{})

		w := getJSON(r, "/api/parking/analytics/revenue/0")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCountByColorEndpoint(t *testing.T) {
	t.Run("active_only defaults to true", func(t *testing.T) {
		qs := &mockAnalyticsQueries{}
		qs.On("CountByColor", mock.Anything, "red", true).Return(int64(3), nil)
		r := newAnalyticsRouter(qs)

		w := getJSON(r, "/api/parking/analytics/vehicles/color/red")

		assert.Equal(t, http.StatusOK, w.Code)
		qs.AssertExpectations(t)
	})

	t.Run("active_only=false is honored", func(t *testing.T) {
		qs := &mockAnalyticsQueries{}
		qs.On("CountByColor", mock.Anything, "red", false).Return(int64(7), nil)
		r := newAnalyticsRouter(qs)

		w := getJSON(r, "/api/parking/analytics/vehicles/color/red?active_only=false")

		assert.Equal(t, http.StatusOK, w.Code)
		qs.AssertExpectations(t)
	})

	t.Run("malformed active_only is a bad request", func(t *testing.T) {
		r := newAnalyticsRouter(&mockAnalyticsQueries{})

		w := getJSON(r, "/api/parking/analytics/vehicles/color/red?active_only=maybe")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOverviewEndpoint(t *testing.T) {
	qs := &mockAnalyticsQueries{}
	qs.On("Overview", mock.Anything).Return(&queries.OverviewView{
		CurrentOccupancy:     4,
		TodayRevenue:         42.51,
		TodayVehicles:        9,
		AverageDurationHours: 1.5,
	}, nil)
	r := newAnalyticsRouter(qs)

	w := getJSON(r, "/api/parking/analytics/overview")

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.InDelta(t, 4, got["current_occupancy"], 1e-9)
	assert.InDelta(t, 42.51, got["today_revenue"], 1e-9)
}

func TestRevenueByDayEndpoint(t *testing.T) {
	qs := &mockAnalyticsQueries{}
	qs.On("RevenueByDay", mock.Anything, 7).Return([]queries.DayRevenue{
		{Date: "2026-03-09", Revenue: 12.35},
	}, nil)
	r := newAnalyticsRouter(qs)

	w := getJSON(r, "/api/parking/analytics/revenue-by-day/7")

	assert.Equal(t, http.StatusOK, w.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2026-03-09", got[0]["date"])
}
