package queries

import (
	"context"
	"time"

	"parkhaus/internal/pkg/clock"
	"parkhaus/internal/pkg/money"
)

// Read models for the aggregation side. All empty-denominator aggregations
// return zero values, never errors.

type DayRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type BrandCount struct {
	Brand string `json:"brand"`
	Count int64  `json:"count"`
}

type FloorCount struct {
	Floor int   `json:"floor"`
	Count int64 `json:"count"`
}

type HourOccupancy struct {
	Hour      int   `json:"hour"`
	Occupancy int64 `json:"occupancy"`
}

type OverviewView struct {
	CurrentOccupancy     int64   `json:"current_occupancy"`
	TodayRevenue         float64 `json:"today_revenue"`
	TodayVehicles        int64   `json:"today_vehicles"`
	AverageDurationHours float64 `json:"average_duration_hours"`
}

type AnalyticsReadStore interface {
	PaidRevenueSince(ctx context.Context, cutoff time.Time) (float64, error)
	CountVehiclesByColor(ctx context.Context, color string, activeOnly bool) (int64, error)
	ActiveSessionCount(ctx context.Context) (int64, error)
	DailyEntryAverageSince(ctx context.Context, cutoff time.Time) (float64, error)
	PaidTotalsSince(ctx context.Context, cutoff time.Time) (revenue float64, vehicles int64, err error)
	AverageDurationByColor(ctx context.Context, color string) (float64, error)
	RevenueByDaySince(ctx context.Context, cutoff time.Time) ([]DayRevenue, error)
	BrandDistribution(ctx context.Context, activeOnly bool) ([]BrandCount, error)
	FloorDistribution(ctx context.Context, activeOnly bool) ([]FloorCount, error)
	HourlyOccupancy(ctx context.Context) ([]HourOccupancy, error)
	EntriesSince(ctx context.Context, cutoff time.Time) (int64, error)
	AverageDurationCompletedSince(ctx context.Context, dayStart time.Time) (float64, error)
}

type AnalyticsQueries interface {
	RevenueLastHours(ctx context.Context, hours int) (float64, error)
	CountByColor(ctx context.Context, color string, activeOnly bool) (int64, error)
	CurrentVehicleCount(ctx context.Context) (int64, error)
	DailyAverageVehicles(ctx context.Context, days int) (float64, error)
	AverageDailySpending(ctx context.Context, days int) (float64, error)
	AverageDurationByColor(ctx context.Context, color string) (float64, error)
	RevenueByDay(ctx context.Context, days int) ([]DayRevenue, error)
	BrandDistribution(ctx context.Context, activeOnly bool) ([]BrandCount, error)
	FloorDistribution(ctx context.Context, activeOnly bool) ([]FloorCount, error)
	HourlyOccupancy(ctx context.Context) ([]HourOccupancy, error)
	Overview(ctx context.Context) (*OverviewView, error)
}

type analyticsQueriesImpl struct {
	store AnalyticsReadStore
	clock clock.Clock
}

func NewAnalyticsQueries(store AnalyticsReadStore, clock clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store, clock: clock}
}

func (q *analyticsQueriesImpl) RevenueLastHours(ctx context.Context, hours int) (float64, error) {
	cutoff := q.clock.Now().UTC().Add(-time.Duration(hours) * time.Hour)
	revenue, err := q.store.PaidRevenueSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	return money.Round2(revenue), nil
}

func (q *analyticsQueriesImpl) CountByColor(ctx context.Context, color string, activeOnly bool) (int64, error) {
	return q.store.CountVehiclesByColor(ctx, color, activeOnly)
}

func (q *analyticsQueriesImpl) CurrentVehicleCount(ctx context.Context) (int64, error) {
	return q.store.ActiveSessionCount(ctx)
}

func (q *analyticsQueriesImpl) DailyAverageVehicles(ctx context.Context, days int) (float64, error) {
	cutoff := q.clock.Now().UTC().AddDate(0, 0, -days)
	avg, err := q.store.DailyEntryAverageSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	return money.Round2(avg), nil
}

// AverageDailySpending divides the window's total paid revenue by the count of
// distinct vehicles that paid in the window. It is not a per-day average
// despite the name, which is kept for API compatibility.
func (q *analyticsQueriesImpl) AverageDailySpending(ctx context.Context, days int) (float64, error) {
	cutoff := q.clock.Now().UTC().AddDate(0, 0, -days)
	revenue, vehicles, err := q.store.PaidTotalsSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if vehicles == 0 {
		return 0, nil
	}
	return money.Round2(revenue / float64(vehicles)), nil
}

func (q *analyticsQueriesImpl) AverageDurationByColor(ctx context.Context, color string) (float64, error) {
	avg, err := q.store.AverageDurationByColor(ctx, color)
	if err != nil {
		return 0, err
	}
	return money.Round2(avg), nil
}

func (q *analyticsQueriesImpl) RevenueByDay(ctx context.Context, days int) ([]DayRevenue, error) {
	cutoff := q.clock.Now().UTC().AddDate(0, 0, -days)
	rows, err := q.store.RevenueByDaySince(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Revenue = money.Round2(rows[i].Revenue)
	}
	if rows == nil {
		rows = []DayRevenue{}
	}
	return rows, nil
}

func (q *analyticsQueriesImpl) BrandDistribution(ctx context.Context, activeOnly bool) ([]BrandCount, error) {
	rows, err := q.store.BrandDistribution(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []BrandCount{}
	}
	return rows, nil
}

func (q *analyticsQueriesImpl) FloorDistribution(ctx context.Context, activeOnly bool) ([]FloorCount, error) {
	rows, err := q.store.FloorDistribution(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []FloorCount{}
	}
	return rows, nil
}

func (q *analyticsQueriesImpl) HourlyOccupancy(ctx context.Context) ([]HourOccupancy, error) {
	return q.store.HourlyOccupancy(ctx)
}

// Overview aggregates today's numbers; "today" starts at UTC midnight.
func (q *analyticsQueriesImpl) Overview(ctx context.Context) (*OverviewView, error) {
	now := q.clock.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	current, err := q.store.ActiveSessionCount(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := q.store.PaidRevenueSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	entries, err := q.store.EntriesSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	avgDuration, err := q.store.AverageDurationCompletedSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	return &OverviewView{
		CurrentOccupancy:     current,
		TodayRevenue:         money.Round2(revenue),
		TodayVehicles:        entries,
		AverageDurationHours: money.Round2(avgDuration),
	}, nil
}
