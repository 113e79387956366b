package readstore

import (
	"context"
	"time"

	"parkhaus/internal/infra"
	"parkhaus/internal/infra/db"
	"parkhaus/internal/usecase/queries"
)

// AnalyticsReadStore pushes the aggregations down to SQL; Go code only moves
// cutoff instants in and scalar results out. All sums coalesce to zero so an
// empty window is never an error.
type AnalyticsReadStore struct {
	db db.DB
}

func NewAnalyticsReadStore(db db.DB) *AnalyticsReadStore {
	return &AnalyticsReadStore{db: db}
}

func (r *AnalyticsReadStore) PaidRevenueSince(ctx context.Context, cutoff time.Time) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(amount_paid), 0)::float8
		FROM parking_sessions
		WHERE payment_status = 'paid' AND exit_time >= $1`

	var revenue float64
	if err := r.db.QueryRow(ctx, query, cutoff).Scan(&revenue); err != nil {
		return 0, infra.WrapRepoErr("failed to sum paid revenue", err)
	}
	return revenue, nil
}

func (r *AnalyticsReadStore) CountVehiclesByColor(ctx context.Context, color string, activeOnly bool) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT v.id)
		FROM vehicles v
		JOIN parking_sessions s ON s.vehicle_id = v.id
		WHERE v.color ILIKE '%' || $1 || '%'`
	if activeOnly {
		query += ` AND s.exit_time IS NULL`
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, color).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count vehicles by color", err)
	}
	return count, nil
}

func (r *AnalyticsReadStore) ActiveSessionCount(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM parking_sessions WHERE exit_time IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active sessions", err)
	}
	return count, nil
}

func (r *AnalyticsReadStore) DailyEntryAverageSince(ctx context.Context, cutoff time.Time) (float64, error) {
	const query = `
		SELECT COALESCE(AVG(c), 0)::float8
		FROM (
			SELECT COUNT(*)::float8 AS c
			FROM parking_sessions
			WHERE entry_time >= $1
			GROUP BY date_trunc('day', entry_time AT TIME ZONE 'UTC')
		) daily`

	var avg float64
	if err := r.db.QueryRow(ctx, query, cutoff).Scan(&avg); err != nil {
		return 0, infra.WrapRepoErr("failed to average daily entries", err)
	}
	return avg, nil
}

func (r *AnalyticsReadStore) PaidTotalsSince(ctx context.Context, cutoff time.Time) (float64, int64, error) {
	const query = `
		SELECT COALESCE(SUM(amount_paid), 0)::float8, COUNT(DISTINCT vehicle_id)
		FROM parking_sessions
		WHERE payment_status = 'paid' AND exit_time >= $1`

	var revenue float64
	var vehicles int64
	if err := r.db.QueryRow(ctx, query, cutoff).Scan(&revenue, &vehicles); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to total paid revenue", err)
	}
	return revenue, vehicles, nil
}

func (r *AnalyticsReadStore) AverageDurationByColor(ctx context.Context, color string) (float64, error) {
	const query = `
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (s.exit_time - s.entry_time)) / 3600.0), 0)::float8
		FROM parking_sessions s
		JOIN vehicles v ON v.id = s.vehicle_id
		WHERE v.color ILIKE '%' || $1 || '%' AND s.exit_time IS NOT NULL`

	var avg float64
	if err := r.db.QueryRow(ctx, query, color).Scan(&avg); err != nil {
		return 0, infra.WrapRepoErr("failed to average duration by color", err)
	}
	return avg, nil
}

func (r *AnalyticsReadStore) RevenueByDaySince(ctx context.Context, cutoff time.Time) ([]queries.DayRevenue, error) {
	const query = `
		SELECT to_char(exit_time AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day,
		       SUM(amount_paid)::float8
		FROM parking_sessions
		WHERE payment_status = 'paid' AND exit_time >= $1
		GROUP BY day
		ORDER BY day`

	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to group revenue by day", err)
	}
	defer rows.Close()

	result := []queries.DayRevenue{}
	for rows.Next() {
		var dr queries.DayRevenue
		if err := rows.Scan(&dr.Date, &dr.Revenue); err != nil {
			return nil, infra.WrapRepoErr("failed to scan daily revenue", err)
		}
		result = append(result, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to group revenue by day", err)
	}
	return result, nil
}

func (r *AnalyticsReadStore) BrandDistribution(ctx context.Context, activeOnly bool) ([]queries.BrandCount, error) {
	query := `
		SELECT v.brand, COUNT(DISTINCT v.id) AS cnt
		FROM vehicles v
		JOIN parking_sessions s ON s.vehicle_id = v.id
		WHERE v.brand <> ''`
	if activeOnly {
		query += ` AND s.exit_time IS NULL`
	}
	query += `
		GROUP BY v.brand
		ORDER BY cnt DESC, v.brand`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate brand distribution", err)
	}
	defer rows.Close()

	result := []queries.BrandCount{}
	for rows.Next() {
		var bc queries.BrandCount
		if err := rows.Scan(&bc.Brand, &bc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan brand distribution", err)
		}
		result = append(result, bc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate brand distribution", err)
	}
	return result, nil
}

func (r *AnalyticsReadStore) FloorDistribution(ctx context.Context, activeOnly bool) ([]queries.FloorCount, error) {
	query := `
		SELECT p.floor, COUNT(s.id)
		FROM parking_sessions s
		JOIN parking_spots p ON p.id = s.spot_id`
	if activeOnly {
		query += `
		WHERE s.exit_time IS NULL`
	}
	query += `
		GROUP BY p.floor
		ORDER BY p.floor`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate floor distribution", err)
	}
	defer rows.Close()

	result := []queries.FloorCount{}
	for rows.Next() {
		var fc queries.FloorCount
		if err := rows.Scan(&fc.Floor, &fc.Count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan floor distribution", err)
		}
		result = append(result, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate floor distribution", err)
	}
	return result, nil
}

// HourlyOccupancy counts, for each hour of day, the sessions whose stay spans
// that hour (by entry/exit hour-of-day, regardless of date).
func (r *AnalyticsReadStore) HourlyOccupancy(ctx context.Context) ([]queries.HourOccupancy, error) {
	const query = `
		SELECT h, COUNT(s.id)
		FROM generate_series(0, 23) AS h
		LEFT JOIN parking_sessions s
		  ON EXTRACT(HOUR FROM s.entry_time AT TIME ZONE 'UTC') <= h
		 AND (s.exit_time IS NULL OR EXTRACT(HOUR FROM s.exit_time AT TIME ZONE 'UTC') >= h)
		GROUP BY h
		ORDER BY h`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate hourly occupancy", err)
	}
	defer rows.Close()

	result := []queries.HourOccupancy{}
	for rows.Next() {
		var ho queries.HourOccupancy
		if err := rows.Scan(&ho.Hour, &ho.Occupancy); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hourly occupancy", err)
		}
		result = append(result, ho)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate hourly occupancy", err)
	}
	return result, nil
}

func (r *AnalyticsReadStore) EntriesSince(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `SELECT COUNT(*) FROM parking_sessions WHERE entry_time >= $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, cutoff).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count entries", err)
	}
	return count, nil
}

func (r *AnalyticsReadStore) AverageDurationCompletedSince(ctx context.Context, dayStart time.Time) (float64, error) {
	const query = `
		SELECT COALESCE(AVG(EXTRACT(EPOCH FROM (exit_time - entry_time)) / 3600.0), 0)::float8
		FROM parking_sessions
		WHERE entry_time >= $1 AND exit_time IS NOT NULL AND exit_time >= $1`

	var avg float64
	if err := r.db.QueryRow(ctx, query, dayStart).Scan(&avg); err != nil {
		return 0, infra.WrapRepoErr("failed to average completed durations", err)
	}
	return avg, nil
}
