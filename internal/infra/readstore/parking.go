package readstore

import (
	"context"
	"errors"

	"parkhaus/internal/infra"
	"parkhaus/internal/infra/db"
	"parkhaus/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const sessionViewColumns = `
	s.id, s.vehicle_id, s.spot_id, s.entry_time, s.exit_time,
	s.amount_paid, s.payment_status, s.hourly_rate,
	v.license_plate, v.color, v.brand,
	p.spot_number, p.floor, p.spot_type`

// ParkingReadStore serves the eager session/spot/vehicle read models. Every
// cross-entity field is resolved in the query itself; callers never trigger
// follow-up reads.
type ParkingReadStore struct {
	db db.DB
}

func NewParkingReadStore(db db.DB) *ParkingReadStore {
	return &ParkingReadStore{db: db}
}

func (r *ParkingReadStore) SessionByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error) {
	query := `
		SELECT ` + sessionViewColumns + `
		FROM parking_sessions s
		JOIN vehicles v ON v.id = s.vehicle_id
		JOIN parking_spots p ON p.id = s.spot_id
		WHERE s.id = $1`

	row := r.db.QueryRow(ctx, query, id)
	view, err := scanSessionView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by ID", err)
	}
	return view, nil
}

func (r *ParkingReadStore) ActiveSessions(ctx context.Context) ([]*queries.SessionView, error) {
	query := `
		SELECT ` + sessionViewColumns + `
		FROM parking_sessions s
		JOIN vehicles v ON v.id = s.vehicle_id
		JOIN parking_spots p ON p.id = s.spot_id
		WHERE s.exit_time IS NULL
		ORDER BY s.entry_time DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active sessions", err)
	}
	defer rows.Close()

	result := []*queries.SessionView{}
	for rows.Next() {
		view, err := scanSessionView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan active session", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list active sessions", err)
	}
	return result, nil
}

func (r *ParkingReadStore) FloorOccupancy(ctx context.Context) ([]queries.FloorStatus, error) {
	const query = `
		SELECT floor,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_occupied) AS occupied
		FROM parking_spots
		GROUP BY floor
		ORDER BY floor`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate floor occupancy", err)
	}
	defer rows.Close()

	result := []queries.FloorStatus{}
	for rows.Next() {
		var fs queries.FloorStatus
		if err := rows.Scan(&fs.Floor, &fs.Total, &fs.Occupied); err != nil {
			return nil, infra.WrapRepoErr("failed to scan floor occupancy", err)
		}
		result = append(result, fs)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate floor occupancy", err)
	}
	return result, nil
}

func (r *ParkingReadStore) VehicleByPlate(ctx context.Context, plate string) (*queries.VehicleView, error) {
	const query = `
		SELECT id, license_plate, color, brand, created_at
		FROM vehicles
		WHERE license_plate = $1`

	var v queries.VehicleView
	err := r.db.QueryRow(ctx, query, plate).
		Scan(&v.ID, &v.LicensePlate, &v.Color, &v.Brand, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by plate", err)
	}
	return &v, nil
}

func scanSessionView(row pgx.Row) (*queries.SessionView, error) {
	var view queries.SessionView
	err := row.Scan(
		&view.ID, &view.VehicleID, &view.SpotID, &view.EntryTime, &view.ExitTime,
		&view.AmountPaid, &view.PaymentStatus, &view.HourlyRate,
		&view.Vehicle.LicensePlate, &view.Vehicle.Color, &view.Vehicle.Brand,
		&view.Spot.SpotNumber, &view.Spot.Floor, &view.Spot.SpotType,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
