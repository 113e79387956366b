package repository

import (
	"context"
	"errors"

	"parkhaus/internal/domain/vehicle"
	"parkhaus/internal/infra"
	"parkhaus/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

type VehicleRepository struct {
	db db.DB
}

func NewVehicleRepository(db db.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	const query = `
		SELECT id, license_plate, color, brand, created_at
		FROM vehicles
		WHERE license_plate = $1`

	var v vehicle.Vehicle
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

func (r *VehicleRepository) Create(ctx context.Context, v vehicle.Vehicle) (*vehicle.Vehicle, error) {
	const query = `
		INSERT INTO vehicles (id, license_plate, color, brand, created_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING created_at`

	err := r.db.QueryRow(ctx, query, v.ID, v.LicensePlate, v.Color, v.Brand).
		Scan(&v.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, infra.WrapRepoErr("vehicle already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create vehicle", err)
	}
	return &v, nil
}
