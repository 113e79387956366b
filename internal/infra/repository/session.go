package repository

import (
	"context"
	"errors"
	"time"

	"parkhaus/internal/domain/session"
	"parkhaus/internal/infra"
	"parkhaus/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SessionRepository struct {
	db db.DB
}

func NewSessionRepository(db db.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) ActiveByPlate(ctx context.Context, plate string) (*session.Session, error) {
	const query = `
		SELECT s.id, s.vehicle_id, s.spot_id, s.entry_time, s.exit_time,
		       s.amount_paid, s.payment_status, s.hourly_rate
		FROM parking_sessions s
		JOIN vehicles v ON v.id = s.vehicle_id
		WHERE v.license_plate = $1 AND s.exit_time IS NULL
		ORDER BY s.entry_time DESC`

	var s session.Session
	err := r.db.QueryRow(ctx, query, plate).
		Scan(&s.ID, &s.VehicleID, &s.SpotID, &s.EntryTime, &s.ExitTime,
			&s.AmountPaid, &s.PaymentStatus, &s.HourlyRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active session for plate", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active session by plate", err)
	}
	return &s, nil
}

func (r *SessionRepository) Create(ctx context.Context, s session.Session) error {
	const query = `
		INSERT INTO parking_sessions (id, vehicle_id, spot_id, entry_time, payment_status, hourly_rate)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.VehicleID, s.SpotID, s.EntryTime, string(s.PaymentStatus), s.HourlyRate)
	if err != nil {
		// The partial unique index on (vehicle_id) WHERE exit_time IS NULL
		// rejects a second concurrent active session for the same vehicle.
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("active session already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create session", err)
	}
	return nil
}

// Settle marks the session paid. The exit_time IS NULL guard makes settlement
// exactly-once: a concurrent exit that lost the race affects zero rows.
func (r *SessionRepository) Settle(ctx context.Context, id uuid.UUID, exit time.Time, amount float64) error {
	const query = `
		UPDATE parking_sessions
		SET exit_time = $2, amount_paid = $3, payment_status = 'paid'
		WHERE id = $1 AND exit_time IS NULL`

	tag, err := r.db.Exec(ctx, query, id, exit, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to settle session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("session already settled", nil, infra.KindConflict)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	const query = `
		SELECT id, vehicle_id, spot_id, entry_time, exit_time,
		       amount_paid, payment_status, hourly_rate
		FROM parking_sessions
		WHERE id = $1`

	var s session.Session
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.VehicleID, &s.SpotID, &s.EntryTime, &s.ExitTime,
			&s.AmountPaid, &s.PaymentStatus, &s.HourlyRate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find session by ID", err)
	}
	return &s, nil
}
