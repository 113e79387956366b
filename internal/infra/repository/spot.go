package repository

import (
	"context"
	"errors"

	"parkhaus/internal/domain/spot"
	"parkhaus/internal/infra"
	"parkhaus/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SpotRepository struct {
	db db.DB
}

func NewSpotRepository(db db.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

// ClaimAvailable selects and occupies the best free spot of the requested
// type in one statement. Ordering is deterministic (lowest floor, lowest
// number); SKIP LOCKED keeps concurrent entries from fighting over the same
// row, so two entries never claim one spot.
func (r *SpotRepository) ClaimAvailable(ctx context.Context, spotType spot.Type) (*spot.Spot, error) {
	const query = `
		UPDATE parking_spots
		SET is_occupied = TRUE
		WHERE id = (
			SELECT id FROM parking_spots
			WHERE spot_type = $1 AND is_occupied = FALSE
			ORDER BY floor, spot_number
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, spot_number, floor, spot_type, is_occupied`

	var s spot.Spot
	err := r.db.QueryRow(ctx, query, spotType.String()).
		Scan(&s.ID, &s.SpotNumber, &s.Floor, &s.SpotType, &s.IsOccupied)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no available spot", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to claim spot", err)
	}
	return &s, nil
}

func (r *SpotRepository) Release(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE parking_spots SET is_occupied = FALSE WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to release spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) FindByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	const query = `
		SELECT id, spot_number, floor, spot_type, is_occupied
		FROM parking_spots
		WHERE id = $1`

	var s spot.Spot
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.SpotNumber, &s.Floor, &s.SpotType, &s.IsOccupied)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot by ID", err)
	}
	return &s, nil
}
