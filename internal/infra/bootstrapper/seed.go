// Package bootstrapper populates the fixed spot inventory once at startup.
package bootstrapper

import (
	"context"
	"fmt"
	"log/slog"

	"parkhaus/internal/domain/spot"
	"parkhaus/internal/infra"
	"parkhaus/internal/infra/db"
	"parkhaus/internal/pkg/config"

	"github.com/google/uuid"
)

// SeedSpots creates the facility layout. Idempotent: if any spots exist the
// inventory is assumed seeded and nothing happens.
func SeedSpots(ctx context.Context, db db.DB, cfg config.ParkingConfig) error {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM parking_spots`).Scan(&count); err != nil {
		return infra.WrapRepoErr("failed to count spots", err)
	}
	if count > 0 {
		return nil
	}

	const query = `
		INSERT INTO parking_spots (id, spot_number, floor, spot_type, is_occupied)
		VALUES ($1, $2, $3, $4, FALSE)`

	for floor := 1; floor <= cfg.Floors; floor++ {
		for num := 1; num <= cfg.SpotsPerFloor; num++ {
			spotNumber := fmt.Sprintf("%d-%02d", floor, num)
			spotType := TypeForSpot(num, cfg)
			_, err := db.Exec(ctx, query, uuid.New(), spotNumber, floor, spotType.String())
			if err != nil {
				return infra.WrapRepoErr("failed to seed spot "+spotNumber, err)
			}
		}
	}

	slog.Info("seeded parking spots", "floors", cfg.Floors, "spots_per_floor", cfg.SpotsPerFloor)
	return nil
}

// TypeForSpot assigns spot types deterministically per floor: the lowest
// numbers are reserved for disabled parking, the next few for VIP, the rest
// are regular.
func TypeForSpot(num int, cfg config.ParkingConfig) spot.Type {
	switch {
	case num <= cfg.DisabledPerFloor:
		return spot.TypeDisabled
	case num <= cfg.DisabledPerFloor+cfg.VIPPerFloor:
		return spot.TypeVIP
	default:
		return spot.TypeRegular
	}
}
