package shared

import (
	"context"
	"time"

	"parkhaus/internal/domain/session"
	"parkhaus/internal/domain/spot"
	"parkhaus/internal/domain/vehicle"

	"github.com/google/uuid"
)

// UnitOfWork serializes the read-then-write sequences of entry and exit into
// one storage transaction. The service layer never caches entity state across
// calls; every mutation re-reads inside the transaction it commits in.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Vehicles() VehicleRepository
	Spots() SpotRepository
	Sessions() SessionRepository
}

type VehicleRepository interface {
	FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error)
	Create(ctx context.Context, v vehicle.Vehicle) (*vehicle.Vehicle, error)
}

type SpotRepository interface {
	ClaimAvailable(ctx context.Context, spotType spot.Type) (*spot.Spot, error)
	Release(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
}

type SessionRepository interface {
	ActiveByPlate(ctx context.Context, plate string) (*session.Session, error)
	Create(ctx context.Context, s session.Session) error
	Settle(ctx context.Context, id uuid.UUID, exit time.Time, amount float64) error
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
}
