package commands

import (
	"context"
	"log/slog"

	"parkhaus/internal/domain/session"
	"parkhaus/internal/domain/spot"
	"parkhaus/internal/domain/vehicle"
	"parkhaus/internal/infra"
	"parkhaus/internal/pkg/clock"
	"parkhaus/internal/pkg/config"
	"parkhaus/internal/pkg/errs"
	"parkhaus/internal/usecase/queries"
	"parkhaus/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAlreadyParked           = errs.New("vehicle is already in the parking")
	ErrNoAvailableSpot         = errs.New("no available spot of requested type")
	ErrNoActiveSession         = errs.New("no active session for vehicle")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SessionViewReader resolves the committed session into the eager read model
// returned to callers.
type SessionViewReader interface {
	SessionByID(ctx context.Context, id uuid.UUID) (*queries.SessionView, error)
}

type ParkingCommands interface {
	RegisterEntry(ctx context.Context, plate, color, brand string, spotType spot.Type) (*queries.SessionView, error)
	RegisterExit(ctx context.Context, plate string) (*queries.SessionView, error)
}

type parkingCommandsImpl struct {
	uow   shared.UnitOfWork
	views SessionViewReader
	clock clock.Clock
	cfg   config.ParkingConfig
}

func NewParkingCommands(
	uow shared.UnitOfWork,
	views SessionViewReader,
	clock clock.Clock,
	cfg config.ParkingConfig,
) ParkingCommands {
	return &parkingCommandsImpl{
		uow:   uow,
		views: views,
		clock: clock,
		cfg:   cfg,
	}
}

// RegisterEntry runs the whole entry sequence in one transaction: the
// active-session check, vehicle lookup-or-create, spot claim and session
// insert commit together or not at all.
func (p *parkingCommandsImpl) RegisterEntry(ctx context.Context, plate, color, brand string, spotType spot.Type) (*queries.SessionView, error) {
	plate = vehicle.NormalizePlate(plate)

	var created session.Session
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Sessions().ActiveByPlate(ctx, plate)
		if err == nil {
			return ErrAlreadyParked
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		// Color and brand on this call are discarded for a known plate;
		// vehicle attributes are immutable after first sighting.
		veh, err := tx.Vehicles().FindByPlate(ctx, plate)
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			veh, err = tx.Vehicles().Create(ctx, vehicle.New(plate, color, brand))
			if err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		sp, err := tx.Spots().ClaimAvailable(ctx, spotType)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoAvailableSpot
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		created = session.New(veh.ID, sp.ID, p.clock.Now(), p.cfg.HourlyRate)
		if err := tx.Sessions().Create(ctx, created); err != nil {
			// Concurrent entry for the same plate lost the race against the
			// active-session unique index.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrAlreadyParked
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := p.views.SessionByID(ctx, created.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("vehicle entered", "plate", plate, "spot", view.Spot.SpotNumber)
	return view, nil
}

// RegisterExit settles the active session for the plate. Exit is not
// idempotent: a second call fails with ErrNoActiveSession.
func (p *parkingCommandsImpl) RegisterExit(ctx context.Context, plate string) (*queries.SessionView, error) {
	plate = vehicle.NormalizePlate(plate)

	var settledID uuid.UUID
	var amount float64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().ActiveByPlate(ctx, plate)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNoActiveSession
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		exit := p.clock.Now().UTC()
		amount = session.Settle(s.EntryTime, exit, s.HourlyRate)

		if err := tx.Sessions().Settle(ctx, s.ID, exit, amount); err != nil {
			// A concurrent exit already settled it.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrNoActiveSession
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Spots().Release(ctx, s.SpotID); err != nil {
			// A missing spot row is a recoverable inconsistency, not fatal.
			if infra.IsKind(err, infra.KindNotFound) {
				slog.Warn("spot missing on exit", "plate", plate, "spot_id", s.SpotID)
			} else {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		settledID = s.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := p.views.SessionByID(ctx, settledID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	slog.Info("vehicle exited", "plate", plate, "amount", amount)
	return view, nil
}
