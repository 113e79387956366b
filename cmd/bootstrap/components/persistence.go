package components

import (
	"parkhaus/internal/infra/db"
	"parkhaus/internal/infra/readstore"
	"parkhaus/internal/infra/uow"
	"parkhaus/internal/usecase/commands"
	"parkhaus/internal/usecase/queries"
	"parkhaus/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewQueryDB,
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Parking read side
		fx.Annotate(
			readstore.NewParkingReadStore,
			fx.As(new(queries.ParkingReadStore)),
			fx.As(new(commands.SessionViewReader)),
		),
		// Analytics read side
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

func NewQueryDB(pool *pgxpool.Pool) db.DB {
	return pool
}
