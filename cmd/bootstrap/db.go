package bootstrap

import (
	"context"

	"parkhaus/internal/infra/bootstrapper"
	"parkhaus/internal/infra/db"
	"parkhaus/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(seedSpots),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// The fixed spot inventory is created exactly once; restarts are no-ops.
func seedSpots(pool *pgxpool.Pool, cfg config.Config) error {
	return bootstrapper.SeedSpots(context.Background(), pool, cfg.Parking)
}
