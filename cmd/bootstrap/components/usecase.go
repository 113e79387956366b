package components

import (
	"parkhaus/internal/pkg/clock"
	"parkhaus/internal/usecase/commands"
	"parkhaus/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewParkingCommands,
		queries.NewParkingQueries,
		queries.NewAnalyticsQueries,
	),
)
