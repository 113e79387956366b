package components

import (
	"parkhaus/internal/handler"
	"parkhaus/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewParkingHandler,
		api.NewAnalyticsHandler,
	),
	fx.Invoke(handler.NewRouter),
)
