package components

import (
	"theater-console/internal/handler"
	"theater-console/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewScheduleHandler,
		api.NewShowHandler,
	),
	fx.Invoke(handler.NewRouter),
)
