package components

import (
	"log/slog"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/pkg/clock"
	"theater-console/internal/usecase/commands"
	"theater-console/internal/usecase/queries"
	"theater-console/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(loc *time.Location) *show.Scheduler {
		return show.NewScheduler(loc)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewShowCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
	),
)

type showCommandParams struct {
	fx.In

	Scheduler *show.Scheduler
	Policy    show.BufferPolicy
	Shows     shared.ShowSource
	Writer    shared.ShowWriter
	Movies    shared.MovieCatalog
	Screens   shared.ScreenDirectory
	Publisher shared.EventPublisher
	Mirror    shared.ShowMirror
	Logger    *slog.Logger
}

func NewShowCommands(p showCommandParams) commands.ShowCommands {
	return commands.NewShowCommands(commands.ShowCommandDeps{
		Scheduler: p.Scheduler,
		Policy:    p.Policy,
		Shows:     p.Shows,
		Writer:    p.Writer,
		Movies:    p.Movies,
		Screens:   p.Screens,
		Publisher: p.Publisher,
		Mirror:    p.Mirror,
		Logger:    p.Logger,
	})
}
