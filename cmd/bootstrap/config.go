package bootstrap

import (
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/pkg/config"
	"theater-console/internal/pkg/wallclock"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
		NewBufferPolicy,
	),
)

// NewLocation resolves the single zone every show date and time is interpreted in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return wallclock.LoadLocation(cfg.Schedule.TimeZone)
}

func NewBufferPolicy(cfg config.Config) show.BufferPolicy {
	return show.BufferPolicy{
		IntervalMin: cfg.Schedule.IntervalMin,
		IntervalMax: cfg.Schedule.IntervalMax,
		CleanupMin:  cfg.Schedule.CleanupMin,
		CleanupMax:  cfg.Schedule.CleanupMax,
	}
}
