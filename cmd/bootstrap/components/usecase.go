package components

import (
	"context"
	"log/slog"

	"resort-booking/internal/domain/booking"
	"resort-booking/internal/pkg/clock"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	booking.NewFactory,
	NewBookingOptions,
	NewSideWriter,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewRoomQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewQuoteUseCase,
		commands.NewContactUseCase,
	),
)

func NewBookingOptions(cfg config.Config) commands.BookingOptions {
	return commands.BookingOptions{
		EnforceAvailability: cfg.Booking.EnforceAvailability,
		LockTimeout:         cfg.Booking.LockTTL,
	}
}

// NewSideWriter drains in-flight legacy writes on shutdown, bounded by the
// fx stop timeout.
func NewSideWriter(
	lc fx.Lifecycle,
	legacyRepo commands.LegacyRequestRepository,
	cfg config.Config,
	logger *slog.Logger,
) *commands.SideWriter {
	w := commands.NewSideWriter(legacyRepo, cfg.Booking.SideWriteTimeout, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if err := w.Wait(ctx); err != nil {
				logger.Warn("legacy writes still running at shutdown", slog.Any("error", err))
			}
			return nil
		},
	})
	return w
}
