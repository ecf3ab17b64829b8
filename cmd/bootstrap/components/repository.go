package components

import (
	"resort-booking/internal/infra/repository"
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Inventory
		fx.Annotate(
			repository.NewInventoryRepository,
			fx.As(new(queries.InventoryReader)),
			fx.As(new(queries.RoomTypeReader)),
		),
		// Occupancy
		fx.Annotate(
			repository.NewOccupancyRepository,
			fx.As(new(queries.OccupancyReader)),
		),
		// Rooms
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(queries.RoomReader)),
		),
		// Bookings
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewQuoteRepository,
			fx.As(new(commands.QuoteRepository)),
		),
		fx.Annotate(
			repository.NewLegacyRequestRepository,
			fx.As(new(commands.LegacyRequestRepository)),
		),
	),
)
