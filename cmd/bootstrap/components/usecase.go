package components

import (
	"boxarena/internal/domain/booking"
	"boxarena/internal/pkg/clock"
	"boxarena/internal/pkg/config"
	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		booking.NewTieredPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	booking.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOTPCommands,
		commands.NewBookingCommands,
		commands.NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewFacilityQueries,
		queries.NewBookingQueries,
		queries.NewUserQueries,
		NewAvailabilityQueries,
	),
)

func NewAvailabilityQueries(
	facilities queries.FacilityReadStore,
	bookings queries.BookingReadStore,
	purger queries.PendingPurger,
	calc booking.PriceCalculator,
	clk clock.Clock,
	cfg config.Config,
) queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(facilities, bookings, purger, calc, clk, cfg.Booking.PendingRetention)
}
