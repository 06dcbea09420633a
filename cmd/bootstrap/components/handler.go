package components

import (
	"boxarena/internal/handler"
	"boxarena/internal/handler/api"
	"boxarena/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewFacilityHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
