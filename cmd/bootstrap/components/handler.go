package components

import (
	"parking-allocator/internal/handler"
	"parking-allocator/internal/handler/api"
	"parking-allocator/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRequestsHandler,
		api.NewReservationsHandler,
		api.NewConfigurationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
