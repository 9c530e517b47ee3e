package components

import (
	"sala-agenda/internal/handler"
	"sala-agenda/internal/handler/api"
	"sala-agenda/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTimelineHandler,
		api.NewSearchHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
