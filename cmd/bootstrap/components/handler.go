package components

import (
	"partner-portal/internal/handler"
	"partner-portal/internal/handler/api"
	"partner-portal/internal/handler/middleware"
	"partner-portal/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewEarningsHandler,
		api.NewPayoutHandler,
		api.NewPartnerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
