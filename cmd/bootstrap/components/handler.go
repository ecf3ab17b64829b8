package components

import (
	"log/slog"

	"resort-booking/internal/handler"
	"resort-booking/internal/handler/api"
	"resort-booking/internal/handler/middleware"
	"resort-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewCatalogHandler,
		NewRateLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, logger *slog.Logger) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, logger)
}
