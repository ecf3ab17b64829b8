package bootstrap

import (
	"context"
	"log/slog"

	"resort-booking/internal/infra/datastore"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var DatastoreModule = fx.Module("datastore",
	fx.Provide(
		NewDatastore,
	),
)

// NewDatastore connects to Postgres when both datastore variables are set.
// Otherwise every call reports the datastore as not configured.
func NewDatastore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (datastore.Client, error) {
	if !cfg.Datastore.IsConfigured() {
		logger.Warn("datastore is not configured; data endpoints will fail")
		return datastore.NewUnconfigured(), nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.Datastore, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return datastore.NewPostgres(pool, cfg.Datastore.QueryTimeout, logger), nil
}
