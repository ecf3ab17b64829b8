package bootstrap

import (
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig reads the environment once per process. Datastore variables are
// optional here; their absence is reported by the datastore module.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, errs.Wrap(err, "load config from environment")
	}
	return cfg, nil
}
