package bootstrap

import (
	"resort-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatastoreModule,
	LockModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
