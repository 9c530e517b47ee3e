package bootstrap

import (
	"sala-agenda/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	ScheduleModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
