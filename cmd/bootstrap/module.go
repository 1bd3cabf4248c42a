package bootstrap

import (
	"parking-allocator/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	MailerModule,
	AllocationModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.TaskModule,
)
