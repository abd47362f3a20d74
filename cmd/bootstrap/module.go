package bootstrap

import (
	"pricing-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// InfraModule connects to external services; e2e tests replace it with container-backed providers.
var InfraModule = fx.Options(
	DBModule,
	CacheModule,
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	InfraModule,
	components.PersistenceModule,
	SeedModule,
	components.UseCaseModule,
	components.HandlerModule,
)
