package bootstrap

import (
	"pricing-api/internal/pkg/metrics"
	"pricing-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.NewMetrics,
			fx.As(fx.Self()),
			fx.As(new(queries.ResolutionRecorder)),
		),
	),
)
