package metrics_fx

import (
	"go.uber.org/fx"
	"skinai/pkg/metrics"
)

var Module = fx.Provide(metrics.New)
