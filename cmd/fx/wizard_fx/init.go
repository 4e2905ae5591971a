package wizard_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"skinai/internal/config"
	"skinai/internal/repositories"
	"skinai/internal/services"
	"skinai/internal/wizard"
	mem "skinai/pkg/memcache"
	"skinai/pkg/metrics"
	"skinai/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		wizard.DefaultCatalog,
		wizard.NewRegistry,
		provideWizardService,
		provideRecommendationService,
	),
	fx.Invoke(startJanitor),
)

func provideWizardService(
	registry *wizard.Registry,
	sessions mem.Store[*services.WizardSession],
	m *metrics.Metrics,
	log *zap.Logger,
) services.WizardServiceInterface {
	return services.NewWizardService(registry, sessions, m, log)
}

func provideRecommendationService(
	wizardService services.WizardServiceInterface,
	products repositories.ProductRepository,
	assessments repositories.AssessmentRepository,
	ai utils.AIClient,
	cfg *config.Config,
	m *metrics.Metrics,
	log *zap.Logger,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(wizardService, products, assessments, ai, cfg.AI.Timeout, m, log)
}

// startJanitor sweeps idle wizard sessions until shutdown.
func startJanitor(lc fx.Lifecycle, cfg *config.Config, wizardService services.WizardServiceInterface, log *zap.Logger) {
	var (
		ticker *time.Ticker
		done   = make(chan struct{})
	)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ticker = time.NewTicker(cfg.SessionSweepDur)
			go func() {
				for {
					select {
					case <-ticker.C:
						if n := wizardService.Sweep(); n > 0 {
							log.Debug("swept idle wizard sessions", zap.Int("count", n))
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ticker.Stop()
			close(done)
			return nil
		},
	})
}
