package ai_fx

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"skinai/internal/config"
	"skinai/internal/services"
	"skinai/pkg/utils"
)

var Module = fx.Provide(
	ProvideAIClient,
	ProvideEmbeddingClient,
	ProvideSkinAnalysisService)

// ProvideAIClient creates the client for the configured provider and closes
// it on shutdown.
func ProvideAIClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (utils.AIClient, error) {
	apiKey, model := cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel
	if cfg.AI.Provider == "openai" {
		apiKey, model = cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel
	}

	client, err := utils.NewAIClient(cfg.AI.Provider, apiKey, model, cfg.AI.EmbeddingModel)
	if err != nil {
		return nil, fmt.Errorf("create AI client: %w", err)
	}
	log.Info("AI client ready", zap.String("provider", client.Provider()), zap.String("model", model))

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvideEmbeddingClient(client utils.AIClient) utils.EmbeddingClientInterface {
	return client
}

func ProvideSkinAnalysisService(client utils.AIClient, log *zap.Logger) services.SkinAnalysisServiceInterface {
	return services.NewSkinAnalysisService(client, log)
}
