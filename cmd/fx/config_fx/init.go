package config_fx

import (
	"go.uber.org/fx"
	"skinai/internal/config"
)

// Module loads configuration from .env and the environment.
var Module = fx.Provide(provideConfig)

func provideConfig() (*config.Config, error) {
	return config.Load()
}
