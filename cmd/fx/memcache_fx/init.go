package memcache_fx

import (
	"go.uber.org/fx"
	"skinai/internal/config"
	"skinai/internal/services"
	mem "skinai/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore(cfg *config.Config) mem.Store[*services.WizardSession] {
	return mem.NewTTLStore[*services.WizardSession](cfg.SessionTTL)
}
