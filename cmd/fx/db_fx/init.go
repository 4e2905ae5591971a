package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"skinai/internal/api/controllers"
	"skinai/internal/config"
	"skinai/internal/infra"
)

var Module = fx.Provide(
	provideDB,
	providePinger)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db, log)
			return nil
		},
	})
	return db, nil
}

func providePinger(db *gorm.DB) (controllers.Pinger, error) {
	return db.DB()
}
