package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"skinai/internal/config"
	"skinai/internal/repositories"
	"skinai/internal/services"
	"skinai/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenIssuer)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	wizardService services.WizardServiceInterface,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, wizardService, log)
}
