package controllers_fx

import (
	"go.uber.org/fx"
	"skinai/internal/api"
	"skinai/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewWizardController),
	fx.Provide(controllers.NewAnalysisController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(api.NewRouter))
