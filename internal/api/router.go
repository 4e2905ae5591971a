package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"skinai/internal/api/controllers"
	"skinai/pkg/metrics"
	"skinai/pkg/middleware"
	"skinai/pkg/utils"
)

type RouterParams struct {
	fx.In

	Log      *zap.Logger
	Tokens   *utils.TokenIssuer
	Metrics  *metrics.Metrics
	Account  *controllers.AccountController
	Wizard   *controllers.WizardController
	Analysis *controllers.AnalysisController
	Catalog  *controllers.CatalogController
}

func NewRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(p.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)
	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.Tokens)

	r.GET("/healthz", p.Catalog.Health)
	r.GET("/metrics", gin.WrapH(p.Metrics.Handler()))
	r.GET("/catalog/options", p.Catalog.Options)

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", p.Account.Register)
	accountGroup.POST("/login", p.Account.Login)
	accountGroup.POST("/logout", auth, p.Account.Logout)
	accountGroup.GET("/profile", auth, p.Account.GetProfile)
	accountGroup.PUT("/profile", auth, p.Account.UpdateProfile)

	wizardGroup := r.Group("/wizard", auth)
	wizardGroup.GET("", p.Wizard.GetWizard)
	wizardGroup.POST("/start", p.Wizard.Start)
	wizardGroup.POST("/advance", p.Wizard.Advance)
	wizardGroup.POST("/back", p.Wizard.Back)
	wizardGroup.POST("/recommendation", p.Wizard.Recommend)
	wizardGroup.GET("/history", p.Wizard.History)

	analysisGroup := r.Group("/analysis", auth)
	analysisGroup.POST("/skin-type", p.Analysis.PredictSkinType)
	analysisGroup.POST("/routine", p.Analysis.AnalyseRoutine)
	analysisGroup.POST("/condition", p.Analysis.DetectCondition)
}
