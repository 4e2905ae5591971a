package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"skinai/internal/wizard"
	"skinai/pkg/utils"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type CatalogController struct {
	catalog wizard.Catalog
	db      Pinger
}

func NewCatalogController(catalog wizard.Catalog, db Pinger) *CatalogController {
	return &CatalogController{catalog: catalog, db: db}
}

// Options godoc
// @Summary Questionnaire options
// @Description Skin types, allergies, brands and main menu branches offered by the wizard screens
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /catalog/options [get]
func (cc *CatalogController) Options(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"skin_types": cc.catalog.SkinTypes,
		"allergies":  cc.catalog.Allergies,
		"brands":     cc.catalog.Brands,
		"branches":   wizard.Branches(),
		"steps":      wizard.Steps(),
	}, "")
}

// Health godoc
// @Summary Liveness and database check
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (cc *CatalogController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := cc.db.PingContext(ctx); err != nil {
		utils.Logger(c).Warn("health check failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
}
