package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"skinai/internal/models/request_models"
	"skinai/internal/services"
	"skinai/pkg/utils"
)

type WizardController struct {
	wizardService         services.WizardServiceInterface
	recommendationService services.RecommendationServiceInterface
}

func NewWizardController(
	wizardService services.WizardServiceInterface,
	recommendationService services.RecommendationServiceInterface,
) *WizardController {
	return &WizardController{
		wizardService:         wizardService,
		recommendationService: recommendationService,
	}
}

// GetWizard godoc
// @Summary Current wizard screen
// @Description Returns the step, its screen descriptor and the collected answers
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /wizard [get]
func (w *WizardController) GetWizard(c *gin.Context) {
	view, err := w.wizardService.View(c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// Start godoc
// @Summary Leave the landing screen
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /wizard/start [post]
func (w *WizardController) Start(c *gin.Context) {
	view, err := w.wizardService.Start(c.GetString("session_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// Advance godoc
// @Summary Complete the current screen
// @Description from_step must name the screen that produced the event; events from any other step are ignored and reported with applied=false
// @Tags Wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.AdvanceRequest true "Screen result"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /wizard/advance [post]
func (w *WizardController) Advance(c *gin.Context) {
	var req request_models.AdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := w.wizardService.Advance(c.GetString("session_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// Back godoc
// @Summary Go back one screen
// @Tags Wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.BackRequest true "Screen the back button was pressed on"
// @Success 200 {object} utils.APIResponse
// @Router /wizard/back [post]
func (w *WizardController) Back(c *gin.Context) {
	var req request_models.BackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	view, err := w.wizardService.Back(c.GetString("session_id"), req.FromStep)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, view, "")
}

// Recommend godoc
// @Summary Build the personalised recommendation
// @Description Only available once the wizard reached RECOMMENDATION
// @Tags Wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.RecommendationRequest false "Screen-local questionnaire fields"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /wizard/recommendation [post]
func (w *WizardController) Recommend(c *gin.Context) {
	var req request_models.RecommendationRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	result, err := w.recommendationService.Recommend(c.Request.Context(), c.GetString("session_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Recommendation generated successfully")
}

// History godoc
// @Summary Past assessments
// @Tags Wizard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {object} utils.APIResponse
// @Router /wizard/history [get]
func (w *WizardController) History(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	items, err := w.recommendationService.History(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, items, "History fetched successfully")
}
