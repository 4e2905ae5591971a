package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"skinai/internal/models/request_models"
	"skinai/internal/services"
	"skinai/pkg/utils"
)

const maxImageBytes = 5 << 20

type AnalysisController struct {
	analysisService services.SkinAnalysisServiceInterface
}

func NewAnalysisController(analysisService services.SkinAnalysisServiceInterface) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
	}
}

// PredictSkinType godoc
// @Summary Predict skin type
// @Description Missing fields fall back to Age 25, Female, Humidity 50, Temperature 25 and Medium levels
// @Tags Analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.SkinTypeFeatures true "Skin questionnaire"
// @Success 200 {object} utils.APIResponse
// @Router /analysis/skin-type [post]
func (a *AnalysisController) PredictSkinType(c *gin.Context) {
	var req request_models.SkinTypeFeatures
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	prediction, err := a.analysisService.PredictSkinType(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prediction, "")
}

// AnalyseRoutine godoc
// @Summary Skincare routine analysis
// @Tags Analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.RoutineAnalysisRequest true "Routine questionnaire"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /analysis/routine [post]
func (a *AnalysisController) AnalyseRoutine(c *gin.Context) {
	var req request_models.RoutineAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := a.analysisService.AnalyseRoutine(req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "")
}

// DetectCondition godoc
// @Summary Detect a skin condition from a photo
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "JPEG, PNG or WebP photo, at most 5 MB"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /analysis/condition [post]
func (a *AnalysisController) DetectCondition(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Please upload an image")
		return
	}
	if header.Size > maxImageBytes {
		utils.RespondError(c, http.StatusRequestEntityTooLarge, "Image must be at most 5 MB")
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read the image")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read the image")
		return
	}

	result, err := a.analysisService.DetectCondition(c.Request.Context(), image)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "")
}
