package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"skinai/internal/models/request_models"
	"skinai/internal/models/response_models"
	"skinai/pkg/utils"
)

const (
	defaultAge         = 25
	defaultGender      = "Female"
	defaultHumidity    = 50
	defaultTemperature = 25
	defaultLevel       = "Medium"

	conditionUnknown = "unknown"
)

// knownConditions are the labels DetectCondition reports.
var knownConditions = []string{
	"acne", "wrinkles", "dark_circles", "dark_spots", "eczema", "vitiligo", "rosacea", "none",
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type SkinAnalysisServiceInterface interface {
	PredictSkinType(features request_models.SkinTypeFeatures) (*response_models.SkinTypePrediction, error)
	AnalyseRoutine(req request_models.RoutineAnalysisRequest) (*response_models.RoutineAnalysisResponse, error)
	DetectCondition(ctx context.Context, image []byte) (*response_models.ConditionResponse, error)
}

type SkinAnalysisService struct {
	ai  utils.AIClient
	log *zap.Logger
}

func NewSkinAnalysisService(ai utils.AIClient, log *zap.Logger) SkinAnalysisServiceInterface {
	return &SkinAnalysisService{
		ai:  ai,
		log: log.Named("analysis"),
	}
}

// PredictSkinType scores oiliness and dryness from the questionnaire. Both
// high means Combination, neither means Normal.
func (s *SkinAnalysisService) PredictSkinType(f request_models.SkinTypeFeatures) (*response_models.SkinTypePrediction, error) {
	age := valueOr(f.Age, defaultAge)
	humidity := valueOr(f.Humidity, defaultHumidity)
	temperature := valueOr(f.Temperature, defaultTemperature)

	gender := strings.TrimSpace(f.Gender)
	if gender == "" {
		gender = defaultGender
	}
	if !strings.EqualFold(gender, "female") && !strings.EqualFold(gender, "male") {
		return nil, fmt.Errorf("%w: Gender must be Male or Female", utils.ErrInvalidInput)
	}

	oil, err := parseLevel("Oil_Level", f.OilLevel)
	if err != nil {
		return nil, err
	}
	hydration, err := parseLevel("Hydration_Level", f.HydrationLevel)
	if err != nil {
		return nil, err
	}
	sensitivity, err := parseLevel("Sensitivity", f.Sensitivity)
	if err != nil {
		return nil, err
	}

	oilScore := float64(oil-1) + (humidity-defaultHumidity)/100 + (temperature-defaultTemperature)/80
	dryScore := float64(1-hydration) + (defaultHumidity-humidity)/100 + (defaultTemperature-temperature)/80
	if sensitivity == 2 {
		dryScore += 0.25
	}
	if age > 40 {
		dryScore += 0.25
	}

	const threshold = 0.75
	label := "Normal"
	switch {
	case oilScore >= threshold && dryScore >= threshold:
		label = "Combination"
	case oilScore >= threshold:
		label = "Oily"
	case dryScore >= threshold:
		label = "Dry"
	}

	return &response_models.SkinTypePrediction{
		Prediction: skinTypeCode(label),
		SkinType:   label,
	}, nil
}

// AnalyseRoutine needs every questionnaire field except Skin_Type, which is
// predicted from the defaults when left empty.
func (s *SkinAnalysisService) AnalyseRoutine(req request_models.RoutineAnalysisRequest) (*response_models.RoutineAnalysisResponse, error) {
	if req.Age == nil {
		return nil, utils.MissingField("Age")
	}
	required := []struct {
		name  string
		value string
	}{
		{"Gender", req.Gender},
		{"Smoking", req.Smoking},
		{"Alcohol", req.Alcohol},
		{"Diabetes", req.Diabetes},
		{"Diabetes Type", req.DiabetesType},
		{"Location", req.Location},
		{"Common Concern", req.CommonConcern},
		{"Pollution Level", req.PollutionLevel},
	}
	for _, field := range required {
		v := strings.TrimSpace(field.value)
		if v == "" || strings.EqualFold(v, "select") {
			return nil, utils.MissingField(field.name)
		}
	}

	skinType := strings.TrimSpace(req.SkinType)
	if skinType == "" || strings.EqualFold(skinType, "select") {
		prediction, err := s.PredictSkinType(request_models.SkinTypeFeatures{Age: req.Age, Gender: req.Gender})
		if err != nil {
			s.log.Warn("skin type prediction failed, assuming Normal", zap.Error(err))
			skinType = "Normal"
		} else {
			skinType = prediction.SkinType
		}
	}

	morning, night := buildRoutine(routineFactors{
		SkinType:  skinType,
		Smoking:   isYes(req.Smoking),
		Alcohol:   isYes(req.Alcohol),
		Diabetes:  isYes(req.Diabetes),
		Pollution: req.PollutionLevel,
		Concern:   req.CommonConcern,
	})

	return &response_models.RoutineAnalysisResponse{
		MorningRoutine: morning,
		NightRoutine:   night,
		Treatment:      TreatmentFor(req.CommonConcern),
	}, nil
}

// DetectCondition asks the vision model which condition the photo shows.
// Without a configured provider the condition is reported as unknown.
func (s *SkinAnalysisService) DetectCondition(ctx context.Context, image []byte) (*response_models.ConditionResponse, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty upload", utils.ErrInvalidImage)
	}
	mimeType := http.DetectContentType(image)
	if !allowedImageTypes[mimeType] {
		return nil, fmt.Errorf("%w: unsupported type %s", utils.ErrInvalidImage, mimeType)
	}

	prompt := fmt.Sprintf(
		"You are a dermatology assistant. Look at this skin photo and answer with exactly one word from this list: %s. Answer none if the skin looks healthy.",
		strings.Join(knownConditions, ", "),
	)

	answer, err := s.ai.DescribeImage(ctx, mimeType, image, prompt)
	if err != nil {
		if errors.Is(err, utils.ErrAINotConfigured) {
			return &response_models.ConditionResponse{Condition: conditionUnknown, Source: s.ai.Provider()}, nil
		}
		s.log.Error("condition detection failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrUnexpectedBehaviorOfAI, err)
	}

	return &response_models.ConditionResponse{
		Condition: matchCondition(answer),
		Source:    s.ai.Provider(),
	}, nil
}

func matchCondition(answer string) string {
	normalized := normalizeKey(answer)
	for _, c := range knownConditions {
		if strings.Contains(normalized, c) {
			return c
		}
	}
	return conditionUnknown
}

func parseLevel(field, value string) (int, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		v = defaultLevel
	}
	switch strings.ToLower(v) {
	case "low":
		return 0, nil
	case "medium":
		return 1, nil
	case "high":
		return 2, nil
	}
	return 0, fmt.Errorf("%w: %s must be Low, Medium or High", utils.ErrInvalidInput, field)
}

func skinTypeCode(label string) int {
	for i, l := range skinTypeLabels {
		if l == label {
			return i
		}
	}
	return -1
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func isYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
