package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"skinai/internal/models/db_models"
	"skinai/internal/models/request_models"
	"skinai/internal/models/response_models"
	"skinai/internal/repositories"
	"skinai/internal/wizard"
	"skinai/pkg/metrics"
	"skinai/pkg/utils"
)

const (
	SourceRules = "rules"

	maxSuggestedProducts = 5
)

type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, sessionID string, req request_models.RecommendationRequest) (*response_models.RecommendationResponse, error)
	History(ctx context.Context, userID string, page, pageSize int) ([]response_models.AssessmentHistoryItem, error)
}

type RecommendationService struct {
	wizard      WizardServiceInterface
	products    repositories.ProductRepository
	assessments repositories.AssessmentRepository
	ai          utils.AIClient
	aiTimeout   time.Duration
	metrics     *metrics.Metrics
	log         *zap.Logger
}

func NewRecommendationService(
	wizardService WizardServiceInterface,
	products repositories.ProductRepository,
	assessments repositories.AssessmentRepository,
	ai utils.AIClient,
	aiTimeout time.Duration,
	m *metrics.Metrics,
	log *zap.Logger,
) RecommendationServiceInterface {
	return &RecommendationService{
		wizard:      wizardService,
		products:    products,
		assessments: assessments,
		ai:          ai,
		aiTimeout:   aiTimeout,
		metrics:     m,
		log:         log.Named("recommendation"),
	}
}

// Recommend builds the result for a session that reached RECOMMENDATION and
// stores it in the user's history. The wizard state is only read.
func (r *RecommendationService) Recommend(ctx context.Context, sessionID string, req request_models.RecommendationRequest) (*response_models.RecommendationResponse, error) {
	snap, err := r.wizard.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	if snap.Step != wizard.Recommendation {
		return nil, utils.ErrNotOnRecommendation
	}

	answers := snap.Answers
	avoid := mergeAllergies(answers.Allergies, req.EnvironmentAllergies)

	morning, night := buildRoutine(routineFactors{
		SkinType: answers.SkinType,
		Concern:  req.CommonConcern,
	})

	result := &response_models.RecommendationResponse{
		SkinType:       answers.SkinType,
		Allergies:      avoid,
		Brand:          answers.Brand,
		MorningRoutine: morning,
		NightRoutine:   night,
		Treatment:      TreatmentFor(req.CommonConcern),
		Products:       []response_models.ProductSuggestion{},
	}

	products, err := r.suggestProducts(ctx, answers, req, avoid)
	if err != nil {
		return nil, err
	}
	result.Products = products

	result.Summary, result.Source = r.summarize(ctx, result, req)

	accountID, err := uuid.Parse(snap.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: session user id", utils.ErrInvalidInput)
	}

	productIDs := make(pq.StringArray, 0, len(result.Products))
	for _, p := range result.Products {
		productIDs = append(productIDs, p.ID)
	}

	assessment := &db_models.Assessment{
		AccountID:      accountID,
		SkinType:       result.SkinType,
		Allergies:      pq.StringArray(result.Allergies),
		Brand:          result.Brand,
		SkinCondition:  req.SkinCondition,
		CommonConcern:  req.CommonConcern,
		MorningRoutine: pq.StringArray(result.MorningRoutine),
		NightRoutine:   pq.StringArray(result.NightRoutine),
		Treatment:      result.Treatment,
		ProductIDs:     productIDs,
		Summary:        result.Summary,
		Source:         result.Source,
	}
	if err := r.assessments.Create(ctx, assessment); err != nil {
		r.log.Error("store assessment", zap.String("session_id", sessionID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	result.AssessmentID = assessment.ID.String()

	r.metrics.RecommendationGenerated(result.Source)
	return result, nil
}

func (r *RecommendationService) History(ctx context.Context, userID string, page, pageSize int) ([]response_models.AssessmentHistoryItem, error) {
	accountID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user id", utils.ErrInvalidInput)
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	assessments, err := r.assessments.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	items := make([]response_models.AssessmentHistoryItem, 0, len(assessments))
	for _, a := range assessments {
		items = append(items, response_models.AssessmentHistoryItem{
			ID:        a.ID.String(),
			SkinType:  a.SkinType,
			Allergies: []string(a.Allergies),
			Brand:     a.Brand,
			Treatment: a.Treatment,
			Summary:   a.Summary,
			CreatedAt: a.CreatedTime(),
		})
	}
	return items, nil
}

func (r *RecommendationService) suggestProducts(ctx context.Context, answers wizard.Answers, req request_models.RecommendationRequest, avoid []string) ([]response_models.ProductSuggestion, error) {
	profile := strings.Join([]string{
		answers.SkinType + " skin",
		strings.ReplaceAll(req.CommonConcern, "_", " "),
		req.SkinCondition,
	}, " ")

	vector, err := r.ai.GetEmbedding(ctx, profile)
	if err != nil {
		r.log.Warn("embedding failed, using hashed profile", zap.Error(err))
		vector = utils.HashEmbedding(profile)
	}

	matches, err := r.products.FindSimilar(ctx, vector, repositories.ProductQuery{
		Brand:              answers.Brand,
		ExcludeIngredients: lowerAll(avoid),
		Limit:              maxSuggestedProducts,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	suggestions := make([]response_models.ProductSuggestion, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, response_models.ProductSuggestion{
			ID:          m.ID.String(),
			Name:        m.Name,
			Brand:       m.Brand,
			Category:    m.Category,
			Description: m.Description,
			Ingredients: []string(m.Ingredients),
			Similarity:  m.Similarity,
		})
	}
	return suggestions, nil
}

// summarize asks the AI provider for a short narrative and falls back to the
// rule-based text on any failure.
func (r *RecommendationService) summarize(ctx context.Context, result *response_models.RecommendationResponse, req request_models.RecommendationRequest) (string, string) {
	fallback := ruleSummary(result)

	aiCtx, cancel := context.WithTimeout(ctx, r.aiTimeout)
	defer cancel()

	text, err := r.ai.GenerateText(aiCtx, summaryPrompt(result, req))
	if err != nil {
		if !errors.Is(err, utils.ErrAINotConfigured) {
			r.log.Warn("ai summary failed, using rule summary", zap.String("provider", r.ai.Provider()), zap.Error(err))
		}
		return fallback, SourceRules
	}
	if strings.TrimSpace(text) == "" {
		return fallback, SourceRules
	}
	return text, r.ai.Provider()
}

func ruleSummary(result *response_models.RecommendationResponse) string {
	var b strings.Builder
	skinType := result.SkinType
	if skinType == "" {
		skinType = "your"
	}
	fmt.Fprintf(&b, "For %s skin, follow a morning routine of %s and a night routine of %s.",
		skinType, joinOrNone(result.MorningRoutine), joinOrNone(result.NightRoutine))
	if len(result.Allergies) > 0 {
		fmt.Fprintf(&b, " Products containing %s were left out.", strings.Join(result.Allergies, ", "))
	}
	if len(result.Products) > 0 {
		names := make([]string, 0, len(result.Products))
		for _, p := range result.Products {
			names = append(names, p.Name)
		}
		fmt.Fprintf(&b, " From %s we suggest %s.", result.Brand, strings.Join(names, ", "))
	}
	return b.String()
}

func summaryPrompt(result *response_models.RecommendationResponse, req request_models.RecommendationRequest) string {
	var products []string
	for _, p := range result.Products {
		products = append(products, fmt.Sprintf("%s (%s)", p.Name, p.Category))
	}
	return fmt.Sprintf(`You are a skincare advisor. Write a friendly summary of at most 120 words for this user.
Skin type: %s
Skin condition: %s
Main concern: %s
Allergies to avoid: %s
Preferred brand: %s
Morning routine: %s
Night routine: %s
Treatment plan: %s
Suggested products: %s
Do not recommend products outside the list and do not give medical diagnoses.`,
		result.SkinType, req.SkinCondition, req.CommonConcern, joinOrNone(result.Allergies), result.Brand,
		joinOrNone(result.MorningRoutine), joinOrNone(result.NightRoutine), result.Treatment, joinOrNone(products))
}

// mergeAllergies appends extra entries not already present, ignoring case.
func mergeAllergies(base, extra []string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, a := range list {
			a = strings.TrimSpace(a)
			key := strings.ToLower(a)
			if a == "" || seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, a)
		}
	}
	return merged
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
