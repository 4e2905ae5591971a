package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"skinai/internal/models/db_models"
	"skinai/internal/models/request_models"
	"skinai/internal/repositories"
	"skinai/internal/wizard"
	mem "skinai/pkg/memcache"
	"skinai/pkg/metrics"
	"skinai/pkg/utils"
)

type recommendationFixture struct {
	svc         RecommendationServiceInterface
	wizard      WizardServiceInterface
	products    *mockProductRepo
	assessments *mockAssessmentRepo
	metrics     *metrics.Metrics
	userID      uuid.UUID
}

func newRecommendationFixture(t *testing.T, ai utils.AIClient) *recommendationFixture {
	t.Helper()
	m := metrics.New()
	wz := NewWizardService(
		wizard.NewRegistry(wizard.DefaultCatalog()),
		mem.NewTTLStore[*WizardSession](time.Hour),
		m,
		zap.NewNop(),
	)
	products := &mockProductRepo{}
	assessments := &mockAssessmentRepo{}
	return &recommendationFixture{
		svc:         NewRecommendationService(wz, products, assessments, ai, time.Second, m, zap.NewNop()),
		wizard:      wz,
		products:    products,
		assessments: assessments,
		metrics:     m,
		userID:      uuid.New(),
	}
}

// finishWizard walks the Combination / Sulfate / Plum path.
func (f *recommendationFixture) finishWizard(t *testing.T, sessionID string) {
	t.Helper()
	f.wizard.Open(sessionID, f.userID.String())
	_, err := f.wizard.Start(sessionID)
	require.NoError(t, err)
	for _, req := range []request_models.AdvanceRequest{
		{FromStep: wizard.SkinTypeAnalysis, SkinType: "Combination"},
		{FromStep: wizard.MainMenu, Branch: "allergy"},
		{FromStep: wizard.AllergyCheck, Allergies: []string{"Sulfate"}},
		{FromStep: wizard.BrandPick, Brand: "Plum"},
	} {
		view, err := f.wizard.Advance(sessionID, req)
		require.NoError(t, err)
		require.True(t, view.Applied)
	}
}

func plumProducts() []db_models.ProductMatch {
	return []db_models.ProductMatch{
		{
			Product: db_models.Product{
				BaseModel:   db_models.BaseModel{ID: uuid.New()},
				Name:        "Green Tea Pore Cleansing Face Wash",
				Brand:       "Plum",
				Category:    "cleanser",
				Ingredients: pq.StringArray{"green tea", "glycolic acid"},
			},
			Similarity: 0.82,
		},
		{
			Product: db_models.Product{
				BaseModel: db_models.BaseModel{ID: uuid.New()},
				Name:      "Green Tea Oil-Free Moisturizer",
				Brand:     "Plum",
				Category:  "moisturizer",
			},
			Similarity: 0.77,
		},
	}
}

func TestRecommend(t *testing.T) {
	ai := &fakeAI{provider: "gemini", text: "Keep it gentle and consistent."}
	f := newRecommendationFixture(t, ai)
	f.finishWizard(t, "s1")

	f.products.On("FindSimilar", mock.Anything, mock.Anything, repositories.ProductQuery{
		Brand:              "Plum",
		ExcludeIngredients: []string{"sulfate", "fragrance"},
		Limit:              5,
	}).Return(plumProducts(), nil).Once()

	assessmentID := uuid.New()
	f.assessments.On("Create", mock.Anything, mock.MatchedBy(func(a *db_models.Assessment) bool {
		return a.AccountID == f.userID && a.Brand == "Plum" && a.SkinType == "Combination" && len(a.ProductIDs) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*db_models.Assessment).ID = assessmentID
	}).Return(nil).Once()

	got, err := f.svc.Recommend(context.Background(), "s1", request_models.RecommendationRequest{
		CommonConcern:        "acne",
		EnvironmentAllergies: []string{"Fragrance", "sulfate"},
	})
	require.NoError(t, err)

	assert.Equal(t, assessmentID.String(), got.AssessmentID)
	assert.Equal(t, "Combination", got.SkinType)
	assert.Equal(t, []string{"Sulfate", "Fragrance"}, got.Allergies)
	assert.Equal(t, []string{"cleanser", "toner", "moisturizer", "sunscreen"}, got.MorningRoutine)
	assert.Equal(t, []string{"cleanser", "serum", "moisturizer", "exfoliator"}, got.NightRoutine)
	assert.Equal(t, concernTreatments["acne"], got.Treatment)
	require.Len(t, got.Products, 2)
	assert.Equal(t, "Green Tea Pore Cleansing Face Wash", got.Products[0].Name)
	assert.Equal(t, "Keep it gentle and consistent.", got.Summary)
	assert.Equal(t, "gemini", got.Source)

	require.Len(t, ai.prompts, 1)
	assert.Contains(t, ai.prompts[0], "Allergies to avoid: Sulfate, Fragrance")

	series, err := testutil.GatherAndCount(f.metrics.Registry(), "skinai_recommendation_generated_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)

	view, err := f.wizard.View("s1")
	require.NoError(t, err)
	assert.Equal(t, wizard.Recommendation, view.CurrentStep, "recommending leaves the wizard untouched")

	f.products.AssertExpectations(t)
	f.assessments.AssertExpectations(t)
}

func TestRecommendFallsBackToRules(t *testing.T) {
	f := newRecommendationFixture(t, &fakeAI{provider: "openai", err: errors.New("timeout")})
	f.finishWizard(t, "s1")

	f.products.On("FindSimilar", mock.Anything, mock.Anything, mock.Anything).Return(plumProducts(), nil)
	f.assessments.On("Create", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Recommend(context.Background(), "s1", request_models.RecommendationRequest{})
	require.NoError(t, err)

	assert.Equal(t, SourceRules, got.Source)
	assert.Contains(t, got.Summary, "For Combination skin")
	assert.Contains(t, got.Summary, "Products containing Sulfate were left out.")
	assert.Contains(t, got.Summary, "From Plum we suggest Green Tea Pore Cleansing Face Wash")
	assert.Equal(t, concernTreatments["none"], got.Treatment)
}

func TestRecommendBeforeFinishing(t *testing.T) {
	f := newRecommendationFixture(t, utils.LocalClient{})
	f.wizard.Open("s1", f.userID.String())

	_, err := f.svc.Recommend(context.Background(), "s1", request_models.RecommendationRequest{})
	require.ErrorIs(t, err, utils.ErrNotOnRecommendation)

	_, err = f.svc.Recommend(context.Background(), "missing", request_models.RecommendationRequest{})
	require.ErrorIs(t, err, utils.ErrSessionNotFound)

	f.products.AssertNotCalled(t, "FindSimilar", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecommendStoreFailure(t *testing.T) {
	f := newRecommendationFixture(t, utils.LocalClient{})
	f.finishWizard(t, "s1")

	f.products.On("FindSimilar", mock.Anything, mock.Anything, mock.Anything).Return([]db_models.ProductMatch{}, nil)
	f.assessments.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := f.svc.Recommend(context.Background(), "s1", request_models.RecommendationRequest{})
	require.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestHistory(t *testing.T) {
	f := newRecommendationFixture(t, utils.LocalClient{})

	stored := []db_models.Assessment{
		{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 1700000000}, SkinType: "Dry", Brand: "Biotique", Allergies: pq.StringArray{"Nuts"}},
		{BaseModel: db_models.BaseModel{ID: uuid.New(), CreatedAt: 1690000000}, SkinType: "Oily", Brand: "Plum"},
	}
	f.assessments.On("ListByAccount", mock.Anything, f.userID, 1, 20).Return(stored, nil).Once()

	items, err := f.svc.History(context.Background(), f.userID.String(), 0, 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Dry", items[0].SkinType)
	assert.Equal(t, []string{"Nuts"}, items[0].Allergies)
	assert.Equal(t, "2023-11-14T22:13:20Z", items[0].CreatedAt)

	_, err = f.svc.History(context.Background(), "not-a-uuid", 1, 10)
	require.ErrorIs(t, err, utils.ErrInvalidInput)
}
