package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/mock"
	"skinai/internal/models/db_models"
	"skinai/internal/repositories"
	"skinai/pkg/utils"
)

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) InsertTx(account *db_models.Account, ctx context.Context) error {
	args := m.Called(account, ctx)
	return args.Error(0)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	args := m.Called(ctx, id)
	acc, _ := args.Get(0).(*db_models.Account)
	return acc, args.Error(1)
}

func (m *mockAccountRepo) FindByUsername(ctx context.Context, username string) (*db_models.Account, error) {
	args := m.Called(ctx, username)
	acc, _ := args.Get(0).(*db_models.Account)
	return acc, args.Error(1)
}

func (m *mockAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

type mockAssessmentRepo struct {
	mock.Mock
}

func (m *mockAssessmentRepo) Create(ctx context.Context, assessment *db_models.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *mockAssessmentRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.Assessment, error) {
	args := m.Called(ctx, accountID, page, pageSize)
	list, _ := args.Get(0).([]db_models.Assessment)
	return list, args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) FindSimilar(ctx context.Context, vector pgvector.Vector, query repositories.ProductQuery) ([]db_models.ProductMatch, error) {
	args := m.Called(ctx, vector, query)
	list, _ := args.Get(0).([]db_models.ProductMatch)
	return list, args.Error(1)
}

func (m *mockProductRepo) UpsertCatalog(ctx context.Context, products []db_models.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

// fakeAI answers every generation with text or fails with err.
type fakeAI struct {
	utils.LocalClient
	provider string
	text     string
	err      error
	prompts  []string
}

func (f *fakeAI) Provider() string { return f.provider }

func (f *fakeAI) GenerateText(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeAI) DescribeImage(_ context.Context, _ string, _ []byte, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}
