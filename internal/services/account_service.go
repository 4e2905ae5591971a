package services

import (
	"context"
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
	"skinai/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) (*response_models.AccountResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error)
	UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error)
	Logout(sessionID string)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	wizard      WizardServiceInterface
	log         *zap.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens *utils.TokenIssuer,
	wizardService WizardServiceInterface,
	log *zap.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		wizard:      wizardService,
		log:         log.Named("account"),
	}
}

// Login verifies the password, issues a token for a new session and opens
// that session's wizard on LANDING.
func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (*response_models.AccountLoginResponse, error) {
	startTime := time.Now()

	account, err := a.accountRepo.FindByUsername(ctx, strings.TrimSpace(request.Username))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, claims, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	a.wizard.Open(claims.SessionID, account.ID.String())

	a.log.Info("login",
		zap.String("user_id", account.ID.String()),
		zap.String("session_id", claims.SessionID),
		zap.Duration("took", time.Since(startTime)),
	)

	return &response_models.AccountLoginResponse{
		Token:     token,
		SessionID: claims.SessionID,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) (*response_models.AccountResponse, error) {
	username := strings.TrimSpace(request.Username)

	existingAccount, err := a.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if existingAccount != nil {
		return nil, utils.ErrUsernameTaken
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newAccount := &db_models.Account{
		Username:     username,
		PasswordHash: hashedPassword,
		Name:         request.Name,
		Age:          request.Age,
		Gender:       request.Gender,
		Location:     request.Location,
		SkinTone:     request.SkinTone,
		Allergies:    pq.StringArray(cleanList(request.Allergies)),
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	a.log.Info("account created", zap.String("user_id", newAccount.ID.String()))
	return toAccountResponse(newAccount), nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.AccountResponse, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// UpdateProfile overwrites only the fields present in the request.
func (a *AccountService) UpdateProfile(ctx context.Context, userID string, request request_models.UpdateProfileRequest) (*response_models.AccountResponse, error) {
	account, err := a.findAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		account.Name = *request.Name
	}
	if request.Age != nil {
		account.Age = *request.Age
	}
	if request.Gender != nil {
		account.Gender = *request.Gender
	}
	if request.Location != nil {
		account.Location = *request.Location
	}
	if request.SkinTone != nil {
		account.SkinTone = *request.SkinTone
	}
	if request.Allergies != nil {
		account.Allergies = pq.StringArray(cleanList(request.Allergies))
	}

	if err := a.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return toAccountResponse(account), nil
}

func (a *AccountService) Logout(sessionID string) {
	a.wizard.Close(sessionID)
}

func (a *AccountService) findAccount(ctx context.Context, userID string) (*db_models.Account, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%w: user id", utils.ErrInvalidInput)
	}
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func toAccountResponse(a *db_models.Account) *response_models.AccountResponse {
	allergies := []string(a.Allergies)
	if allergies == nil {
		allergies = []string{}
	}
	return &response_models.AccountResponse{
		ID:        a.ID.String(),
		Username:  a.Username,
		Name:      a.Name,
		Age:       a.Age,
		Gender:    a.Gender,
		Location:  a.Location,
		SkinTone:  a.SkinTone,
		Allergies: allergies,
		CreatedAt: a.CreatedTime(),
	}
}

func cleanList(values []string) []string {
	return mergeAllergies(nil, values)
}
