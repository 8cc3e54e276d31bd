package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"wander/internal/models/db_models"
	"wander/internal/models/request_models"
	"wander/internal/repositories"
	"wander/pkg/utils"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (string, error)
	CreateAccount(request request_models.SignUpRequest) error

	GetPreferences(ctx context.Context, accountID string) (db_models.TravelPreferences, error)
	UpdatePreferences(ctx context.Context, accountID string, request request_models.UpdatePreferencesRequest) error
}

type AccountService struct {
	accountRepo    repositories.AccountRepository
	preferenceRepo repositories.PreferenceRepository
}

func NewAccountService(accountRepo repositories.AccountRepository, preferenceRepo repositories.PreferenceRepository) AccountServiceInterface {
	return &AccountService{
		accountRepo:    accountRepo,
		preferenceRepo: preferenceRepo,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID, account.Role)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest) error {
	existingAccount, err := a.accountRepo.FindByEmail(context.Background(), request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         "user",
	}
	if err := a.accountRepo.Insert(context.Background(), newAccount); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// GetPreferences returns stored preferences, or a neutral default snapshot
// for accounts that never saved any.
func (a *AccountService) GetPreferences(ctx context.Context, accountID string) (db_models.TravelPreferences, error) {
	preference, err := a.preferenceRepo.GetByAccount(ctx, accountID)
	if err != nil {
		log.Printf("Error fetching preferences: %v", err)
		return db_models.TravelPreferences{}, utils.ErrDatabaseError
	}
	if preference == nil {
		return db_models.TravelPreferences{
			Style:          db_models.StyleBalanced,
			Transportation: db_models.TransportMixed,
		}, nil
	}
	return preference.Snapshot(), nil
}

func (a *AccountService) UpdatePreferences(ctx context.Context, accountID string, request request_models.UpdatePreferencesRequest) error {
	owner, err := uuid.Parse(accountID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	interests := make([]db_models.InterestCategory, 0, len(request.Interests))
	for _, i := range request.Interests {
		interests = append(interests, db_models.InterestCategory(i))
	}

	preference := &db_models.Preference{
		AccountID:       owner,
		TravelStyle:     db_models.TravelStyle(request.TravelStyle),
		Transportation:  db_models.Transportation(request.Transportation),
		Interests:       interests,
		EcoFriendlyMode: request.EcoFriendlyMode,
	}
	if err := a.preferenceRepo.Upsert(ctx, preference); err != nil {
		log.Printf("Error saving preferences: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
