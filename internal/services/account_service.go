package services

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

const (
	DefaultRole = "user"
	AdminRole   = "admin"
)

type AccountServiceInterface interface {
	Login(request request_models.LoginRequest, ctx context.Context) (string, error)
	CreateAccount(request request_models.SignUpRequest, ctx context.Context) error
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
}

func NewAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
	}
}

func (a *AccountService) Login(request request_models.LoginRequest, ctx context.Context) (string, error) {

	startTime := time.Now()

	account, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		log.WithError(err).Error("finding account by email")
		return "", utils.ErrDatabaseError
	}

	if account == nil {
		return "", utils.ErrAccountNotFound
	}

	err = utils.ComparePasswords(account.PasswordHash, request.Password)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := a.jwt.CreateToken(account.ID, account.Role)
	if err != nil {
		log.WithError(err).Error("signing access token")
		return "", utils.ErrInvalidCredentials
	}

	log.Debugf("Login took %s", time.Since(startTime))

	return token, nil
}

func (a *AccountService) CreateAccount(request request_models.SignUpRequest, ctx context.Context) error {

	existingAccount, err := a.accountRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return err
	}

	newAccount := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
		Role:         DefaultRole,
	}

	if err := a.accountRepo.InsertTx(newAccount, ctx); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return utils.ErrEmailAlreadyExists
		}
		log.WithError(err).Error("inserting account")
		return utils.ErrDatabaseError
	}

	return nil
}
