package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

// AccountRepository stores emails lower-cased; lookups fold case the same way.
type AccountRepository interface {
	InsertTx(account *db_models.Account, ctx context.Context) error
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type accountRepository struct {
	db *gorm.DB
}

var ErrDuplicateEmail = errors.New("email already registered")

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		Take(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) InsertTx(account *db_models.Account, ctx context.Context) error {
	account.Email = normalizeEmail(account.Email)
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return err
		}
		return nil
	})
}
