package repository

import (
	"errors"

	"gorm.io/gorm"

	"employee_web/internal/models"
	"employee_web/internal/storage"
)

type AccountRepository interface {
	Create(account *models.Account) error
	FindByUsername(username string) (*models.Account, error)
}

type accountRepository struct {
	db *storage.DB
}

func NewAccountRepository(db *storage.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(account *models.Account) error {
	return r.db.Create(account).Error
}

func (r *accountRepository) FindByUsername(username string) (*models.Account, error) {
	var account models.Account
	err := r.db.Where("username = ?", username).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}
