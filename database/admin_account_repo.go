package database

import (
	"time"

	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"gorm.io/gorm"
)

type AdminAccountRepo struct {
	db *gorm.DB
}

func NewAdminAccountRepo(db *gorm.DB) *AdminAccountRepo {
	return &AdminAccountRepo{db}
}

// FindByUsername returns the admin account for a username.
func (r *AdminAccountRepo) FindByUsername(username string) (*models.AdminAccount, error) {
	var account models.AdminAccount
	if err := r.db.First(&account, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// TouchLastLogin records a successful login.
func (r *AdminAccountRepo) TouchLastLogin(id uuid.UUID) error {
	return r.db.Model(&models.AdminAccount{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}
