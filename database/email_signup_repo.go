package database

import (
	"github.com/oss-atlas/open-source-directory-backend/models"
	"gorm.io/gorm"
)

type EmailSignupRepo struct {
	db *gorm.DB
}

func NewEmailSignupRepo(db *gorm.DB) *EmailSignupRepo {
	return &EmailSignupRepo{db}
}

// Add stores a signup email. A duplicate surfaces as gorm.ErrDuplicatedKey
// from the unique constraint.
func (r *EmailSignupRepo) Add(signup *models.EmailSignup) error {
	return r.db.Create(signup).Error
}
