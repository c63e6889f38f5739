package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminAccount is a seeded reviewer account. Accounts are never created
// through the public API and the password hash never leaves the server.
type AdminAccount struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username     string     `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:idx_admin_accounts_username"`
	Email        *string    `json:"email,omitempty" db:"email" gorm:"type:text"`
	PasswordHash string     `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Role         string     `json:"role" db:"role" gorm:"type:text;not null;default:'admin'"`
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login" gorm:"type:timestamptz"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
}
