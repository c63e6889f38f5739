package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailSignup is a newsletter signup captured from the landing page.
type EmailSignup struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex:idx_email_signups_email"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
}
