package models

import (
	"time"

	"github.com/google/uuid"
)

// Sponsor represents an entity funding a project at a ranked tier.
type Sponsor struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID     uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_sponsors_project_id"`
	Name          string    `json:"name" db:"name" gorm:"type:text;not null"`
	Tier          string    `json:"tier" db:"tier" gorm:"type:text;not null"`
	Type          string    `json:"type" db:"type" gorm:"type:text;not null;default:'company'"`
	LogoURL       *string   `json:"logo_url,omitempty" db:"logo_url" gorm:"type:text"`
	WebsiteURL    *string   `json:"website_url,omitempty" db:"website_url" gorm:"type:text"`
	Description   *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	AmountMonthly *float64  `json:"amount_monthly,omitempty" db:"amount_monthly" gorm:"type:numeric"`
	Currency      string    `json:"currency" db:"currency" gorm:"type:text;not null;default:'USD'"`
	IsActive      bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	StartedAt     time.Time `json:"started_at" db:"started_at" gorm:"type:timestamptz;not null;autoCreateTime"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
}
