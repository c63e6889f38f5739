package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GettingStartedGuide is one step of a project's onboarding sequence. The
// display order is the explicit OrderIndex, assigned as the 1-based position
// in the submitted array, never row-insertion order.
type GettingStartedGuide struct {
	ID                   uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID            uuid.UUID                   `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_guides_project_id"`
	OrderIndex           int                         `json:"order_index" db:"order_index" gorm:"type:integer;not null"`
	Title                string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description          *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	Prerequisites        datatypes.JSONSlice[string] `json:"prerequisites,omitempty" db:"prerequisites" gorm:"type:jsonb"`
	EstimatedTimeMinutes *int                        `json:"estimated_time_minutes,omitempty" db:"estimated_time_minutes" gorm:"type:integer"`
	IsPublished          bool                        `json:"is_published" db:"is_published" gorm:"not null;default:true"`
	CreatedAt            time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
	UpdatedAt            time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;autoUpdateTime"`
}
