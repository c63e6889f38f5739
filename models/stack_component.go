package models

import (
	"time"

	"github.com/google/uuid"
)

// StackComponent is a reusable technology entry (framework, database, tool)
// shared across projects and classified by type.
type StackComponent struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_stack_components_name"`
	Type        string    `json:"type" db:"type" gorm:"type:text;not null"`
	OfficialURL *string   `json:"official_url,omitempty" db:"official_url" gorm:"type:text"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	IconURL     *string   `json:"icon_url,omitempty" db:"icon_url" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
}
