package models

import (
	"time"

	"github.com/google/uuid"
)

// RoadmapItem is a planned or completed piece of work on a project's public
// roadmap.
type RoadmapItem struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_roadmap_items_project_id"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	Status      string    `json:"status" db:"status" gorm:"type:text;not null;default:'planned'"`
	Priority    string    `json:"priority" db:"priority" gorm:"type:text;not null;default:'medium'"`
	Link        *string   `json:"link,omitempty" db:"link" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
}
