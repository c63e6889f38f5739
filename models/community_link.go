package models

import (
	"time"

	"github.com/google/uuid"
)

// CommunityLink points at a project's community space on an external
// platform.
type CommunityLink struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_community_links_project_id"`
	Platform    string    `json:"platform" db:"platform" gorm:"type:text;not null"`
	URL         string    `json:"url" db:"url" gorm:"type:text;not null"`
	Name        *string   `json:"name,omitempty" db:"name" gorm:"type:text"`
	MemberCount *int      `json:"member_count,omitempty" db:"member_count" gorm:"type:integer"`
	IsActive    bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
}
