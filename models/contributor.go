package models

import (
	"time"

	"github.com/google/uuid"
)

// Contributor represents a person working on a project.
type Contributor struct {
	ID                 uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID          uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_contributors_project_id"`
	Name               string    `json:"name" db:"name" gorm:"type:text;not null"`
	Role               string    `json:"role" db:"role" gorm:"type:text;not null"`
	GithubUsername     *string   `json:"github_username,omitempty" db:"github_username" gorm:"type:text"`
	AvatarURL          *string   `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	Bio                *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	WebsiteURL         *string   `json:"website_url,omitempty" db:"website_url" gorm:"type:text"`
	TwitterUsername    *string   `json:"twitter_username,omitempty" db:"twitter_username" gorm:"type:text"`
	LinkedinURL        *string   `json:"linkedin_url,omitempty" db:"linkedin_url" gorm:"type:text"`
	IsActive           bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	ContributionsCount int       `json:"contributions_count" db:"contributions_count" gorm:"type:integer;not null;default:0"`
	JoinedAt           time.Time `json:"joined_at" db:"joined_at" gorm:"type:timestamptz;not null;autoCreateTime"`
	CreatedAt          time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
}
