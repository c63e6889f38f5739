package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ContributingInfo describes how newcomers can contribute to a project, one
// row per project.
type ContributingInfo struct {
	ID                     uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	ProjectID              uuid.UUID                   `json:"project_id" db:"project_id" gorm:"type:uuid;not null;uniqueIndex:idx_contributing_info_project_id"`
	DifficultyLevel        string                      `json:"difficulty_level" db:"difficulty_level" gorm:"type:text;not null"`
	SetupTimeMinutes       *int                        `json:"setup_time_minutes,omitempty" db:"setup_time_minutes" gorm:"type:integer"`
	ContributingGuideURL   *string                     `json:"contributing_guide_url,omitempty" db:"contributing_guide_url" gorm:"type:text"`
	CodeOfConductURL       *string                     `json:"code_of_conduct_url,omitempty" db:"code_of_conduct_url" gorm:"type:text"`
	DocumentationURL       *string                     `json:"documentation_url,omitempty" db:"documentation_url" gorm:"type:text"`
	GoodFirstIssuesCount   int                         `json:"good_first_issues_count" db:"good_first_issues_count" gorm:"type:integer;not null;default:0"`
	PreferredLanguages     datatypes.JSONSlice[string] `json:"preferred_languages,omitempty" db:"preferred_languages" gorm:"type:jsonb"`
	RequiresCLA            bool                        `json:"requires_cla" db:"requires_cla" gorm:"not null;default:false"`
	HasMentorship          bool                        `json:"has_mentorship" db:"has_mentorship" gorm:"not null;default:false"`
	HacktoberfestFriendly  bool                        `json:"hacktoberfest_friendly" db:"hacktoberfest_friendly" gorm:"not null;default:false"`
	CreatedAt              time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
	UpdatedAt              time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;autoUpdateTime"`
}

func (ContributingInfo) TableName() string {
	return "contributing_info"
}
