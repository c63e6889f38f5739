package models

import (
	"time"

	"github.com/google/uuid"
)

// Metrics holds the repository health numbers for a project, one row per
// project.
type Metrics struct {
	ProjectID         uuid.UUID  `json:"project_id" db:"project_id" gorm:"type:uuid;primaryKey;not null"`
	Stars             *int       `json:"stars,omitempty" db:"stars" gorm:"type:integer"`
	Forks             *int       `json:"forks,omitempty" db:"forks" gorm:"type:integer"`
	OpenIssues        *int       `json:"open_issues,omitempty" db:"open_issues" gorm:"type:integer"`
	ContributorsCount *int       `json:"contributors_count,omitempty" db:"contributors_count" gorm:"type:integer"`
	HealthScore       *float64   `json:"health_score,omitempty" db:"health_score" gorm:"type:numeric"`
	LastCommitAt      *time.Time `json:"last_commit_at,omitempty" db:"last_commit_at" gorm:"type:timestamptz"`
	LastReleaseAt     *time.Time `json:"last_release_at,omitempty" db:"last_release_at" gorm:"type:timestamptz"`
	FirstCommitAt     *time.Time `json:"first_commit_at,omitempty" db:"first_commit_at" gorm:"type:timestamptz"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;autoUpdateTime"`
}

func (Metrics) TableName() string {
	return "metrics"
}
