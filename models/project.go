package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a cataloged open-source project with its metadata and
// moderation state. Unconfirmed or hidden projects never appear in public
// listings.
type Project struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name        string                      `json:"name" db:"name" gorm:"type:text;not null"`
	Slug        string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_projects_slug"`
	Description *string                     `json:"description,omitempty" db:"description" gorm:"type:text"`
	LogoURL     *string                     `json:"logo_url,omitempty" db:"logo_url" gorm:"type:text"`
	HomepageURL *string                     `json:"homepage_url,omitempty" db:"homepage_url" gorm:"type:text"`
	RepoURL     *string                     `json:"repo_url,omitempty" db:"repo_url" gorm:"type:text"`
	License     *string                     `json:"license,omitempty" db:"license" gorm:"type:text"`
	Status      string                      `json:"status" db:"status" gorm:"type:text;not null;default:'active'"`
	Tags        datatypes.JSONSlice[string] `json:"tags,omitempty" db:"tags" gorm:"type:jsonb"`
	// Visibility has no DB-side default: gorm omits zero values for
	// defaulted columns, which would silently turn an explicit hide into
	// visible. The handler applies the default instead.
	Visibility  bool                        `json:"visibility" db:"visibility" gorm:"not null"`
	IsConfirmed bool                        `json:"is_confirmed" db:"is_confirmed" gorm:"not null;default:false"`
	Featured    bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	SubmitterID *string                     `json:"submitter_id,omitempty" db:"submitter_id" gorm:"type:text"`
	CreatedAt   time.Time                   `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;autoCreateTime"`
	UpdatedAt   time.Time                   `json:"updated_at" db:"updated_at" gorm:"type:timestamptz;not null;autoUpdateTime"`

	StackComponents      []StackComponent      `json:"stack_components,omitempty" gorm:"many2many:project_stack;joinForeignKey:ProjectID;joinReferences:StackComponentID"`
	Metrics              *Metrics              `json:"metrics,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Contributors         []Contributor         `json:"contributors,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Sponsors             []Sponsor             `json:"sponsors,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	GettingStartedGuides []GettingStartedGuide `json:"getting_started_guides,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	CommunityLinks       []CommunityLink       `json:"community_links,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	ContributingInfo     *ContributingInfo     `json:"contributing_info,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	RoadmapItems         []RoadmapItem         `json:"roadmap_items,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// ProjectStack is the join row linking a project to a reusable stack
// component. Only the join rows are owned by the project; the components
// themselves are shared.
type ProjectStack struct {
	ProjectID        uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;primaryKey;not null"`
	StackComponentID uuid.UUID `json:"stack_component_id" db:"stack_component_id" gorm:"type:uuid;primaryKey;not null"`
}

func (ProjectStack) TableName() string {
	return "project_stack"
}
