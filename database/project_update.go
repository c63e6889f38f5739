package database

import (
	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"gorm.io/gorm"
)

// ProjectUpdate is the typed set of core fields the public update accepts.
// Nil pointers mean "leave unchanged"; the column names live here instead of
// a runtime string list.
type ProjectUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Slug        *string   `json:"slug,omitempty"`
	Description *string   `json:"description,omitempty"`
	LogoURL     *string   `json:"logo_url,omitempty"`
	HomepageURL *string   `json:"homepage_url,omitempty"`
	RepoURL     *string   `json:"repo_url,omitempty"`
	License     *string   `json:"license,omitempty"`
	Status      *string   `json:"status,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Visibility  *bool     `json:"visibility,omitempty"`
}

func (u ProjectUpdate) columnUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Slug != nil {
		updates["slug"] = *u.Slug
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.LogoURL != nil {
		updates["logo_url"] = *u.LogoURL
	}
	if u.HomepageURL != nil {
		updates["homepage_url"] = *u.HomepageURL
	}
	if u.RepoURL != nil {
		updates["repo_url"] = *u.RepoURL
	}
	if u.License != nil {
		updates["license"] = *u.License
	}
	if u.Status != nil {
		updates["status"] = *u.Status
	}
	if u.Tags != nil {
		updates["tags"] = tagsValue(*u.Tags)
	}
	if u.Visibility != nil {
		updates["visibility"] = *u.Visibility
	}
	return updates
}

// AdminProjectUpdate is the moderation-side allow-list: the public core
// fields plus moderation flags and wholesale replacement of the normalized
// child collections. Replacements go through the same tables as creation.
type AdminProjectUpdate struct {
	ProjectUpdate
	IsConfirmed       *bool                         `json:"is_confirmed,omitempty"`
	Featured          *bool                         `json:"featured,omitempty"`
	StackComponentIDs *[]uuid.UUID                  `json:"stack_components,omitempty"`
	Contributors      *[]models.Contributor         `json:"contributors,omitempty"`
	Sponsors          *[]models.Sponsor             `json:"sponsors,omitempty"`
	Guides            *[]models.GettingStartedGuide `json:"getting_started_guides,omitempty"`
	CommunityLinks    *[]models.CommunityLink       `json:"community_links,omitempty"`
	ContributingInfo  *models.ContributingInfo      `json:"contributing_info,omitempty"`
	Metrics           *models.Metrics               `json:"metrics,omitempty"`
}

func (u AdminProjectUpdate) columnUpdates() map[string]interface{} {
	updates := u.ProjectUpdate.columnUpdates()
	if u.IsConfirmed != nil {
		updates["is_confirmed"] = *u.IsConfirmed
	}
	if u.Featured != nil {
		updates["featured"] = *u.Featured
	}
	return updates
}

// Empty reports whether the update carries nothing to apply.
func (u AdminProjectUpdate) Empty() bool {
	return len(u.columnUpdates()) == 0 &&
		u.StackComponentIDs == nil &&
		u.Contributors == nil &&
		u.Sponsors == nil &&
		u.Guides == nil &&
		u.CommunityLinks == nil &&
		u.ContributingInfo == nil &&
		u.Metrics == nil
}

// ApplyAdminUpdate applies an allow-listed admin edit in one transaction:
// core columns first, then each provided child collection replaced
// wholesale.
func (r *ProjectRepo) ApplyAdminUpdate(id uuid.UUID, upd AdminProjectUpdate) (*models.Project, error) {
	var updated models.Project
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Project
		if err := tx.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			return err
		}

		if updates := upd.columnUpdates(); len(updates) > 0 {
			if err := tx.Model(&models.Project{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if upd.StackComponentIDs != nil {
			if err := replaceStack(tx, id, *upd.StackComponentIDs); err != nil {
				return err
			}
		}

		if upd.Contributors != nil {
			rows := *upd.Contributors
			for i := range rows {
				rows[i].ID = uuid.Nil
			}
			if err := replaceChildRows(tx, id, &models.Contributor{}, len(rows), func() error {
				return insertChildren(tx, id, ProjectChildren{Contributors: rows})
			}); err != nil {
				return err
			}
		}

		if upd.Sponsors != nil {
			rows := *upd.Sponsors
			for i := range rows {
				rows[i].ID = uuid.Nil
			}
			if err := replaceChildRows(tx, id, &models.Sponsor{}, len(rows), func() error {
				return insertChildren(tx, id, ProjectChildren{Sponsors: rows})
			}); err != nil {
				return err
			}
		}

		if upd.Guides != nil {
			rows := *upd.Guides
			for i := range rows {
				rows[i].ID = uuid.Nil
			}
			if err := replaceChildRows(tx, id, &models.GettingStartedGuide{}, len(rows), func() error {
				return insertChildren(tx, id, ProjectChildren{Guides: rows})
			}); err != nil {
				return err
			}
		}

		if upd.CommunityLinks != nil {
			rows := *upd.CommunityLinks
			for i := range rows {
				rows[i].ID = uuid.Nil
			}
			if err := replaceChildRows(tx, id, &models.CommunityLink{}, len(rows), func() error {
				return insertChildren(tx, id, ProjectChildren{CommunityLinks: rows})
			}); err != nil {
				return err
			}
		}

		if upd.ContributingInfo != nil {
			info := *upd.ContributingInfo
			info.ID = uuid.Nil
			if err := replaceChildRows(tx, id, &models.ContributingInfo{}, 1, func() error {
				return insertChildren(tx, id, ProjectChildren{ContributingInfo: &info})
			}); err != nil {
				return err
			}
		}

		if upd.Metrics != nil {
			metrics := *upd.Metrics
			if err := replaceChildRows(tx, id, &models.Metrics{}, 1, func() error {
				return insertChildren(tx, id, ProjectChildren{Metrics: &metrics})
			}); err != nil {
				return err
			}
		}

		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func replaceChildRows(tx *gorm.DB, projectID uuid.UUID, model interface{}, count int, insert func() error) error {
	if err := tx.Where("project_id = ?", projectID).Delete(model).Error; err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return insert()
}
