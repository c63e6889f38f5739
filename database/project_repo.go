package database

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectChildren carries the child collections submitted alongside a
// project. Stack components are referenced by id; everything else is
// inserted as rows owned by the new project.
type ProjectChildren struct {
	StackComponentIDs []uuid.UUID
	Contributors      []models.Contributor
	Sponsors          []models.Sponsor
	Guides            []models.GettingStartedGuide
	CommunityLinks    []models.CommunityLink
	ContributingInfo  *models.ContributingInfo
	Metrics           *models.Metrics
	RoadmapItems      []models.RoadmapItem
}

// ProjectListOptions selects and paginates projects. Confirmed scopes by
// moderation state (nil means no constraint); VisibleOnly excludes hidden
// projects. The public listing sets VisibleOnly and Confirmed=true.
type ProjectListOptions struct {
	Page        int
	PerPage     int
	Search      string
	Status      string
	Tags        []string
	StackTypes  []string
	Featured    bool
	VisibleOnly bool
	Confirmed   *bool
	// WithReview preloads contributors and sponsors for the moderation view.
	WithReview bool
}

const defaultPerPage = 20

// Create inserts the project and all submitted child rows in a single
// transaction. A duplicate slug surfaces as gorm.ErrDuplicatedKey from the
// unique constraint; any child failure rolls back the whole creation.
func (r *ProjectRepo) Create(project *models.Project, children ProjectChildren) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(project).Error; err != nil {
			return err
		}
		return insertChildren(tx, project.ID, children)
	})
}

// insertChildren bulk-inserts every present child collection keyed by the
// project id. Guides receive their 1-based order from array position.
func insertChildren(tx *gorm.DB, projectID uuid.UUID, children ProjectChildren) error {
	if len(children.StackComponentIDs) > 0 {
		joins := make([]models.ProjectStack, 0, len(children.StackComponentIDs))
		for _, componentID := range children.StackComponentIDs {
			joins = append(joins, models.ProjectStack{ProjectID: projectID, StackComponentID: componentID})
		}
		if err := tx.Create(&joins).Error; err != nil {
			return err
		}
	}

	if len(children.Contributors) > 0 {
		for i := range children.Contributors {
			children.Contributors[i].ProjectID = projectID
		}
		if err := tx.Create(&children.Contributors).Error; err != nil {
			return err
		}
	}

	if len(children.Sponsors) > 0 {
		for i := range children.Sponsors {
			children.Sponsors[i].ProjectID = projectID
		}
		if err := tx.Create(&children.Sponsors).Error; err != nil {
			return err
		}
	}

	if len(children.Guides) > 0 {
		for i := range children.Guides {
			children.Guides[i].ProjectID = projectID
			children.Guides[i].OrderIndex = i + 1
		}
		if err := tx.Create(&children.Guides).Error; err != nil {
			return err
		}
	}

	if len(children.CommunityLinks) > 0 {
		for i := range children.CommunityLinks {
			children.CommunityLinks[i].ProjectID = projectID
		}
		if err := tx.Create(&children.CommunityLinks).Error; err != nil {
			return err
		}
	}

	if children.ContributingInfo != nil {
		children.ContributingInfo.ProjectID = projectID
		if err := tx.Create(children.ContributingInfo).Error; err != nil {
			return err
		}
	}

	if children.Metrics != nil {
		children.Metrics.ProjectID = projectID
		if err := tx.Create(children.Metrics).Error; err != nil {
			return err
		}
	}

	if len(children.RoadmapItems) > 0 {
		for i := range children.RoadmapItems {
			children.RoadmapItems[i].ProjectID = projectID
		}
		if err := tx.Create(&children.RoadmapItems).Error; err != nil {
			return err
		}
	}

	return nil
}

// FindBySlug returns a project with every child collection expanded. When
// visibleOnly is set, hidden projects report not found.
func (r *ProjectRepo) FindBySlug(slug string, visibleOnly bool) (*models.Project, error) {
	query := r.withAllChildren(r.db).Where("slug = ?", slug)
	if visibleOnly {
		query = query.Where("visibility = ?", true)
	}
	var project models.Project
	if err := query.First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByID returns a project with every child collection expanded, with no
// visibility constraint (moderation view).
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.withAllChildren(r.db).First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepo) withAllChildren(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("StackComponents").
		Preload("Metrics").
		Preload("Contributors").
		Preload("Sponsors").
		Preload("GettingStartedGuides", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("CommunityLinks").
		Preload("ContributingInfo").
		Preload("RoadmapItems")
}

// FindPage returns one page of projects matching the options plus the total
// match count. Every filter, including stack_types, is applied in the query,
// so total always agrees with the filtered set.
func (r *ProjectRepo) FindPage(opts ProjectListOptions) ([]*models.Project, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PerPage < 1 {
		opts.PerPage = defaultPerPage
	}

	filtered := r.applyFilters(r.db.Model(&models.Project{}), opts)

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.applyFilters(r.db, opts).
		Preload("StackComponents").
		Preload("Metrics").
		Preload("RoadmapItems")
	if opts.WithReview {
		query = query.Preload("Contributors").Preload("Sponsors")
	}

	var projects []*models.Project
	err := query.
		Order("created_at DESC").
		Offset((opts.Page - 1) * opts.PerPage).
		Limit(opts.PerPage).
		Find(&projects).Error
	if err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *ProjectRepo) applyFilters(tx *gorm.DB, opts ProjectListOptions) *gorm.DB {
	if opts.VisibleOnly {
		tx = tx.Where("visibility = ?", true)
	}
	if opts.Confirmed != nil {
		tx = tx.Where("is_confirmed = ?", *opts.Confirmed)
	}
	if opts.Featured {
		tx = tx.Where("featured = ?", true)
	}
	if opts.Status != "" {
		tx = tx.Where("status = ?", opts.Status)
	}
	if opts.Search != "" {
		like := "%" + opts.Search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if len(opts.Tags) > 0 {
		// any-match: the jsonb array contains at least one requested tag
		cond := r.db.Where("tags @> ?", jsonScalar(opts.Tags[0]))
		for _, tag := range opts.Tags[1:] {
			cond = cond.Or("tags @> ?", jsonScalar(tag))
		}
		tx = tx.Where(cond)
	}
	if len(opts.StackTypes) > 0 {
		sub := r.db.Table("project_stack").
			Select("project_stack.project_id").
			Joins("JOIN stack_components ON stack_components.id = project_stack.stack_component_id").
			Where("stack_components.type IN ?", opts.StackTypes)
		tx = tx.Where("id IN (?)", sub)
	}
	return tx
}

// jsonScalar renders a tag as a jsonb scalar literal for @> containment.
func jsonScalar(tag string) string {
	b, _ := json.Marshal(tag)
	return string(b)
}

// UpdateBySlug applies non-nil core fields and, when stackIDs is non-nil,
// replaces the stack join rows wholesale. Runs in one transaction; a slug
// rename that collides hits the unique constraint.
func (r *ProjectRepo) UpdateBySlug(slug string, upd ProjectUpdate, stackIDs *[]uuid.UUID) (*models.Project, error) {
	var updated models.Project
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Project
		if err := tx.Select("id").First(&existing, "slug = ?", slug).Error; err != nil {
			return err
		}

		if updates := upd.columnUpdates(); len(updates) > 0 {
			if err := tx.Model(&models.Project{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if stackIDs != nil {
			if err := replaceStack(tx, existing.ID, *stackIDs); err != nil {
				return err
			}
		}

		return tx.First(&updated, "id = ?", existing.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func replaceStack(tx *gorm.DB, projectID uuid.UUID, componentIDs []uuid.UUID) error {
	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectStack{}).Error; err != nil {
		return err
	}
	if len(componentIDs) == 0 {
		return nil
	}
	joins := make([]models.ProjectStack, 0, len(componentIDs))
	for _, componentID := range componentIDs {
		joins = append(joins, models.ProjectStack{ProjectID: projectID, StackComponentID: componentID})
	}
	return tx.Create(&joins).Error
}

// SetConfirmed flips the moderation flag. Idempotent: re-confirming leaves
// the flag unchanged.
func (r *ProjectRepo) SetConfirmed(id uuid.UUID, confirmed bool) (*models.Project, error) {
	return r.updateColumn(id, "is_confirmed", confirmed)
}

// SetFeatured toggles the curated highlight flag.
func (r *ProjectRepo) SetFeatured(id uuid.UUID, featured bool) (*models.Project, error) {
	return r.updateColumn(id, "featured", featured)
}

// SetStatus changes the lifecycle status.
func (r *ProjectRepo) SetStatus(id uuid.UUID, status string) (*models.Project, error) {
	return r.updateColumn(id, "status", status)
}

func (r *ProjectRepo) updateColumn(id uuid.UUID, column string, value interface{}) (*models.Project, error) {
	res := r.db.Model(&models.Project{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the project and every child row it owns. Children go first
// so the delete succeeds even where the store does not cascade.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		childTables := []interface{}{
			&models.ProjectStack{},
			&models.Contributor{},
			&models.Sponsor{},
			&models.GettingStartedGuide{},
			&models.CommunityLink{},
			&models.ContributingInfo{},
			&models.Metrics{},
			&models.RoadmapItem{},
		}
		for _, child := range childTables {
			if err := tx.Where("project_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&models.Project{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// tagsValue converts a tag list to the jsonb column representation.
func tagsValue(tags []string) datatypes.JSONSlice[string] {
	return datatypes.NewJSONSlice(tags)
}
