package api

import (
	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/database"
	"github.com/oss-atlas/open-source-directory-backend/models"
)

// Handlers depend on these narrow store interfaces rather than the concrete
// repositories so tests can run against fakes. The database package's repos
// satisfy them.

type ProjectStore interface {
	Create(project *models.Project, children database.ProjectChildren) error
	FindBySlug(slug string, visibleOnly bool) (*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	FindPage(opts database.ProjectListOptions) ([]*models.Project, int64, error)
	UpdateBySlug(slug string, upd database.ProjectUpdate, stackIDs *[]uuid.UUID) (*models.Project, error)
	ApplyAdminUpdate(id uuid.UUID, upd database.AdminProjectUpdate) (*models.Project, error)
	SetConfirmed(id uuid.UUID, confirmed bool) (*models.Project, error)
	SetFeatured(id uuid.UUID, featured bool) (*models.Project, error)
	SetStatus(id uuid.UUID, status string) (*models.Project, error)
	Delete(id uuid.UUID) error
}

type StackComponentStore interface {
	FindAll(componentType, search string) ([]*models.StackComponent, error)
	Add(component *models.StackComponent) error
}

type AdminAccountStore interface {
	FindByUsername(username string) (*models.AdminAccount, error)
	TouchLastLogin(id uuid.UUID) error
}

type EmailSignupStore interface {
	Add(signup *models.EmailSignup) error
}
