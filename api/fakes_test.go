package api

import (
	"github.com/google/uuid"
	"github.com/oss-atlas/open-source-directory-backend/database"
	"github.com/oss-atlas/open-source-directory-backend/models"
)

// Function-field fakes for the store interfaces. A nil function means the
// test does not expect that call.

type fakeProjectStore struct {
	createFn           func(*models.Project, database.ProjectChildren) error
	findBySlugFn       func(string, bool) (*models.Project, error)
	findByIDFn         func(uuid.UUID) (*models.Project, error)
	findPageFn         func(database.ProjectListOptions) ([]*models.Project, int64, error)
	updateBySlugFn     func(string, database.ProjectUpdate, *[]uuid.UUID) (*models.Project, error)
	applyAdminUpdateFn func(uuid.UUID, database.AdminProjectUpdate) (*models.Project, error)
	setConfirmedFn     func(uuid.UUID, bool) (*models.Project, error)
	setFeaturedFn      func(uuid.UUID, bool) (*models.Project, error)
	setStatusFn        func(uuid.UUID, string) (*models.Project, error)
	deleteFn           func(uuid.UUID) error
}

func (f *fakeProjectStore) Create(project *models.Project, children database.ProjectChildren) error {
	if f.createFn == nil {
		panic("unexpected Create call")
	}
	return f.createFn(project, children)
}

func (f *fakeProjectStore) FindBySlug(slug string, visibleOnly bool) (*models.Project, error) {
	if f.findBySlugFn == nil {
		panic("unexpected FindBySlug call")
	}
	return f.findBySlugFn(slug, visibleOnly)
}

func (f *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	if f.findByIDFn == nil {
		panic("unexpected FindByID call")
	}
	return f.findByIDFn(id)
}

func (f *fakeProjectStore) FindPage(opts database.ProjectListOptions) ([]*models.Project, int64, error) {
	if f.findPageFn == nil {
		panic("unexpected FindPage call")
	}
	return f.findPageFn(opts)
}

func (f *fakeProjectStore) UpdateBySlug(slug string, upd database.ProjectUpdate, stackIDs *[]uuid.UUID) (*models.Project, error) {
	if f.updateBySlugFn == nil {
		panic("unexpected UpdateBySlug call")
	}
	return f.updateBySlugFn(slug, upd, stackIDs)
}

func (f *fakeProjectStore) ApplyAdminUpdate(id uuid.UUID, upd database.AdminProjectUpdate) (*models.Project, error) {
	if f.applyAdminUpdateFn == nil {
		panic("unexpected ApplyAdminUpdate call")
	}
	return f.applyAdminUpdateFn(id, upd)
}

func (f *fakeProjectStore) SetConfirmed(id uuid.UUID, confirmed bool) (*models.Project, error) {
	if f.setConfirmedFn == nil {
		panic("unexpected SetConfirmed call")
	}
	return f.setConfirmedFn(id, confirmed)
}

func (f *fakeProjectStore) SetFeatured(id uuid.UUID, featured bool) (*models.Project, error) {
	if f.setFeaturedFn == nil {
		panic("unexpected SetFeatured call")
	}
	return f.setFeaturedFn(id, featured)
}

func (f *fakeProjectStore) SetStatus(id uuid.UUID, status string) (*models.Project, error) {
	if f.setStatusFn == nil {
		panic("unexpected SetStatus call")
	}
	return f.setStatusFn(id, status)
}

func (f *fakeProjectStore) Delete(id uuid.UUID) error {
	if f.deleteFn == nil {
		panic("unexpected Delete call")
	}
	return f.deleteFn(id)
}

type fakeStackComponentStore struct {
	findAllFn func(string, string) ([]*models.StackComponent, error)
	addFn     func(*models.StackComponent) error
}

func (f *fakeStackComponentStore) FindAll(componentType, search string) ([]*models.StackComponent, error) {
	if f.findAllFn == nil {
		panic("unexpected FindAll call")
	}
	return f.findAllFn(componentType, search)
}

func (f *fakeStackComponentStore) Add(component *models.StackComponent) error {
	if f.addFn == nil {
		panic("unexpected Add call")
	}
	return f.addFn(component)
}

type fakeAdminAccountStore struct {
	findByUsernameFn func(string) (*models.AdminAccount, error)
	touchLastLoginFn func(uuid.UUID) error
}

func (f *fakeAdminAccountStore) FindByUsername(username string) (*models.AdminAccount, error) {
	if f.findByUsernameFn == nil {
		panic("unexpected FindByUsername call")
	}
	return f.findByUsernameFn(username)
}

func (f *fakeAdminAccountStore) TouchLastLogin(id uuid.UUID) error {
	if f.touchLastLoginFn == nil {
		panic("unexpected TouchLastLogin call")
	}
	return f.touchLastLoginFn(id)
}

type fakeEmailSignupStore struct {
	addFn func(*models.EmailSignup) error
}

func (f *fakeEmailSignupStore) Add(signup *models.EmailSignup) error {
	if f.addFn == nil {
		panic("unexpected Add call")
	}
	return f.addFn(signup)
}
