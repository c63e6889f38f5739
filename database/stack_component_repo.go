package database

import (
	"github.com/oss-atlas/open-source-directory-backend/models"
	"gorm.io/gorm"
)

type StackComponentRepo struct {
	db *gorm.DB
}

func NewStackComponentRepo(db *gorm.DB) *StackComponentRepo {
	return &StackComponentRepo{db}
}

// FindAll returns stack components ordered by name, optionally filtered by
// type and a case-insensitive name search.
func (r *StackComponentRepo) FindAll(componentType, search string) ([]*models.StackComponent, error) {
	query := r.db.Order("name ASC")
	if componentType != "" {
		query = query.Where("type = ?", componentType)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	var components []*models.StackComponent
	err := query.Find(&components).Error
	return components, err
}

// Add inserts a new stack component. A duplicate name surfaces as
// gorm.ErrDuplicatedKey from the unique constraint.
func (r *StackComponentRepo) Add(component *models.StackComponent) error {
	return r.db.Create(component).Error
}
