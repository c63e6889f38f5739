package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo        *ProjectRepo
	stackComponentRepo *StackComponentRepo
	adminAccountRepo   *AdminAccountRepo
	emailSignupRepo    *EmailSignupRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:        NewProjectRepo(db),
		stackComponentRepo: NewStackComponentRepo(db),
		adminAccountRepo:   NewAdminAccountRepo(db),
		emailSignupRepo:    NewEmailSignupRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) StackComponentRepo() *StackComponentRepo {
	return d.stackComponentRepo
}

func (d Database) AdminAccountRepo() *AdminAccountRepo {
	return d.adminAccountRepo
}

func (d Database) EmailSignupRepo() *EmailSignupRepo {
	return d.emailSignupRepo
}
