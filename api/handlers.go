package api

import (
	"github.com/oss-atlas/open-source-directory-backend/auth"
	"github.com/oss-atlas/open-source-directory-backend/database"
	"github.com/oss-atlas/open-source-directory-backend/ratelimit"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, issuer *auth.TokenIssuer, limiter *ratelimit.Limiter) *routeHandlers {
	return &routeHandlers{
		authHandler:           newAuthHandler(database.AdminAccountRepo(), issuer),
		projectHandler:        newProjectHandler(database.ProjectRepo()),
		adminHandler:          newAdminHandler(database.ProjectRepo()),
		stackComponentHandler: newStackComponentHandler(database.StackComponentRepo()),
		signupHandler:         newSignupHandler(database.EmailSignupRepo(), limiter),
	}
}
