package api

import "github.com/oss-atlas/open-source-directory-backend/models"

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler           authHandler
	projectHandler        projectHandler
	adminHandler          adminHandler
	stackComponentHandler stackComponentHandler
	signupHandler         signupHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"name"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}

// ProjectListResponse is one page of projects plus pagination info. Total
// counts every row matching the filters, not just this page.
type ProjectListResponse struct {
	Projects []*models.Project `json:"projects"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}
