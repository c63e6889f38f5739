package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts the public and admin route groups. Every admin route
// sits behind the auth middleware, so no admin handler runs without a
// verified bearer token.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/login", handlers.authHandler.login())

		r.Get("/projects", handlers.projectHandler.getProjects())
		r.Post("/projects", handlers.projectHandler.createProject())
		r.Get("/projects/{slug}", handlers.projectHandler.getProject())
		r.Put("/projects/{slug}", handlers.projectHandler.updateProject())
		r.Delete("/projects/{slug}", handlers.projectHandler.deleteProject())

		r.Get("/stack-components", handlers.stackComponentHandler.getComponents())
		r.Post("/stack-components", handlers.stackComponentHandler.createComponent())

		r.Post("/signup", handlers.signupHandler.signup())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/admin/projects", handlers.adminHandler.getProjects())
		r.Patch("/admin/projects", handlers.adminHandler.patchProject())
		r.Delete("/admin/projects", handlers.adminHandler.deleteProject())
		r.Get("/admin/projects/{projectID}", handlers.adminHandler.getProject())
		r.Patch("/admin/projects/{projectID}", handlers.adminHandler.updateProject())
	})
}
