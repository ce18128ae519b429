package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public catalog routes and the admin mutation routes.
// Admin routes sit behind the shared-secret header check.
func setupRoutes(r chi.Router, handlers *routeHandlers, adminAuth adminAuthMiddleware) {
	r.Get("/", handlers.projectHandler.health())

	// Public read endpoints
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/{slug}", handlers.projectHandler.getProjectBySlug())
	})

	// Admin mutation endpoints
	r.Route("/admin", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(adminAuth.require)

		r.Post("/projects", handlers.projectHandler.createProject())
		r.Patch("/projects/{projectID}/publish", handlers.projectHandler.togglePublish())
	})
}
