package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires every endpoint the frontend consumes.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Project aggregate endpoints
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/project/{projectID}", handlers.projectHandler.getProject())
		r.Post("/project", handlers.projectHandler.createProject())
		r.Put("/project/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/project/{projectID}", handlers.projectHandler.deleteProject())

		// Board / timeline endpoints
		r.Put("/project/{projectID}/status", handlers.projectHandler.changeStatus())
		r.Get("/project/{projectID}/timeline", handlers.projectHandler.getTimeline())
		r.Get("/statuses", handlers.projectHandler.getStatuses())

		// Photo endpoints
		r.Post("/project/{projectID}/photos", handlers.photoHandler.uploadPhoto())
		r.Delete("/photo/{photoID}", handlers.photoHandler.deletePhoto())

		// Note endpoints
		r.Post("/project/{projectID}/notes", handlers.noteHandler.createNote())
		r.Put("/note/{noteID}", handlers.noteHandler.updateNote())
		r.Delete("/note/{noteID}", handlers.noteHandler.deleteNote())

		// Tag autocomplete
		r.Get("/tags", handlers.tagHandler.getAllTags())

		// Needle inventory endpoints
		r.Get("/needle-inventory", handlers.needleInventoryHandler.getInventory())
		r.Post("/needle-inventory", handlers.needleInventoryHandler.addNeedle())
		r.Delete("/needle-inventory/{needleID}", handlers.needleInventoryHandler.deleteNeedle())

		// Pattern catalog lookup
		r.Post("/ravelry/pattern", handlers.patternHandler.lookupPattern())
	})
}
