package api

import (
	"github.com/stitchlog/backend/database"
	"github.com/stitchlog/backend/services"
	"github.com/stitchlog/backend/storage"
)

type routeHandlers struct {
	projectHandler         projectHandler
	photoHandler           photoHandler
	noteHandler            noteHandler
	tagHandler             tagHandler
	needleInventoryHandler needleInventoryHandler
	patternHandler         patternHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, blobs storage.Provider, catalog *services.RavelryClient) *routeHandlers {
	return &routeHandlers{
		projectHandler:         newProjectHandler(database.ProjectRepo()),
		photoHandler:           newPhotoHandler(database.ProjectRepo(), database.PhotoRepo(), blobs),
		noteHandler:            newNoteHandler(database.ProjectRepo(), database.NoteRepo()),
		tagHandler:             newTagHandler(database.TagRepo()),
		needleInventoryHandler: newNeedleInventoryHandler(database.NeedleInventoryRepo()),
		patternHandler:         newPatternHandler(catalog),
	}
}
