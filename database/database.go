package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo         *ProjectRepo
	tagRepo             *TagRepo
	photoRepo           *PhotoRepo
	noteRepo            *NoteRepo
	needleInventoryRepo *NeedleInventoryRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	tagRepo := NewTagRepo(db)
	return Database{
		projectRepo:         NewProjectRepo(db, tagRepo),
		tagRepo:             tagRepo,
		photoRepo:           NewPhotoRepo(db),
		noteRepo:            NewNoteRepo(db),
		needleInventoryRepo: NewNeedleInventoryRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) PhotoRepo() *PhotoRepo {
	return d.photoRepo
}

func (d Database) NoteRepo() *NoteRepo {
	return d.noteRepo
}

func (d Database) NeedleInventoryRepo() *NeedleInventoryRepo {
	return d.needleInventoryRepo
}
