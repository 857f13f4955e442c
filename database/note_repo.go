package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/stitchlog/backend/models"
)

type NoteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(db *gorm.DB) *NoteRepo {
	return &NoteRepo{db}
}

// FindByID returns a note by its ID, nil when absent.
func (r *NoteRepo) FindByID(id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.First(&note, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Add inserts a new note
func (r *NoteRepo) Add(note *models.Note) error {
	return r.db.Create(note).Error
}

// Update replaces a note's content and attached photo URLs; UpdatedAt moves
// with the write.
func (r *NoteRepo) Update(id uuid.UUID, content string, photos []string) (*models.Note, error) {
	updates := map[string]interface{}{
		"content": content,
		"photos":  datatypes.NewJSONSlice(photos),
	}
	if err := r.db.Model(&models.Note{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a note by id
func (r *NoteRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Note{}, "id = ?", id).Error
}
