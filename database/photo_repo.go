package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchlog/backend/models"
)

type PhotoRepo struct {
	db *gorm.DB
}

func NewPhotoRepo(db *gorm.DB) *PhotoRepo {
	return &PhotoRepo{db}
}

// FindByID returns a photo by its ID, nil when absent.
func (r *PhotoRepo) FindByID(id uuid.UUID) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.First(&photo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &photo, nil
}

// FindByProject returns a project's photos, newest upload first.
func (r *PhotoRepo) FindByProject(projectID uuid.UUID) ([]*models.Photo, error) {
	var photos []*models.Photo
	err := r.db.Where("project_id = ?", projectID).Order("uploaded_at DESC").Find(&photos).Error
	return photos, err
}

// Add inserts a new photo record
func (r *PhotoRepo) Add(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

// Delete removes a photo record by id. The caller is responsible for the
// blob behind it; see the photo handler for the ordering contract.
func (r *PhotoRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Photo{}, "id = ?", id).Error
}
