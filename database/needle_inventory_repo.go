package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchlog/backend/models"
)

type NeedleInventoryRepo struct {
	db *gorm.DB
}

func NewNeedleInventoryRepo(db *gorm.DB) *NeedleInventoryRepo {
	return &NeedleInventoryRepo{db}
}

// FindAll returns the owned-needle catalog ordered by type, then size.
func (r *NeedleInventoryRepo) FindAll() ([]*models.NeedleInventory, error) {
	var needles []*models.NeedleInventory
	err := r.db.Order("type ASC").Order("size ASC").Find(&needles).Error
	return needles, err
}

// Add inserts a new inventory entry
func (r *NeedleInventoryRepo) Add(needle *models.NeedleInventory) error {
	return r.db.Create(needle).Error
}

// Delete removes an inventory entry by id
func (r *NeedleInventoryRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.NeedleInventory{}, "id = ?", id).Error
}
