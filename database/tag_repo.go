package database

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stitchlog/backend/errs"
	"github.com/stitchlog/backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// NormalizeTagName is the canonical form tag names are stored in.
func NormalizeTagName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Upsert returns the tag with the given normalized name, creating it when it
// does not exist yet. Safe to call with the same name from concurrent saves.
func (r *TagRepo) Upsert(name string) (*models.Tag, error) {
	return upsertTag(r.db, name)
}

// FindAll returns every tag ordered by name, for autocomplete.
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// upsertTag is shared with the project repo so tag replacement can run on a
// transaction handle. The unique index on name resolves the race between two
// saves introducing the same new tag; DoNothing keeps the winner's identity,
// and the follow-up read returns whichever row won.
func upsertTag(db *gorm.DB, name string) (*models.Tag, error) {
	normalized := NormalizeTagName(name)
	if normalized == "" {
		return nil, errs.NewInvalidFieldError("tags", "tag name cannot be blank")
	}

	tag := models.Tag{ID: uuid.New(), Name: normalized}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&tag).Error; err != nil {
		return nil, err
	}

	var out models.Tag
	if err := db.First(&out, "name = ?", normalized).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
