package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Note is a markdown progress note with optional inline photo URLs. Unlike
// photos, notes stay mutable after creation.
type Note struct {
	ID        uuid.UUID                  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID                  `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_notes_project_id"`
	Content   string                     `json:"content" db:"content" gorm:"type:text;not null"`
	Photos    datatypes.JSONSlice[string] `json:"photos,omitempty" db:"photos"`
	CreatedAt time.Time                  `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time                  `json:"updated_at" db:"updated_at" gorm:"not null"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
