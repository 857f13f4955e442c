package models

import (
	"time"

	"github.com/google/uuid"
)

type PhotoType string

const (
	PhotoProgress PhotoType = "progress"
	PhotoFinal    PhotoType = "final"
)

// ValidPhotoType reports whether t is a recognized photo type.
func ValidPhotoType(t PhotoType) bool {
	return t == PhotoProgress || t == PhotoFinal
}

// Photo is a progress or finished-object photo. The row and the stored blob
// behind StoragePath live and die together; rows are immutable once created
// except for deletion.
type Photo struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID   uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_photos_project_id"`
	StoragePath string    `json:"storage_path" db:"storage_path" gorm:"type:text;not null"`
	PhotoType   PhotoType `json:"photo_type" db:"photo_type" gorm:"type:text;not null"`
	UploadedAt  time.Time `json:"uploaded_at" db:"uploaded_at" gorm:"not null"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
