package models

import "github.com/google/uuid"

// Tag is a global, name-unique label shared across projects. Names are
// normalized to lowercase-trimmed form before they reach storage; the unique
// index is what makes concurrent first-use of a new name safe.
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tags_name"`
}

// ProjectTag links a project to a tag. Its existence is its only state.
type ProjectTag struct {
	ProjectID uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;primaryKey;constraint:OnDelete:CASCADE"`
	TagID     uuid.UUID `json:"tag_id" db:"tag_id" gorm:"type:uuid;primaryKey"`

	Tag Tag `json:"tag,omitempty" gorm:"foreignKey:TagID;references:ID"`
}
