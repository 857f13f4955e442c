package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Pattern holds what a project is knit from. Metadata is an opaque blob
// sourced from the external catalog (or entered by hand); its internal shape
// is never validated here, only stored and returned whole.
type Pattern struct {
	ID        uuid.UUID         `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID         `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_patterns_project_id"`
	Name      string            `json:"name" db:"name" gorm:"type:text;not null"`
	Designer  string            `json:"designer" db:"designer" gorm:"type:text;not null"`
	SourceURL string            `json:"source_url" db:"source_url" gorm:"type:text;not null"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty" db:"metadata"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
