package models

import "github.com/google/uuid"

type NeedleType string

const (
	NeedleCircular        NeedleType = "circular"
	NeedleStraight        NeedleType = "straight"
	NeedleDPN             NeedleType = "dpn"
	NeedleInterchangeable NeedleType = "interchangeable"
)

// NeedleTypes lists the recognized needle types.
var NeedleTypes = []NeedleType{NeedleCircular, NeedleStraight, NeedleDPN, NeedleInterchangeable}

// ValidNeedleType reports whether t is a recognized needle type.
func ValidNeedleType(t NeedleType) bool {
	for _, nt := range NeedleTypes {
		if nt == t {
			return true
		}
	}
	return false
}

// Needle is one needle used by a project. Size is free text since sizing
// systems vary; Length only means anything for circulars and
// interchangeables.
type Needle struct {
	ID        uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID uuid.UUID  `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_needles_project_id"`
	Size      string     `json:"size" db:"size" gorm:"type:text;not null"`
	Type      NeedleType `json:"type" db:"type" gorm:"type:text;not null"`
	Length    *string    `json:"length,omitempty" db:"length" gorm:"type:text"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
