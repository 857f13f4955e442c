package models

import "github.com/google/uuid"

// Standard yarn weight names. Weight is stored as free text so catalog
// imports with unconventional weights survive a round trip.
const (
	YarnWeightLace       = "lace"
	YarnWeightFingering  = "fingering"
	YarnWeightSport      = "sport"
	YarnWeightDK         = "dk"
	YarnWeightWorsted    = "worsted"
	YarnWeightAran       = "aran"
	YarnWeightBulky      = "bulky"
	YarnWeightSuperBulky = "super-bulky"
	YarnWeightJumbo      = "jumbo"
)

// Yarn is one yarn used by a project. Yardage is never negative; an absent
// value defaults to 0.
type Yarn struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID    uuid.UUID `json:"project_id" db:"project_id" gorm:"type:uuid;not null;index:idx_yarns_project_id"`
	Brand        string    `json:"brand" db:"brand" gorm:"type:text;not null"`
	Colorway     string    `json:"colorway" db:"colorway" gorm:"type:text;not null"`
	Weight       string    `json:"weight" db:"weight" gorm:"type:text;not null"`
	FiberContent string    `json:"fiber_content" db:"fiber_content" gorm:"type:text;not null"`
	Yardage      float64   `json:"yardage" db:"yardage" gorm:"not null;default:0"`
	Notes        string    `json:"notes,omitempty" db:"notes" gorm:"type:text"`

	Project Project `json:"-" gorm:"foreignKey:ProjectID;references:ID"`
}
