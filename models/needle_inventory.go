package models

import "github.com/google/uuid"

// NeedleInventory is an owned-needle preset, independent of any project.
// Entries are copied into a project's needle list and never synced back.
type NeedleInventory struct {
	ID     uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Size   string     `json:"size" db:"size" gorm:"type:text;not null"`
	Type   NeedleType `json:"type" db:"type" gorm:"type:text;not null"`
	Length *string    `json:"length,omitempty" db:"length" gorm:"type:text"`
}

func (NeedleInventory) TableName() string {
	return "needle_inventory"
}
