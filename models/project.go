package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is the aggregate root. It owns its pattern, yarns, needles, photos
// and notes, and is linked to shared tags through ProjectTag rows.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Status      Status    `json:"status" db:"status" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`

	Pattern *Pattern `json:"pattern,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Yarns   []Yarn   `json:"yarns" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Needles []Needle `json:"needles" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Photos  []Photo  `json:"photos" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Notes   []Note   `json:"notes" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`

	ProjectTags []ProjectTag `json:"-" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Tags        []Tag        `json:"tags" gorm:"-"`
}

// CollapseTags fills Tags from the preloaded association rows so callers see
// a plain tag list, never the join rows themselves.
func (p *Project) CollapseTags() {
	p.Tags = make([]Tag, 0, len(p.ProjectTags))
	for _, pt := range p.ProjectTags {
		if pt.Tag.ID != uuid.Nil {
			p.Tags = append(p.Tags, pt.Tag)
		}
	}
}
