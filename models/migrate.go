package models

import "gorm.io/gorm"

// Migrate creates or updates every table the backend owns. Tags must come
// before ProjectTag so the association's foreign keys have a target.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Project{},
		&Pattern{},
		&Yarn{},
		&Needle{},
		&NeedleInventory{},
		&Tag{},
		&ProjectTag{},
		&Photo{},
		&Note{},
	)
}
