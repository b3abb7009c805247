package database

import "gotolinks/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Profile{},
		&models.ProfileBlock{},
		&models.Stats{},
	}
}
