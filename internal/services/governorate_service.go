package services

import (
	"caseops/internal/models"
	"caseops/internal/types"
	"gorm.io/gorm"
)

// GetAllGovernorates returns every governorate. The collection is read-only
// through the data access layer; only the seeder populates it.
func GetAllGovernorates(db *gorm.DB) ([]models.Governorate, error) {
	var rows []models.Governorate
	if err := db.Find(&rows).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return rows, nil
}
