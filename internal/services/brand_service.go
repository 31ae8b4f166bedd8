package services

import (
	"strings"

	"caseops/internal/models"
	"caseops/internal/types"
	"gorm.io/gorm"
)

// BrandInput is the add payload for a brand.
type BrandInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

var brandColumns = map[string]string{
	"name":   "name",
	"status": "status",
}

// GetAllBrands returns every brand.
func GetAllBrands(db *gorm.DB) ([]models.Brand, error) {
	var rows []models.Brand
	if err := db.Find(&rows).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return rows, nil
}

// AddBrand creates a brand. The name is trimmed, required, and unique
// case-insensitively. The check and insert run in one transaction so two
// concurrent adds of the same name cannot both land.
func AddBrand(db *gorm.DB, input BrandInput) (*models.Brand, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, types.NewValidationError("brand name required")
	}

	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	row := models.Brand{Name: name, Status: status}
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Brand{}).
			Where("LOWER(name) = ?", strings.ToLower(name)).
			Count(&count).Error; err != nil {
			return types.NewStorageError(err)
		}
		if count > 0 {
			return types.NewValidationError("brand already exists")
		}
		if err := tx.Create(&row).Error; err != nil {
			return types.NewStorageError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateBrand applies a partial change set. A name change re-checks
// case-insensitive uniqueness excluding the record being updated.
func UpdateBrand(db *gorm.DB, id uint64, changes map[string]interface{}) (int64, error) {
	filtered := filterChanges(changes, brandColumns)
	if rawName, ok := filtered["name"].(string); ok {
		filtered["name"] = strings.TrimSpace(rawName)
	}
	if len(filtered) == 0 {
		return 0, nil
	}

	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if name, ok := filtered["name"].(string); ok && name != "" {
			var count int64
			if err := tx.Model(&models.Brand{}).
				Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), id).
				Count(&count).Error; err != nil {
				return types.NewStorageError(err)
			}
			if count > 0 {
				return types.NewValidationError("brand name already taken")
			}
		}
		res := tx.Model(&models.Brand{}).Where("id = ?", id).Updates(filtered)
		if res.Error != nil {
			return types.NewStorageError(res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// DeleteBrand removes one brand by id. Cases referencing the brand by name
// are untouched; there are no cascade deletes.
func DeleteBrand(db *gorm.DB, id uint64) (int64, error) {
	res := db.Delete(&models.Brand{}, id)
	if res.Error != nil {
		return 0, types.NewStorageError(res.Error)
	}
	return res.RowsAffected, nil
}
