package services

import (
	"errors"
	"time"

	"caseops/internal/models"
	"caseops/internal/normalize"
	"caseops/internal/types"
	"gorm.io/gorm"
)

// installationColumns whitelists updatable fields for installation cases.
var installationColumns = map[string]string{
	"date":         "date",
	"orderNumber":  "order_number",
	"governorate":  "governorate",
	"customerName": "customer_name",
	"address":      "address",
	"phoneNumber":  "phone_number",
	"productModel": "product_model",
	"brand":        "brand",
	"quantity":     "quantity",
	"sup":          "sup",
	"notes":        "notes",
	"raisedBy":     "raised_by",
	"raisedAt":     "raised_at",
}

// GetAllInstallations returns every installation case.
func GetAllInstallations(db *gorm.DB) ([]models.InstallationCase, error) {
	var rows []models.InstallationCase
	if err := db.Find(&rows).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return rows, nil
}

// GetInstallationByID returns one installation case or a not-found error.
func GetInstallationByID(db *gorm.DB, id uint64) (*models.InstallationCase, error) {
	var row models.InstallationCase
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("installation case %d not found", id)
		}
		return nil, types.NewStorageError(err)
	}
	return &row, nil
}

// AddInstallation creates an installation case, filling date and raisedAt
// with the current time when the caller omits them, the same defaulting the
// seeder applies. Order numbers carry no uniqueness constraint; they are
// optional free text, not a key.
func AddInstallation(db *gorm.DB, raw normalize.RawInstallation) (*models.InstallationCase, error) {
	row := normalize.Installation(raw, time.Now())
	if err := db.Create(&row).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return &row, nil
}

// UpdateInstallation applies a partial change set and returns the number of
// rows touched (zero when the id does not exist).
func UpdateInstallation(db *gorm.DB, id uint64, changes map[string]interface{}) (int64, error) {
	filtered := filterChanges(changes, installationColumns)
	if len(filtered) == 0 {
		return 0, nil
	}
	res := db.Model(&models.InstallationCase{}).Where("id = ?", id).Updates(filtered)
	if res.Error != nil {
		return 0, types.NewStorageError(res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteInstallation removes one installation case by id, returning the
// number of rows removed.
func DeleteInstallation(db *gorm.DB, id uint64) (int64, error) {
	res := db.Delete(&models.InstallationCase{}, id)
	if res.Error != nil {
		return 0, types.NewStorageError(res.Error)
	}
	return res.RowsAffected, nil
}
