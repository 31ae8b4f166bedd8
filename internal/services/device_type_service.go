package services

import (
	"strings"

	"caseops/internal/models"
	"caseops/internal/types"
	"gorm.io/gorm"
)

// DeviceTypeInput is the add payload for a device type.
type DeviceTypeInput struct {
	Name   string `json:"name"`
	Code   string `json:"code"`
	Status string `json:"status"`
}

var deviceTypeColumns = map[string]string{
	"name":   "name",
	"code":   "code",
	"status": "status",
}

// GetAllDeviceTypes returns every device type.
func GetAllDeviceTypes(db *gorm.DB) ([]models.DeviceType, error) {
	var rows []models.DeviceType
	if err := db.Find(&rows).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return rows, nil
}

// AddDeviceType creates a device type. Name is required; name and code are
// each checked independently for case-insensitive collisions, either one
// colliding is sufficient to reject.
func AddDeviceType(db *gorm.DB, input DeviceTypeInput) (*models.DeviceType, error) {
	name := strings.TrimSpace(input.Name)
	code := strings.TrimSpace(input.Code)
	if name == "" {
		return nil, types.NewValidationError("device type name required")
	}

	status := input.Status
	if status == "" {
		status = models.StatusActive
	}

	row := models.DeviceType{Name: name, Code: code, Status: status}
	err := db.Transaction(func(tx *gorm.DB) error {
		var byName int64
		if err := tx.Model(&models.DeviceType{}).
			Where("LOWER(name) = ?", strings.ToLower(name)).
			Count(&byName).Error; err != nil {
			return types.NewStorageError(err)
		}
		var byCode int64
		if code != "" {
			if err := tx.Model(&models.DeviceType{}).
				Where("LOWER(code) = ?", strings.ToLower(code)).
				Count(&byCode).Error; err != nil {
				return types.NewStorageError(err)
			}
		}
		if byName > 0 || byCode > 0 {
			return types.NewValidationError("device type name/code already exists")
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

// UpdateDeviceType applies a partial change set with the same collision
// checks as AddDeviceType, each excluding the record being updated.
func UpdateDeviceType(db *gorm.DB, id uint64, changes map[string]interface{}) (int64, error) {
	filtered := filterChanges(changes, deviceTypeColumns)
	if rawName, ok := filtered["name"].(string); ok {
		filtered["name"] = strings.TrimSpace(rawName)
	}
	if rawCode, ok := filtered["code"].(string); ok {
		filtered["code"] = strings.TrimSpace(rawCode)
	}
	if len(filtered) == 0 {
		return 0, nil
	}

	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if name, ok := filtered["name"].(string); ok && name != "" {
			var count int64
			if err := tx.Model(&models.DeviceType{}).
				Where("LOWER(name) = ? AND id <> ?", strings.ToLower(name), id).
				Count(&count).Error; err != nil {
				return types.NewStorageError(err)
			}
			if count > 0 {
				return types.NewValidationError("device type name already exists")
			}
		}
		if code, ok := filtered["code"].(string); ok && code != "" {
			var count int64
			if err := tx.Model(&models.DeviceType{}).
				Where("LOWER(code) = ? AND id <> ?", strings.ToLower(code), id).
				Count(&count).Error; err != nil {
				return types.NewStorageError(err)
			}
			if count > 0 {
				return types.NewValidationError("device type code already exists")
			}
		}
		res := tx.Model(&models.DeviceType{}).Where("id = ?", id).Updates(filtered)
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

// DeleteDeviceType removes one device type by id. Maintenance cases keep
// their deviceTypeCode strings; unmatched codes fall back to a literal label
// at read time.
func DeleteDeviceType(db *gorm.DB, id uint64) (int64, error) {
	res := db.Delete(&models.DeviceType{}, id)
	if res.Error != nil {
		return 0, types.NewStorageError(res.Error)
	}
	return res.RowsAffected, nil
}
