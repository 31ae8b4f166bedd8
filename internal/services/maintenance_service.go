package services

import (
	"errors"
	"time"

	"caseops/internal/models"
	"caseops/internal/normalize"
	"caseops/internal/types"
	"gorm.io/gorm"
)

// maintenanceColumns whitelists updatable fields for maintenance cases.
// "time" is deliberately absent: it is derived from "date" and never
// independently settable.
var maintenanceColumns = map[string]string{
	"date":                  "date",
	"orderNumber":           "order_number",
	"governorate":           "governorate",
	"customerName":          "customer_name",
	"address":               "address",
	"phoneNumber":           "phone_number",
	"additionalPhoneNumber": "additional_phone_number",
	"deviceType":            "device_type",
	"deviceTypeCode":        "device_type_code",
	"brand":                 "brand",
	"sup":                   "sup",
	"defectDescription":     "defect_description",
	"isRelatedToProject":    "is_related_to_project",
	"projectName":           "project_name",
	"notes":                 "notes",
	"raisedBy":              "raised_by",
	"raisedAt":              "raised_at",
}

// GetAllMaintenance returns every maintenance case.
func GetAllMaintenance(db *gorm.DB) ([]models.MaintenanceCase, error) {
	var rows []models.MaintenanceCase
	if err := db.Find(&rows).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return rows, nil
}

// GetMaintenanceByID returns one maintenance case or a not-found error.
func GetMaintenanceByID(db *gorm.DB, id uint64) (*models.MaintenanceCase, error) {
	var row models.MaintenanceCase
	if err := db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("maintenance case %d not found", id)
		}
		return nil, types.NewStorageError(err)
	}
	return &row, nil
}

// AddMaintenance creates a maintenance case with the same defaulting the
// seeder applies. Time is always recomputed from the resolved date; the raw
// shape has no time field, so a caller cannot supply one.
func AddMaintenance(db *gorm.DB, raw normalize.RawMaintenance) (*models.MaintenanceCase, error) {
	row := normalize.Maintenance(raw, time.Now())
	if err := db.Create(&row).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return &row, nil
}

// UpdateMaintenance applies a partial change set. When the change set carries
// a new date, time is recomputed from it and merged in; when date is absent,
// time is left untouched even if stale relative to the stored date. The
// invariant holds only at the moment date changes.
func UpdateMaintenance(db *gorm.DB, id uint64, changes map[string]interface{}) (int64, error) {
	filtered := filterChanges(changes, maintenanceColumns)
	if date, ok := filtered["date"].(string); ok {
		filtered["time"] = normalize.ClockTime(date)
	}
	if len(filtered) == 0 {
		return 0, nil
	}
	res := db.Model(&models.MaintenanceCase{}).Where("id = ?", id).Updates(filtered)
	if res.Error != nil {
		return 0, types.NewStorageError(res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteMaintenance removes one maintenance case by id.
func DeleteMaintenance(db *gorm.DB, id uint64) (int64, error) {
	res := db.Delete(&models.MaintenanceCase{}, id)
	if res.Error != nil {
		return 0, types.NewStorageError(res.Error)
	}
	return res.RowsAffected, nil
}
