package services

import (
	"fmt"
	"strconv"

	"caseops/internal/config"
	"caseops/internal/models"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck pings the store and reports per-collection record counts. A
// store that cannot be reached marks the whole service unhealthy.
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.ErrorMessage = fmt.Sprintf("database connection error: %v", err)
		return result
	}
	if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.ErrorMessage = fmt.Sprintf("database ping failed: %v", err)
		return result
	}

	result.Database = "ok"
	result.Details["database_type"] = cfg.DBType

	counts := map[string]interface{}{
		"installation_cases": &models.InstallationCase{},
		"maintenance_cases":  &models.MaintenanceCase{},
		"brands":             &models.Brand{},
		"device_types":       &models.DeviceType{},
		"governorates":       &models.Governorate{},
		"users":              &models.User{},
	}
	for name, model := range counts {
		var count int64
		if err := db.Model(model).Count(&count).Error; err != nil {
			result.Status = "unhealthy"
			result.Details[name] = "error"
			result.ErrorMessage = fmt.Sprintf("count failed for %s: %v", name, err)
			continue
		}
		result.Details[name] = strconv.FormatInt(count, 10)
	}

	return result
}
