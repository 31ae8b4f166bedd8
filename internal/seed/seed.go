// Package seed performs the one-time idempotent population of empty
// collections from the bundled static sources. Each collection is guarded
// purely by an emptiness check: a non-empty collection is never overwritten
// or merged, and a collection whose records are later deleted will reseed on
// the next run.
package seed

import (
	"encoding/json"
	"errors"
	"time"

	"caseops/data"
	"caseops/internal/models"
	"caseops/internal/normalize"
	"caseops/internal/types"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Run seeds every empty collection and must complete before consumers query
// the store. Collections fail independently: a storage error in one is
// collected and returned, but does not block the others. Malformed seed data
// never errors; it degrades to defaults or to zero records.
func Run(db *gorm.DB, lg *zap.SugaredLogger, bcryptCost int) error {
	return errors.Join(
		seedInstallations(db, lg),
		seedMaintenance(db, lg),
		seedBrands(db, lg),
		seedGovernorates(db, lg),
		seedDeviceTypes(db, lg),
		seedUsers(db, lg, bcryptCost),
	)
}

func seedInstallations(db *gorm.DB, lg *zap.SugaredLogger) error {
	count, err := tableCount(db, &models.InstallationCase{})
	if err != nil {
		return err
	}
	if count > 0 {
		lg.Debugw("already seeded", "collection", "installation_cases", "count", count)
		return nil
	}

	raws := decode[normalize.RawInstallation](data.Installations, lg, "installations")
	if len(raws) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.InstallationCase, 0, len(raws))
	for _, raw := range raws {
		rows = append(rows, normalize.Installation(raw, now))
	}

	if err := db.Create(&rows).Error; err != nil {
		lg.Errorw("seed failed", "collection", "installation_cases", "error", err)
		return types.NewStorageError(err)
	}
	lg.Infow("seeded", "collection", "installation_cases", "count", len(rows))
	return nil
}

func seedMaintenance(db *gorm.DB, lg *zap.SugaredLogger) error {
	count, err := tableCount(db, &models.MaintenanceCase{})
	if err != nil {
		return err
	}
	if count > 0 {
		lg.Debugw("already seeded", "collection", "maintenance_cases", "count", count)
		return nil
	}

	raws := decode[normalize.RawMaintenance](data.Maintenance, lg, "maintenance")
	if len(raws) == 0 {
		return nil
	}

	now := time.Now()
	rows := make([]models.MaintenanceCase, 0, len(raws))
	for _, raw := range raws {
		rows = append(rows, normalize.Maintenance(raw, now))
	}

	if err := db.Create(&rows).Error; err != nil {
		lg.Errorw("seed failed", "collection", "maintenance_cases", "error", err)
		return types.NewStorageError(err)
	}
	lg.Infow("seeded", "collection", "maintenance_cases", "count", len(rows))
	return nil
}

func seedBrands(db *gorm.DB, lg *zap.SugaredLogger) error {
	count, err := tableCount(db, &models.Brand{})
	if err != nil {
		return err
	}
	if count > 0 {
		lg.Debugw("already seeded", "collection", "brands", "count", count)
		return nil
	}

	names := decode[string](data.Brands, lg, "brands")
	rows := normalize.Brands(names)
	if len(rows) == 0 {
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		lg.Errorw("seed failed", "collection", "brands", "error", err)
		return types.NewStorageError(err)
	}
	lg.Infow("seeded", "collection", "brands", "count", len(rows))
	return nil
}

func seedGovernorates(db *gorm.DB, lg *zap.SugaredLogger) error {
	count, err := tableCount(db, &models.Governorate{})
	if err != nil {
		return err
	}
	if count > 0 {
		lg.Debugw("already seeded", "collection", "governorates", "count", count)
		return nil
	}

	names := decode[string](data.Governorates, lg, "governorates")
	rows := normalize.Governorates(names)
	if len(rows) == 0 {
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		lg.Errorw("seed failed", "collection", "governorates", "error", err)
		return types.NewStorageError(err)
	}
	lg.Infow("seeded", "collection", "governorates", "count", len(rows))
	return nil
}

// seedDeviceTypes derives the device type lookup from the maintenance static
// source, not from the live maintenance_cases table. It runs on its own
// emptiness guard, so it fires even when maintenance_cases was seeded
// separately or is already populated.
func seedDeviceTypes(db *gorm.DB, lg *zap.SugaredLogger) error {
	count, err := tableCount(db, &models.DeviceType{})
	if err != nil {
		return err
	}
	if count > 0 {
		lg.Debugw("already seeded", "collection", "device_types", "count", count)
		return nil
	}

	raws := decode[normalize.RawMaintenance](data.Maintenance, lg, "maintenance")
	rows := normalize.DeviceTypesFromMaintenance(raws)
	if len(rows) == 0 {
		lg.Infow("no device types derived from maintenance seed data")
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		lg.Errorw("seed failed", "collection", "device_types", "error", err)
		return types.NewStorageError(err)
	}
	lg.Infow("seeded", "collection", "device_types", "count", len(rows))
	return nil
}

func seedUsers(db *gorm.DB, lg *zap.SugaredLogger, bcryptCost int) error {
	count, err := tableCount(db, &models.User{})
	if err != nil {
		return err
	}
	if count > 0 {
		lg.Debugw("already seeded", "collection", "users", "count", count)
		return nil
	}

	raws := decode[normalize.RawUser](data.Users, lg, "users")
	rows := make([]models.User, 0, len(raws))
	for _, raw := range raws {
		if raw.Email == "" {
			lg.Warnw("skipping seed user without email")
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(raw.Password), bcryptCost)
		if err != nil {
			lg.Warnw("skipping seed user, hash failed", "email", raw.Email, "error", err)
			continue
		}
		user := models.User{
			Email:        raw.Email,
			PasswordHash: string(hash),
			Role:         models.RoleUser,
			IsActive:     true,
		}
		if raw.Role != nil {
			user.Role = *raw.Role
		}
		if raw.IsActive != nil {
			user.IsActive = *raw.IsActive
		}
		rows = append(rows, user)
	}
	if len(rows) == 0 {
		return nil
	}

	if err := db.Create(&rows).Error; err != nil {
		lg.Errorw("seed failed", "collection", "users", "error", err)
		return types.NewStorageError(err)
	}
	lg.Infow("seeded", "collection", "users", "count", len(rows))
	return nil
}

// tableCount wraps the per-collection emptiness check.
func tableCount(db *gorm.DB, model interface{}) (int64, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return 0, types.NewStorageError(err)
	}
	return count, nil
}

// decode unmarshals a seed file into a FlexList of T. A missing or malformed
// file logs a warning and yields zero records for that collection only.
func decode[T any](raw []byte, lg *zap.SugaredLogger, name string) []T {
	if len(raw) == 0 {
		return nil
	}
	var list types.FlexList[T]
	if err := json.Unmarshal(raw, &list); err != nil {
		lg.Warnw("seed file unreadable, seeding none", "source", name, "error", err)
		return nil
	}
	return list.Slice()
}
