package seed_test

import (
	"testing"

	"caseops/internal/database"
	"caseops/internal/models"
	"caseops/internal/seed"
	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}

func TestSeedPopulatesEmptyCollections(t *testing.T) {
	db := setupTestDB(t)
	lg := zap.NewNop().Sugar()

	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	for _, tc := range []struct {
		model interface{}
		name  string
	}{
		{&models.InstallationCase{}, "installation_cases"},
		{&models.MaintenanceCase{}, "maintenance_cases"},
		{&models.Brand{}, "brands"},
		{&models.DeviceType{}, "device_types"},
		{&models.Governorate{}, "governorates"},
		{&models.User{}, "users"},
	} {
		if n := count(t, db, tc.model); n == 0 {
			t.Errorf("%s not seeded", tc.name)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	lg := zap.NewNop().Sugar()

	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}

	before := map[string]int64{
		"installations": count(t, db, &models.InstallationCase{}),
		"maintenance":   count(t, db, &models.MaintenanceCase{}),
		"brands":        count(t, db, &models.Brand{}),
		"deviceTypes":   count(t, db, &models.DeviceType{}),
		"governorates":  count(t, db, &models.Governorate{}),
		"users":         count(t, db, &models.User{}),
	}

	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	after := map[string]int64{
		"installations": count(t, db, &models.InstallationCase{}),
		"maintenance":   count(t, db, &models.MaintenanceCase{}),
		"brands":        count(t, db, &models.Brand{}),
		"deviceTypes":   count(t, db, &models.DeviceType{}),
		"governorates":  count(t, db, &models.Governorate{}),
		"users":         count(t, db, &models.User{}),
	}

	for name, n := range before {
		if after[name] != n {
			t.Errorf("%s count changed on reseed: %d -> %d", name, n, after[name])
		}
	}
}

func TestSeedReseedsAfterFullDelete(t *testing.T) {
	db := setupTestDB(t)
	lg := zap.NewNop().Sugar()

	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := db.Where("1 = 1").Delete(&models.Brand{}).Error; err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The guard is pure emptiness; an emptied collection reseeds.
	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("reseed failed: %v", err)
	}
	if n := count(t, db, &models.Brand{}); n == 0 {
		t.Error("brands did not reseed after full delete")
	}
}

func TestSeedBrandsDeduplicated(t *testing.T) {
	db := setupTestDB(t)
	lg := zap.NewNop().Sugar()

	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var dupes int64
	if err := db.Model(&models.Brand{}).Where("LOWER(name) = ?", "fresh").Count(&dupes).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if dupes != 1 {
		t.Errorf("got %d fresh brands, want 1 (case-insensitive dedup)", dupes)
	}
}

func TestDeviceTypesDerivedFromStaticSource(t *testing.T) {
	db := setupTestDB(t)
	lg := zap.NewNop().Sugar()

	// Pre-populate maintenance so its own seed is skipped; device types must
	// still derive from the static source, not the live table.
	pre := models.MaintenanceCase{CustomerName: "existing", DeviceType: "Other", DeviceTypeCode: "ZZ"}
	if err := db.Create(&pre).Error; err != nil {
		t.Fatalf("precreate failed: %v", err)
	}

	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if n := count(t, db, &models.MaintenanceCase{}); n != 1 {
		t.Errorf("maintenance count = %d, non-empty collection must not be reseeded", n)
	}
	var zz int64
	db.Model(&models.DeviceType{}).Where("code = ?", "ZZ").Count(&zz)
	if zz != 0 {
		t.Error("device types must derive from the static seed source, not the live table")
	}
	if n := count(t, db, &models.DeviceType{}); n == 0 {
		t.Error("device types not derived from maintenance static source")
	}

	var caseVariants int64
	db.Model(&models.DeviceType{}).Where("LOWER(name) = ?", "air conditioner").Count(&caseVariants)
	if caseVariants != 1 {
		t.Errorf("got %d air conditioner device types, want 1 (composite key dedup)", caseVariants)
	}
}

func TestSeedUsersHashedAndDefaulted(t *testing.T) {
	db := setupTestDB(t)
	lg := zap.NewNop().Sugar()

	if err := seed.Run(db, lg, bcrypt.MinCost); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var admin models.User
	if err := db.Where("email = ?", "admin@caseops.local").First(&admin).Error; err != nil {
		t.Fatalf("admin not seeded: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("admin role = %q", admin.Role)
	}
	if admin.PasswordHash == "admin1234" || admin.PasswordHash == "" {
		t.Error("seeded password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin1234")) != nil {
		t.Error("seeded hash does not verify against the seed password")
	}

	var defaulted models.User
	if err := db.Where("email = ?", "sara.adel@caseops.local").First(&defaulted).Error; err != nil {
		t.Fatalf("defaulted user not seeded: %v", err)
	}
	if defaulted.Role != models.RoleUser || !defaulted.IsActive {
		t.Errorf("defaults not applied: role=%q isActive=%v", defaulted.Role, defaulted.IsActive)
	}
}
