package services_test

import (
	"testing"
	"time"

	"caseops/internal/models"
	"caseops/internal/normalize"
	"caseops/internal/services"
)

func TestAddInstallationFillsDefaults(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddInstallation(db, normalize.RawInstallation{CustomerName: "Acme Co"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if row.ID == 0 {
		t.Error("id not assigned")
	}
	if row.Quantity != 1 {
		t.Errorf("quantity = %d, want default 1", row.Quantity)
	}
	if _, err := time.Parse(time.RFC3339, row.Date); err != nil {
		t.Errorf("date %q not a valid timestamp: %v", row.Date, err)
	}
	if _, err := time.Parse(time.RFC3339, row.RaisedAt); err != nil {
		t.Errorf("raisedAt %q not a valid timestamp: %v", row.RaisedAt, err)
	}
}

func TestAddInstallationAllowsDuplicateOrderNumbers(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 2; i++ {
		_, err := services.AddInstallation(db, normalize.RawInstallation{
			OrderNumber:  strptr("INST-1"),
			CustomerName: "Acme Co",
		})
		if err != nil {
			t.Fatalf("add %d failed: %v", i, err)
		}
	}

	var count int64
	db.Model(&models.InstallationCase{}).Where("order_number = ?", "INST-1").Count(&count)
	if count != 2 {
		t.Errorf("count = %d, order numbers are free text, not a key", count)
	}
}

func TestAddMaintenanceIgnoresCallerTime(t *testing.T) {
	db := setupTestDB(t)

	// The raw shape has no time field; whatever the caller sends there is
	// dropped by decoding, and time always comes from date.
	row, err := services.AddMaintenance(db, normalize.RawMaintenance{
		Date:         strptr("2024-03-05T15:30:00.000Z"),
		CustomerName: "x",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if row.Time != "15:30" {
		t.Errorf("time = %q, want 15:30 derived from date", row.Time)
	}
}

func TestUpdateMaintenanceRecomputesTimeOnDateChange(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddMaintenance(db, normalize.RawMaintenance{
		Date:         strptr("2024-03-05T15:30:00.000Z"),
		CustomerName: "x",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	affected, err := services.UpdateMaintenance(db, row.ID, map[string]interface{}{
		"date": "2025-06-01T14:30:00.000Z",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	got, err := services.GetMaintenanceByID(db, row.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Time != "14:30" {
		t.Errorf("time = %q, want 14:30 recomputed from new date", got.Time)
	}
}

func TestUpdateMaintenanceWithoutDateLeavesTime(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddMaintenance(db, normalize.RawMaintenance{
		Date:         strptr("2024-03-05T15:30:00.000Z"),
		CustomerName: "x",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := services.UpdateMaintenance(db, row.ID, map[string]interface{}{"notes": "called back"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := services.GetMaintenanceByID(db, row.ID)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.Time != "15:30" {
		t.Errorf("time = %q, must be untouched when date is absent", got.Time)
	}
}

func TestUpdateMaintenanceCannotSetTimeDirectly(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddMaintenance(db, normalize.RawMaintenance{
		Date:         strptr("2024-03-05T15:30:00.000Z"),
		CustomerName: "x",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	affected, err := services.UpdateMaintenance(db, row.ID, map[string]interface{}{"time": "23:59"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, a time-only change set must be a no-op", affected)
	}

	got, _ := services.GetMaintenanceByID(db, row.ID)
	if got.Time != "15:30" {
		t.Errorf("time = %q, caller-supplied time must be ignored", got.Time)
	}
}

func TestDeleteMissingIDIsZeroEffect(t *testing.T) {
	db := setupTestDB(t)

	affected, err := services.DeleteMaintenance(db, 12345)
	if err != nil {
		t.Fatalf("delete against missing id must not error: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}

	affected, err = services.DeleteInstallation(db, 12345)
	if err != nil || affected != 0 {
		t.Errorf("installation delete: affected=%d err=%v, want 0 and nil", affected, err)
	}
}
