package services_test

import (
	"testing"

	"caseops/internal/models"
	"caseops/internal/services"
	"caseops/internal/types"
)

func TestAddBrandTrimsName(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddBrand(db, services.BrandInput{Name: " Acme "})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if row.Name != "Acme" {
		t.Errorf("name = %q, want trimmed Acme", row.Name)
	}
	if row.Status != models.StatusActive {
		t.Errorf("status = %q, want default active", row.Status)
	}
}

func TestAddBrandRequiresName(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.AddBrand(db, services.BrandInput{Name: "   "})
	if !types.IsValidation(err) {
		t.Fatalf("want validation error for blank name, got %v", err)
	}
}

func TestAddBrandRejectsCaseInsensitiveDuplicate(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.AddBrand(db, services.BrandInput{Name: " Acme "}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := services.AddBrand(db, services.BrandInput{Name: "acme"})
	if !types.IsValidation(err) {
		t.Fatalf("want validation error for duplicate, got %v", err)
	}

	var count int64
	db.Model(&models.Brand{}).Count(&count)
	if count != 1 {
		t.Errorf("count = %d, rejected add must leave the collection unchanged", count)
	}
}

func TestUpdateBrandUniquenessExcludesSelf(t *testing.T) {
	db := setupTestDB(t)

	acme, err := services.AddBrand(db, services.BrandInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := services.AddBrand(db, services.BrandInput{Name: "Tornado"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Re-casing its own name is not a collision
	affected, err := services.UpdateBrand(db, acme.ID, map[string]interface{}{"name": "ACME"})
	if err != nil {
		t.Fatalf("self rename failed: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	// Taking another record's name is
	_, err = services.UpdateBrand(db, acme.ID, map[string]interface{}{"name": "tornado"})
	if !types.IsValidation(err) {
		t.Fatalf("want validation error for collision, got %v", err)
	}
}

func TestUpdateBrandMissingIDIsZeroEffect(t *testing.T) {
	db := setupTestDB(t)

	affected, err := services.UpdateBrand(db, 999, map[string]interface{}{"status": "inactive"})
	if err != nil {
		t.Fatalf("update against missing id must not error: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}
}

func TestDeleteBrandLeavesCases(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddBrand(db, services.BrandInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	kase := models.MaintenanceCase{CustomerName: "c", Brand: "Acme"}
	if err := db.Create(&kase).Error; err != nil {
		t.Fatalf("case create failed: %v", err)
	}

	affected, err := services.DeleteBrand(db, row.ID)
	if err != nil || affected != 1 {
		t.Fatalf("delete failed: affected=%d err=%v", affected, err)
	}

	// No cascade: the case keeps its brand name
	var got models.MaintenanceCase
	if err := db.First(&got, kase.ID).Error; err != nil {
		t.Fatalf("case lookup failed: %v", err)
	}
	if got.Brand != "Acme" {
		t.Errorf("case brand = %q, cascade deletes must not exist", got.Brand)
	}
}
