package services_test

import (
	"testing"

	"caseops/internal/models"
	"caseops/internal/services"
	"caseops/internal/types"
	"golang.org/x/crypto/bcrypt"
)

func TestAddUserDefaultsAndHashing(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{
		Email:    "new@caseops.local",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if row.Role != models.RoleUser {
		t.Errorf("role = %q, want default USER", row.Role)
	}
	if !row.IsActive {
		t.Error("isActive should default to true")
	}
	if row.PasswordHash == "secret" || row.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
}

func TestAddUserRequiresEmail(t *testing.T) {
	db := setupTestDB(t)

	_, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Password: "x"})
	if !types.IsValidation(err) {
		t.Fatalf("want validation error for missing email, got %v", err)
	}
}

func TestAddUserRejectsCaseInsensitiveEmail(t *testing.T) {
	db := setupTestDB(t)

	if _, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Email: "Admin@Caseops.local", Password: "x"}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	_, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Email: "admin@caseops.LOCAL", Password: "y"})
	if !types.IsValidation(err) {
		t.Fatalf("want validation error for duplicate email, got %v", err)
	}

	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 1 {
		t.Errorf("count = %d, rejected add must leave the collection unchanged", count)
	}
}

func TestUpdateUserEmailUniquenessExcludesSelf(t *testing.T) {
	db := setupTestDB(t)

	a, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Email: "a@caseops.local", Password: "x"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Email: "b@caseops.local", Password: "x"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := services.UpdateUser(db, bcrypt.MinCost, a.ID, map[string]interface{}{"email": "A@caseops.local"}); err != nil {
		t.Fatalf("self re-case failed: %v", err)
	}
	_, err = services.UpdateUser(db, bcrypt.MinCost, a.ID, map[string]interface{}{"email": "B@caseops.local"})
	if !types.IsValidation(err) {
		t.Fatalf("want validation error for collision, got %v", err)
	}
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := setupTestDB(t)

	row, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Email: "a@caseops.local", Password: "old"})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := services.UpdateUser(db, bcrypt.MinCost, row.ID, map[string]interface{}{"password": "new"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	var got models.User
	if err := db.First(&got, row.ID).Error; err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got.PasswordHash == "new" {
		t.Error("updated password must be stored hashed")
	}
	if bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("new")) != nil {
		t.Error("updated hash does not verify")
	}
}

func TestVerifyUser(t *testing.T) {
	db := setupTestDB(t)

	inactive := false
	if _, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Email: "ok@caseops.local", Password: "pw"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := services.AddUser(db, bcrypt.MinCost, services.UserInput{Email: "off@caseops.local", Password: "pw", IsActive: &inactive}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := services.VerifyUser(db, "OK@caseops.local", "pw"); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
	if _, err := services.VerifyUser(db, "ok@caseops.local", "wrong"); !types.IsValidation(err) {
		t.Errorf("wrong password: want validation error, got %v", err)
	}
	if _, err := services.VerifyUser(db, "missing@caseops.local", "pw"); !types.IsValidation(err) {
		t.Errorf("unknown email: want validation error, got %v", err)
	}
	if _, err := services.VerifyUser(db, "off@caseops.local", "pw"); !types.IsValidation(err) {
		t.Errorf("inactive account: want validation error, got %v", err)
	}
}
