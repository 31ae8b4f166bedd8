package services

import (
	"errors"
	"strings"

	"caseops/internal/models"
	"caseops/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInput is the add payload for a user.
type UserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive *bool  `json:"isActive"`
}

var userColumns = map[string]string{
	"email":    "email",
	"password": "password_hash",
	"role":     "role",
	"isActive": "is_active",
}

// GetAllUsers returns every user.
func GetAllUsers(db *gorm.DB) ([]models.User, error) {
	var rows []models.User
	if err := db.Find(&rows).Error; err != nil {
		return nil, types.NewStorageError(err)
	}
	return rows, nil
}

// GetUserByEmail finds a user by case-insensitive email match.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var row models.User
	err := db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, types.NewNotFoundError("user %s not found", email)
		}
		return nil, types.NewStorageError(err)
	}
	return &row, nil
}

// AddUser creates a user. Email is required and unique case-insensitively;
// role defaults to USER and isActive to true. Passwords are bcrypt-hashed at
// rest. Ids come from the store's auto-increment like every other collection.
func AddUser(db *gorm.DB, bcryptCost int, input UserInput) (*models.User, error) {
	if input.Email == "" {
		return nil, types.NewValidationError("email required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, types.NewStorageError(err)
	}

	row := models.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if input.Role != "" {
		row.Role = input.Role
	}
	if input.IsActive != nil {
		row.IsActive = *input.IsActive
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("LOWER(email) = ?", strings.ToLower(input.Email)).
			Count(&count).Error; err != nil {
			return types.NewStorageError(err)
		}
		if count > 0 {
			return types.NewValidationError("user already exists")
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

// UpdateUser applies a partial change set. An email change re-checks
// case-insensitive uniqueness excluding the record being updated; a password
// change is hashed before it lands.
func UpdateUser(db *gorm.DB, bcryptCost int, id uint64, changes map[string]interface{}) (int64, error) {
	filtered := filterChanges(changes, userColumns)
	if password, ok := filtered["password_hash"].(string); ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return 0, types.NewStorageError(err)
		}
		filtered["password_hash"] = string(hash)
	}
	if len(filtered) == 0 {
		return 0, nil
	}

	var affected int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if email, ok := filtered["email"].(string); ok && email != "" {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("LOWER(email) = ? AND id <> ?", strings.ToLower(email), id).
				Count(&count).Error; err != nil {
				return types.NewStorageError(err)
			}
			if count > 0 {
				return types.NewValidationError("email already used")
			}
		}
		res := tx.Model(&models.User{}).Where("id = ?", id).Updates(filtered)
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

// DeleteUser removes one user by id.
func DeleteUser(db *gorm.DB, id uint64) (int64, error) {
	res := db.Delete(&models.User{}, id)
	if res.Error != nil {
		return 0, types.NewStorageError(res.Error)
	}
	return res.RowsAffected, nil
}

// VerifyUser checks a login attempt against the stored bcrypt hash. Inactive
// accounts and unknown emails reject identically to a bad password.
func VerifyUser(db *gorm.DB, email, password string) (*models.User, error) {
	invalid := &types.CustomError{
		Code:    401,
		Message: "invalid email or password",
		Type:    types.ErrTypeValidation,
	}

	var row models.User
	err := db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invalid
		}
		return nil, types.NewStorageError(err)
	}
	if !row.IsActive {
		return nil, invalid
	}
	if bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)) != nil {
		return nil, invalid
	}
	return &row, nil
}
