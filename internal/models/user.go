package models

// User roles.
const (
	RoleAdmin      = "ADMIN"
	RoleSupervisor = "SUPERVISOR"
	RoleUser       = "USER"
)

// User is a dashboard account. Email is unique case-insensitively, enforced
// by the user service. Passwords are stored as bcrypt hashes and never
// serialized.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"index;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         string `gorm:"index;size:32;not null;default:USER" json:"role"`
	IsActive     bool   `gorm:"index;not null;default:true" json:"isActive"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}
