package models

// Status values for lookup records.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Brand is a reference record joined to cases by name matching. Name is
// unique case-insensitively, enforced by the brand service.
type Brand struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"index;size:255;not null" json:"name"`
	Status string `gorm:"size:32;not null;default:active" json:"status"`
}

// DeviceType is a reference record joined to maintenance cases by code or
// name matching. Both name and code are unique case-insensitively, each
// checked independently by the device type service.
type DeviceType struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"index;size:255" json:"name"`
	Code   string `gorm:"index;size:255" json:"code"`
	Status string `gorm:"size:32;not null;default:active" json:"status"`
}

// Governorate is a reference record. Read-only after seeding.
type Governorate struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"index;size:255" json:"name"`
}

// TableName overrides the table name for Brand
func (Brand) TableName() string {
	return "brands"
}

// TableName overrides the table name for DeviceType
func (DeviceType) TableName() string {
	return "device_types"
}

// TableName overrides the table name for Governorate
func (Governorate) TableName() string {
	return "governorates"
}
