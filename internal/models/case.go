package models

// InstallationCase is one field-service installation job. Date and RaisedAt
// are RFC3339 strings as received from seed data or callers; a record with an
// unparseable date is stored as-is rather than rejected.
type InstallationCase struct {
	ID           uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Date         string  `gorm:"index;size:64" json:"date"`
	OrderNumber  *string `gorm:"index;size:255" json:"orderNumber"`
	Governorate  *string `gorm:"index;size:255" json:"governorate"`
	CustomerName string  `gorm:"index;size:255" json:"customerName"`
	Address      string  `gorm:"size:512" json:"address"`
	PhoneNumber  string  `gorm:"size:64" json:"phoneNumber"`
	ProductModel string  `gorm:"size:255" json:"productModel"`
	Brand        string  `gorm:"size:255" json:"brand"`
	Quantity     int     `gorm:"not null;default:1" json:"quantity"`
	Sup          string  `gorm:"size:255" json:"sup"`
	Notes        string  `gorm:"size:1024" json:"notes"`
	RaisedBy     string  `gorm:"size:255" json:"raisedBy"`
	RaisedAt     string  `gorm:"size:64" json:"raisedAt"`
}

// MaintenanceCase is one field-service maintenance job. Time is derived from
// Date as zero-padded "HH:MM" whenever Date is set; it is never independently
// settable. DeviceTypeCode is a soft lookup key into DeviceType, not a
// foreign key.
type MaintenanceCase struct {
	ID                    uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Date                  string  `gorm:"index;size:64" json:"date"`
	Time                  string  `gorm:"size:8" json:"time"`
	OrderNumber           *string `gorm:"index;size:255" json:"orderNumber"`
	Governorate           *string `gorm:"index;size:255" json:"governorate"`
	CustomerName          string  `gorm:"index;size:255" json:"customerName"`
	Address               string  `gorm:"size:512" json:"address"`
	PhoneNumber           string  `gorm:"size:64" json:"phoneNumber"`
	AdditionalPhoneNumber string  `gorm:"size:64" json:"additionalPhoneNumber"`
	DeviceType            string  `gorm:"size:255" json:"deviceType"`
	DeviceTypeCode        string  `gorm:"index;size:255" json:"deviceTypeCode"`
	Brand                 string  `gorm:"size:255" json:"brand"`
	Sup                   string  `gorm:"size:255" json:"sup"`
	DefectDescription     string  `gorm:"size:1024" json:"defectDescription"`
	IsRelatedToProject    bool    `gorm:"not null;default:false" json:"isRelatedToProject"`
	ProjectName           string  `gorm:"size:255" json:"projectName"`
	Notes                 string  `gorm:"size:1024" json:"notes"`
	RaisedBy              string  `gorm:"size:255" json:"raisedBy"`
	RaisedAt              string  `gorm:"size:64" json:"raisedAt"`
}

// TableName overrides the table name for InstallationCase
func (InstallationCase) TableName() string {
	return "installation_cases"
}

// TableName overrides the table name for MaintenanceCase
func (MaintenanceCase) TableName() string {
	return "maintenance_cases"
}
