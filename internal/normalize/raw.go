package normalize

import "caseops/internal/types"

// RawInstallation is the tolerant wire shape of one installation seed record.
// Pointer fields distinguish absent from empty.
type RawInstallation struct {
	Date         *string           `json:"date"`
	OrderNumber  *string           `json:"orderNumber"`
	Governorate  *string           `json:"governorate"`
	CustomerName string            `json:"customerName"`
	Address      string            `json:"address"`
	PhoneNumber  string            `json:"phoneNumber"`
	ProductModel string            `json:"productModel"`
	Brand        string            `json:"brand"`
	Quantity     *types.FlexUint64 `json:"quantity"`
	Sup          string            `json:"sup"`
	Notes        string            `json:"notes"`
	RaisedBy     string            `json:"raisedBy"`
	RaisedAt     *string           `json:"raisedAt"`
}

// RawMaintenance is the tolerant wire shape of one maintenance seed record.
// The device type fields carry both historical and current aliases; Device
// wins over DeviceType and DeviceCode wins over DeviceTypeCode when both are
// present.
type RawMaintenance struct {
	Date                  *string        `json:"date"`
	OrderNumber           *string        `json:"orderNumber"`
	Governorate           *string        `json:"governorate"`
	CustomerName          string         `json:"customerName"`
	Address               string         `json:"address"`
	PhoneNumber           string         `json:"phoneNumber"`
	AdditionalPhoneNumber string         `json:"additionalPhoneNumber"`
	Device                *string        `json:"device"`
	DeviceType            *string        `json:"deviceType"`
	DeviceCode            *string        `json:"deviceCode"`
	DeviceTypeCode        *string        `json:"deviceTypeCode"`
	Brand                 string         `json:"brand"`
	Sup                   string         `json:"sup"`
	DefectDescription     string         `json:"defectDescription"`
	IsRelatedToProject    types.FlexBool `json:"isRelatedToProject"`
	ProjectName           string         `json:"projectName"`
	Notes                 string         `json:"notes"`
	RaisedBy              string         `json:"raisedBy"`
	RaisedAt              *string        `json:"raisedAt"`
}

// RawUser is the tolerant wire shape of one user seed record.
type RawUser struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"isActive"`
}

// deviceName resolves the device type name aliases.
func (r RawMaintenance) deviceName() string {
	if r.Device != nil {
		return *r.Device
	}
	if r.DeviceType != nil {
		return *r.DeviceType
	}
	return ""
}

// deviceCode resolves the device type code aliases.
func (r RawMaintenance) deviceCode() string {
	if r.DeviceCode != nil {
		return *r.DeviceCode
	}
	if r.DeviceTypeCode != nil {
		return *r.DeviceTypeCode
	}
	return ""
}
