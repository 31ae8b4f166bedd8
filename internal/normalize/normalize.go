// Package normalize converts raw heterogeneous seed records into
// schema-conformant rows. Every function is pure: no I/O, deterministic for a
// given input and clock value, and never fails. Malformed fields degrade to
// defaults instead of aborting.
package normalize

import (
	"strings"
	"time"

	"caseops/internal/models"
)

// dateLayouts are tried in order when deriving the clock time of a case date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ClockTime extracts a zero-padded "HH:MM" from an RFC3339-ish date string.
// Unparseable input yields "" rather than an error; one bad record must not
// block its siblings.
func ClockTime(date string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("15:04")
		}
	}
	return ""
}

// Installation fills defaults on a raw installation record. Missing date and
// raisedAt default to now; quantity defaults to 1.
func Installation(raw RawInstallation, now time.Time) models.InstallationCase {
	quantity := 1
	if raw.Quantity != nil {
		quantity = int(raw.Quantity.Uint64())
	}

	return models.InstallationCase{
		Date:         coalesce(raw.Date, now.Format(time.RFC3339)),
		OrderNumber:  raw.OrderNumber,
		Governorate:  raw.Governorate,
		CustomerName: raw.CustomerName,
		Address:      raw.Address,
		PhoneNumber:  raw.PhoneNumber,
		ProductModel: raw.ProductModel,
		Brand:        raw.Brand,
		Quantity:     quantity,
		Sup:          raw.Sup,
		Notes:        raw.Notes,
		RaisedBy:     raw.RaisedBy,
		RaisedAt:     coalesce(raw.RaisedAt, now.Format(time.RFC3339)),
	}
}

// Maintenance fills defaults on a raw maintenance record and derives the
// time field from the resolved date. Device type name and code aliases are
// coalesced to the canonical fields.
func Maintenance(raw RawMaintenance, now time.Time) models.MaintenanceCase {
	date := coalesce(raw.Date, now.Format(time.RFC3339))

	return models.MaintenanceCase{
		Date:                  date,
		Time:                  ClockTime(date),
		OrderNumber:           raw.OrderNumber,
		Governorate:           raw.Governorate,
		CustomerName:          raw.CustomerName,
		Address:               raw.Address,
		PhoneNumber:           raw.PhoneNumber,
		AdditionalPhoneNumber: raw.AdditionalPhoneNumber,
		DeviceType:            raw.deviceName(),
		DeviceTypeCode:        raw.deviceCode(),
		Brand:                 raw.Brand,
		Sup:                   raw.Sup,
		DefectDescription:     raw.DefectDescription,
		IsRelatedToProject:    raw.IsRelatedToProject.Bool(),
		ProjectName:           raw.ProjectName,
		Notes:                 raw.Notes,
		RaisedBy:              raw.RaisedBy,
		RaisedAt:              coalesce(raw.RaisedAt, now.Format(time.RFC3339)),
	}
}

// Brands trims raw names, drops empty entries, and deduplicates
// case-insensitively keeping the first-seen casing. Each survivor becomes an
// active Brand.
func Brands(rawNames []string) []models.Brand {
	seen := make(map[string]struct{})
	brands := make([]models.Brand, 0, len(rawNames))

	for _, raw := range rawNames {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		brands = append(brands, models.Brand{Name: name, Status: models.StatusActive})
	}

	return brands
}

// Governorates wraps each raw name as a record. Duplicates pass through
// as-is; the dropdowns that consume governorates build their value sets from
// the case records themselves, so the collection tolerates repeats.
func Governorates(rawNames []string) []models.Governorate {
	governorates := make([]models.Governorate, 0, len(rawNames))
	for _, name := range rawNames {
		governorates = append(governorates, models.Governorate{Name: name})
	}
	return governorates
}

// DeviceTypesFromMaintenance derives the device type lookup collection from
// raw maintenance records. This is the only seed source for device types;
// there is no dedicated seed file. Pairs where both name and code are empty
// after trimming are discarded; the rest deduplicate on the composite
// lowercase name||code key, first occurrence winning.
func DeviceTypesFromMaintenance(raws []RawMaintenance) []models.DeviceType {
	seen := make(map[string]struct{})
	deviceTypes := make([]models.DeviceType, 0)

	for _, raw := range raws {
		name := strings.TrimSpace(raw.deviceName())
		code := strings.TrimSpace(raw.deviceCode())
		if name == "" && code == "" {
			continue
		}
		key := strings.ToLower(name) + "||" + strings.ToLower(code)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deviceTypes = append(deviceTypes, models.DeviceType{
			Name:   name,
			Code:   code,
			Status: models.StatusActive,
		})
	}

	return deviceTypes
}

// coalesce returns *s if present, else fallback.
func coalesce(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
