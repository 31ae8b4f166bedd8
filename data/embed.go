// Package data bundles the static seed files consumed by the seeder on first
// run. A missing or empty file degrades that collection's seeding to zero
// records; it never fails the build of the rest.
package data

import (
	_ "embed"
)

//go:embed seed/installations.json
var Installations []byte

//go:embed seed/maintenance.json
var Maintenance []byte

//go:embed seed/brands.json
var Brands []byte

//go:embed seed/governorates.json
var Governorates []byte

//go:embed seed/users.json
var Users []byte
