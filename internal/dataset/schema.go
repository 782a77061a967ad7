// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package dataset

import (
	"strings"
)

// Role is a semantic meaning (e.g. "latitude") that may correspond to
// different column names across datasets.
type Role string

// Semantic roles recognized by the schema mapper.
const (
	RoleLatitude    Role = "latitude"
	RoleLongitude   Role = "longitude"
	RoleDate        Role = "date"
	RoleCategory    Role = "category"
	RoleDescription Role = "description"
	RoleID          Role = "id"
	RoleCity        Role = "city"
	RoleState       Role = "state"
)

// Roles lists all semantic roles in a stable order, used for /columns
// output and for counting mapped roles.
var Roles = []Role{
	RoleLatitude,
	RoleLongitude,
	RoleDate,
	RoleCategory,
	RoleDescription,
	RoleID,
	RoleCity,
	RoleState,
}

// roleAliases holds the ordered alias lists per role. For each role the
// first alias that matches a column name (case-insensitive) wins; later
// aliases are only consulted when earlier ones match nothing.
var roleAliases = map[Role][]string{
	RoleLatitude:    {"latitude", "lat", "y"},
	RoleLongitude:   {"longitude", "lon", "lng", "x"},
	RoleDate:        {"date", "datetime", "occurred_on", "timestamp", "reported_date", "reported_at"},
	RoleCategory:    {"category", "offense", "crime_type", "offense_type", "type", "ucr", "incident_type"},
	RoleDescription: {"description", "details", "summary", "narrative", "offense_description", "incident_description"},
	RoleID:          {"id", "incident_id", "case_number", "case_id", "event_number"},
	RoleCity:        {"city", "municipality", "jurisdiction"},
	RoleState:       {"state", "province", "region"},
}

// Schema maps each resolved semantic role to the original column name.
// Roles with no matching alias are simply absent from the map.
type Schema map[Role]string

// MapColumns inspects the dataset's column names and assigns each semantic
// role to the first column whose lowercased name equals one of the role's
// aliases, in alias priority order. It is a pure function: same columns in,
// same schema out. Unmatched roles are left out of the result, which is a
// capability gap, not an error.
func MapColumns(columns []string) Schema {
	byLower := make(map[string]string, len(columns))
	for _, c := range columns {
		lower := strings.ToLower(c)
		// First column wins when two columns collide case-insensitively.
		if _, ok := byLower[lower]; !ok {
			byLower[lower] = c
		}
	}

	schema := make(Schema)
	for _, role := range Roles {
		for _, alias := range roleAliases[role] {
			if original, ok := byLower[alias]; ok {
				schema[role] = original
				break
			}
		}
	}

	return schema
}

// Column returns the original column name mapped to role, or "" and false
// when the role is unmapped.
func (s Schema) Column(role Role) (string, bool) {
	col, ok := s[role]
	return col, ok
}

// Has reports whether the role resolved to a column.
func (s Schema) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// MappedCount returns the number of roles that resolved to a column.
func (s Schema) MappedCount() int {
	return len(s)
}
