// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package dataset

import (
	"sort"
	"strings"
	"time"
)

// Filter contains the optional row predicates for incident queries.
// All set predicates combine with logical AND.
//
// Policy for equality filters on unmapped roles (category, city, state):
// the predicate is a no-op rather than an error, so /incidents stays
// usable on any CSV. The free-text Query predicate instead matches
// nothing when neither description nor category is mapped, because a
// caller searching text on a dataset without text columns should see an
// empty result, not the whole table.
type Filter struct {
	// Query is a case-insensitive substring matched against the mapped
	// description and category columns.
	Query string

	// Category, City, and State are case-insensitive equality matches
	// against the corresponding mapped columns.
	Category string
	City     string
	State    string

	// StartDate and EndDate are inclusive bounds on the parsed date.
	// Rows without a parsed date are excluded when a bound is set.
	StartDate *time.Time
	EndDate   *time.Time

	// MinLat..MaxLng form an inclusive bounding box. Rows without
	// numeric coordinates are excluded when any bound is set.
	MinLat *float64
	MaxLat *float64
	MinLng *float64
	MaxLng *float64
}

// Sort describes the ordering applied after filtering. A zero Field
// leaves rows in file order.
type Sort struct {
	Field      Role
	Descending bool
}

// ParseSort interprets a sort parameter: a semantic role name with an
// optional "-" prefix for descending order. An empty string keeps the
// default ordering chosen by the caller. Unknown field names are an
// InvalidParameterError.
func ParseSort(s string) (Sort, error) {
	if s == "" {
		return Sort{}, nil
	}

	descending := false
	field := s
	if strings.HasPrefix(s, "-") {
		descending = true
		field = s[1:]
	}

	for _, role := range Roles {
		if string(role) == field {
			return Sort{Field: role, Descending: descending}, nil
		}
	}

	return Sort{}, &InvalidParameterError{Param: "sort", Reason: "unknown field " + field}
}

// Page bounds the result window. Limit must already be validated by the
// caller; offsets past the end yield an empty page.
type Page struct {
	Limit  int
	Offset int
}

// Result is a filtered, sorted, paginated view over the dataset. Rows
// holds the row indices of the requested page; Total is the match count
// before pagination.
type Result struct {
	Total int
	Rows  []int
}

// Query runs the filter pipeline: predicates first, then sort, then
// pagination. The dataset is never mutated, so repeated calls with the
// same arguments return the same result.
func (d *Dataset) Query(f Filter, s Sort, p Page) Result {
	matched := d.match(f)
	d.sortRows(matched, s)

	total := len(matched)

	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if p.Limit <= 0 || end > total {
		end = total
	}

	return Result{Total: total, Rows: matched[start:end]}
}

// match returns the indices of all rows passing every set predicate, in
// file order.
func (d *Dataset) match(f Filter) []int {
	matched := make([]int, 0, len(d.rows))
	for i := range d.rows {
		if d.matches(i, f) {
			matched = append(matched, i)
		}
	}
	return matched
}

func (d *Dataset) matches(row int, f Filter) bool {
	if f.Query != "" && !d.matchesQuery(row, f.Query) {
		return false
	}

	if !d.matchesEquality(row, RoleCategory, f.Category) {
		return false
	}
	if !d.matchesEquality(row, RoleCity, f.City) {
		return false
	}
	if !d.matchesEquality(row, RoleState, f.State) {
		return false
	}

	if f.StartDate != nil || f.EndDate != nil {
		t, ok := d.value(row, RoleDate).Time()
		if !ok {
			return false
		}
		if f.StartDate != nil && t.Before(*f.StartDate) {
			return false
		}
		if f.EndDate != nil && t.After(*f.EndDate) {
			return false
		}
	}

	if f.MinLat != nil || f.MaxLat != nil || f.MinLng != nil || f.MaxLng != nil {
		lat, lng, ok := d.coordinates(row)
		if !ok {
			return false
		}
		if f.MinLat != nil && lat < *f.MinLat {
			return false
		}
		if f.MaxLat != nil && lat > *f.MaxLat {
			return false
		}
		if f.MinLng != nil && lng < *f.MinLng {
			return false
		}
		if f.MaxLng != nil && lng > *f.MaxLng {
			return false
		}
	}

	return true
}

// matchesQuery reports whether any mapped text field (description or
// category) contains q, case-insensitively.
func (d *Dataset) matchesQuery(row int, q string) bool {
	q = strings.ToLower(q)
	for _, role := range []Role{RoleDescription, RoleCategory} {
		if !d.schema.Has(role) {
			continue
		}
		if strings.Contains(strings.ToLower(d.value(row, role).String()), q) {
			return true
		}
	}
	return false
}

// matchesEquality is the no-op-on-unmapped equality predicate shared by
// the category, city, and state filters.
func (d *Dataset) matchesEquality(row int, role Role, want string) bool {
	if want == "" || !d.schema.Has(role) {
		return true
	}
	return strings.EqualFold(d.value(row, role).String(), want)
}

// sortRows orders row indices by the sort field. Missing values sort
// last regardless of direction; ties keep file order (stable).
func (d *Dataset) sortRows(rows []int, s Sort) {
	if s.Field == "" || !d.schema.Has(s.Field) {
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a := d.value(rows[i], s.Field)
		b := d.value(rows[j], s.Field)

		// Absent cells always trail, even in descending order.
		if a.IsAbsent() || b.IsAbsent() {
			return !a.IsAbsent() && b.IsAbsent()
		}

		cmp := compareValues(a, b)
		if s.Descending {
			return cmp > 0
		}
		return cmp < 0
	})
}
