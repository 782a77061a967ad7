// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package dataset

import (
	"sort"

	"github.com/jamesweddington1215/securenav/internal/models"
)

// UnknownBucket labels rows whose date could not be parsed in temporal
// aggregations. They are grouped explicitly rather than dropped so
// bucket counts always sum to the filtered row count.
const UnknownBucket = "unknown"

// aggregationRoles maps role-based aggregation keys to their roles.
var aggregationRoles = map[string]Role{
	"category": RoleCategory,
	"city":     RoleCity,
	"state":    RoleState,
}

// temporalLayouts maps temporal aggregation keys to truncation layouts.
var temporalLayouts = map[string]string{
	"day":   "2006-01-02",
	"month": "2006-01",
	"year":  "2006",
}

// Aggregate groups the filtered rows by the requested key and counts
// occurrences. by must be one of category, city, state, day, month, or
// year. Role-based keys require the role to be mapped; temporal keys
// require the date role. Ordering: role groupings sort by count
// descending with label-ascending ties, temporal groupings sort by
// label ascending with the unknown bucket last.
func (d *Dataset) Aggregate(by string, f Filter) ([]models.StatsBucket, error) {
	rows := d.match(f)

	if role, ok := aggregationRoles[by]; ok {
		return d.aggregateByRole(role, rows)
	}
	if layout, ok := temporalLayouts[by]; ok {
		return d.aggregateByDate(layout, rows)
	}

	return nil, &InvalidParameterError{Param: "by", Reason: "must be one of category, day, month, year, city, state"}
}

func (d *Dataset) aggregateByRole(role Role, rows []int) ([]models.StatsBucket, error) {
	if !d.schema.Has(role) {
		return nil, &MissingRoleError{Role: role}
	}

	counts := make(map[string]int)
	for _, row := range rows {
		counts[d.value(row, role).String()]++
	}

	buckets := bucketsFromCounts(counts)
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})

	return buckets, nil
}

func (d *Dataset) aggregateByDate(layout string, rows []int) ([]models.StatsBucket, error) {
	if !d.schema.Has(RoleDate) {
		return nil, &MissingRoleError{Role: RoleDate}
	}

	counts := make(map[string]int)
	for _, row := range rows {
		if t, ok := d.value(row, RoleDate).Time(); ok {
			counts[t.Format(layout)]++
		} else {
			counts[UnknownBucket]++
		}
	}

	buckets := bucketsFromCounts(counts)
	sort.Slice(buckets, func(i, j int) bool {
		// The unknown bucket trails the chronological labels.
		if buckets[i].Key == UnknownBucket {
			return false
		}
		if buckets[j].Key == UnknownBucket {
			return true
		}
		return buckets[i].Key < buckets[j].Key
	})

	return buckets, nil
}

func bucketsFromCounts(counts map[string]int) []models.StatsBucket {
	buckets := make([]models.StatsBucket, 0, len(counts))
	for key, count := range counts {
		buckets = append(buckets, models.StatsBucket{Key: key, Count: count})
	}
	return buckets
}
