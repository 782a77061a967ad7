// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

// Package dataset holds the in-memory incident table and the query
// pipeline that every endpoint reads from: schema auto-mapping, typed
// cell values, filtering, aggregation, and geospatial projections.
//
// A Dataset is loaded once at startup and never mutated afterwards, so
// concurrent reads need no locking.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jamesweddington1215/securenav/internal/logging"
	"github.com/jamesweddington1215/securenav/internal/models"
)

// Dataset is the process-wide incident table: ordered column names, the
// resolved schema map, and all rows with cells typed at load time.
type Dataset struct {
	columns  []string
	colIndex map[string]int
	schema   Schema
	rows     [][]Value
	loadedAt time.Time
}

// Load reads the CSV at path into memory and resolves the schema map.
// A missing or unreadable file is fatal to startup; the caller is
// expected to exit.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset load: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset load: parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset load: %s has no header row", path)
	}

	ds, err := New(records[0], records[1:])
	if err != nil {
		return nil, fmt.Errorf("dataset load: %w", err)
	}

	logging.Info().
		Str("path", path).
		Int("rows", ds.RowCount()).
		Int("columns", len(ds.columns)).
		Int("mapped_roles", ds.schema.MappedCount()).
		Msg("Dataset loaded")

	return ds, nil
}

// New builds a Dataset from an in-memory header and records. Cells are
// resolved into tagged values once here; short rows are padded with
// absent values and extra cells are dropped.
func New(columns []string, records [][]string) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("dataset has no columns")
	}

	colIndex := make(map[string]int, len(columns))
	for i, c := range columns {
		colIndex[c] = i
	}

	rows := make([][]Value, len(records))
	for i, record := range records {
		row := make([]Value, len(columns))
		for j := range columns {
			if j < len(record) {
				row[j] = parseValue(record[j])
			} else {
				row[j] = Value{kind: KindAbsent}
			}
		}
		rows[i] = row
	}

	return &Dataset{
		columns:  columns,
		colIndex: colIndex,
		schema:   MapColumns(columns),
		rows:     rows,
		loadedAt: time.Now(),
	}, nil
}

// Columns returns the original column names in file order.
func (d *Dataset) Columns() []string {
	return d.columns
}

// Schema returns the resolved schema map.
func (d *Dataset) Schema() Schema {
	return d.schema
}

// RowCount returns the number of rows in the table.
func (d *Dataset) RowCount() int {
	return len(d.rows)
}

// LoadedAt returns when the dataset was constructed.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

// value returns the typed cell for the given row and role, or an absent
// value when the role is unmapped.
func (d *Dataset) value(row int, role Role) Value {
	col, ok := d.schema[role]
	if !ok {
		return Value{kind: KindAbsent}
	}
	return d.rows[row][d.colIndex[col]]
}

// rowID returns the mapped id cell, falling back to the row index when
// the id role is unmapped or the cell is empty.
func (d *Dataset) rowID(row int) string {
	if v := d.value(row, RoleID); !v.IsAbsent() {
		return v.String()
	}
	return strconv.Itoa(row)
}

// Project renders one row as the incident projection used by /incidents
// and /geojson properties.
func (d *Dataset) Project(row int) models.Incident {
	inc := models.Incident{ID: d.rowID(row)}

	if t, ok := d.value(row, RoleDate).Time(); ok {
		inc.Date = &t
	}
	if v := d.value(row, RoleCategory); !v.IsAbsent() {
		s := v.String()
		inc.Category = &s
	}
	if v := d.value(row, RoleDescription); !v.IsAbsent() {
		s := v.String()
		inc.Description = &s
	}
	if lat, ok := d.value(row, RoleLatitude).Number(); ok {
		inc.Lat = &lat
	}
	if lng, ok := d.value(row, RoleLongitude).Number(); ok {
		inc.Lng = &lng
	}
	if v := d.value(row, RoleCity); !v.IsAbsent() {
		s := v.String()
		inc.City = &s
	}
	if v := d.value(row, RoleState); !v.IsAbsent() {
		s := v.String()
		inc.State = &s
	}

	return inc
}

// coordinates returns the row's parsed latitude and longitude; ok is
// false unless both cells are numeric.
func (d *Dataset) coordinates(row int) (lat, lng float64, ok bool) {
	lat, latOK := d.value(row, RoleLatitude).Number()
	lng, lngOK := d.value(row, RoleLongitude).Number()
	return lat, lng, latOK && lngOK
}
