// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package dataset

import (
	"sort"

	"github.com/jamesweddington1215/securenav/internal/models"
)

// GeoPoints returns the incident projections of all filtered rows with
// numeric coordinates, in filtered order. Rows with missing or
// non-numeric coordinates are silently skipped. Both geo roles must be
// mapped; otherwise a MissingRoleError names the first missing one.
func (d *Dataset) GeoPoints(f Filter) ([]models.Incident, error) {
	if err := d.requireGeoRoles(); err != nil {
		return nil, err
	}

	rows := d.match(f)
	points := make([]models.Incident, 0, len(rows))
	for _, row := range rows {
		if _, _, ok := d.coordinates(row); !ok {
			continue
		}
		points = append(points, d.Project(row))
	}

	return points, nil
}

// Heatmap bins the filtered rows with valid coordinates into a
// bins x bins grid over their bounding box and counts rows per cell.
// The last row and column include their upper boundary so boundary
// points are never dropped. A degenerate bounding box (all points at
// one coordinate) collapses to a single cell. Cell counts always sum
// to the number of filtered rows with valid coordinates.
func (d *Dataset) Heatmap(bins int, f Filter) (*models.HeatmapPayload, error) {
	if err := d.requireGeoRoles(); err != nil {
		return nil, err
	}
	if bins < 1 {
		return nil, &InvalidParameterError{Param: "bins", Reason: "must be a positive integer"}
	}

	type point struct{ lat, lng float64 }
	var points []point
	for _, row := range d.match(f) {
		if lat, lng, ok := d.coordinates(row); ok {
			points = append(points, point{lat, lng})
		}
	}

	if len(points) == 0 {
		return &models.HeatmapPayload{Bins: bins, Grid: []models.HeatmapCell{}}, nil
	}

	latMin, latMax := points[0].lat, points[0].lat
	lngMin, lngMax := points[0].lng, points[0].lng
	for _, p := range points[1:] {
		if p.lat < latMin {
			latMin = p.lat
		}
		if p.lat > latMax {
			latMax = p.lat
		}
		if p.lng < lngMin {
			lngMin = p.lng
		}
		if p.lng > lngMax {
			lngMax = p.lng
		}
	}

	bounds := &models.HeatmapBounds{LatMin: latMin, LatMax: latMax, LngMin: lngMin, LngMax: lngMax}

	if latMin == latMax || lngMin == lngMax {
		// Degenerate bounding box: everything lands in one cell.
		return &models.HeatmapPayload{
			Bins:   bins,
			Bounds: bounds,
			Grid: []models.HeatmapCell{{
				Lat:    latMin,
				Lng:    lngMin,
				LatMin: latMin,
				LatMax: latMax,
				LngMin: lngMin,
				LngMax: lngMax,
				Count:  len(points),
			}},
		}, nil
	}

	latStep := (latMax - latMin) / float64(bins)
	lngStep := (lngMax - lngMin) / float64(bins)

	type cellKey struct{ i, j int }
	counts := make(map[cellKey]int)
	for _, p := range points {
		i := int((p.lat - latMin) / latStep)
		if i > bins-1 {
			i = bins - 1
		}
		j := int((p.lng - lngMin) / lngStep)
		if j > bins-1 {
			j = bins - 1
		}
		counts[cellKey{i, j}]++
	}

	keys := make([]cellKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].i != keys[b].i {
			return keys[a].i < keys[b].i
		}
		return keys[a].j < keys[b].j
	})

	grid := make([]models.HeatmapCell, 0, len(keys))
	for _, k := range keys {
		cellLatMin := latMin + float64(k.i)*latStep
		cellLngMin := lngMin + float64(k.j)*lngStep
		grid = append(grid, models.HeatmapCell{
			Lat:    cellLatMin + latStep/2,
			Lng:    cellLngMin + lngStep/2,
			LatMin: cellLatMin,
			LatMax: cellLatMin + latStep,
			LngMin: cellLngMin,
			LngMax: cellLngMin + lngStep,
			Count:  counts[k],
		})
	}

	return &models.HeatmapPayload{
		Bins:    bins,
		Bounds:  bounds,
		LatStep: latStep,
		LngStep: lngStep,
		Grid:    grid,
	}, nil
}

func (d *Dataset) requireGeoRoles() error {
	if !d.schema.Has(RoleLatitude) {
		return &MissingRoleError{Role: RoleLatitude}
	}
	if !d.schema.Has(RoleLongitude) {
		return &MissingRoleError{Role: RoleLongitude}
	}
	return nil
}
