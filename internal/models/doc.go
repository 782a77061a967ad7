// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

/*
Package models defines data structures for the SecureNav application.

This package contains the API response envelope and the JSON payloads for
every endpoint. It is the single source of truth for wire-format structures.

Key Components:

  - APIResponse: Standardized API response wrapper with metadata
  - Incident: Row projection onto the mapped semantic roles
  - StatsBucket: Aggregation group (label + count)
  - HeatmapPayload: Spatial grid with per-cell counts and bounds
*/
package models
