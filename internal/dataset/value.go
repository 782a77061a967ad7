// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package dataset

import (
	"strconv"
	"strings"
	"time"
)

// Kind discriminates the tagged Value type.
type Kind uint8

// Value kinds. A cell is resolved to exactly one kind at load time.
const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindTime
)

// Value is a single cell resolved at load time into a tagged type:
// string, number, time, or absent. The raw text is always preserved so
// responses can echo the dataset's original spelling.
type Value struct {
	kind Kind
	raw  string
	num  float64
	t    time.Time
}

// dateFormats lists the lenient date layouts tried in order when typing
// a cell or parsing a date bound.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"01/02/2006 15:04",
	"01/02/06",
	"2006/01/02",
	"02-01-2006",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	time.RFC3339,
}

// ParseDate tries each known date layout against s and returns the first
// match. The ok result is false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseValue resolves a raw cell into a tagged Value. Empty cells become
// absent; numeric text becomes a number; date-shaped text becomes a time;
// everything else stays a string. Unparseable dates therefore remain
// strings and count as absent for date filtering and aggregation.
func parseValue(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{kind: KindAbsent, raw: raw}
	}

	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Value{kind: KindNumber, raw: raw, num: n}
	}

	if looksTemporal(trimmed) {
		if t, ok := ParseDate(trimmed); ok {
			return Value{kind: KindTime, raw: raw, t: t}
		}
	}

	return Value{kind: KindString, raw: raw}
}

// looksTemporal is a cheap pre-filter so free text is not run through
// every date layout. Dates always contain a digit and a separator.
func looksTemporal(s string) bool {
	hasDigit := false
	hasSep := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '-' || r == '/' || r == ':':
			hasSep = true
		}
	}
	return hasDigit && hasSep
}

// Kind returns the tagged type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether the cell was empty.
func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

// Raw returns the cell's original text.
func (v Value) Raw() string { return v.raw }

// String returns the trimmed original text, or "" for absent cells.
func (v Value) String() string {
	if v.kind == KindAbsent {
		return ""
	}
	return strings.TrimSpace(v.raw)
}

// Number returns the numeric value and whether the cell is a number.
func (v Value) Number() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// Time returns the parsed time and whether the cell is a date.
func (v Value) Time() (time.Time, bool) {
	return v.t, v.kind == KindTime
}

// compareValues orders two values for sorting: absent values sort after
// everything, times and numbers compare natively, mixed or string values
// fall back to case-insensitive text comparison.
func compareValues(a, b Value) int {
	switch {
	case a.kind == KindAbsent && b.kind == KindAbsent:
		return 0
	case a.kind == KindAbsent:
		return 1
	case b.kind == KindAbsent:
		return -1
	}

	if a.kind == KindTime && b.kind == KindTime {
		return a.t.Compare(b.t)
	}
	if a.kind == KindNumber && b.kind == KindNumber {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(strings.ToLower(a.String()), strings.ToLower(b.String()))
}
