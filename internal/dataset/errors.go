// SecureNav - Crime Incident Data API and Geographic Visualization
// Copyright 2026 James Weddington (jamesweddington1215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jamesweddington1215/securenav

package dataset

import (
	"fmt"
)

// MissingRoleError indicates an operation that requires a semantic role
// the schema mapper could not resolve to any column. Surfaced as a 400
// with code MISSING_ROLE.
type MissingRoleError struct {
	Role Role
}

func (e *MissingRoleError) Error() string {
	return fmt.Sprintf("dataset has no column mapped to role %q", e.Role)
}

// InvalidParameterError indicates a query parameter that could not be
// interpreted: an unknown sort or aggregation key, or an unparseable
// bound. Surfaced as a 400 with code VALIDATION_ERROR.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Reason)
}
