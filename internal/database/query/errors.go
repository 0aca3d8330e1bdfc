// Jobly - Job and Company Listing Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jobly

package query

import (
	"errors"
	"fmt"
)

// ErrBadInput marks errors caused by the caller's input rather than by the
// database. Callers test for it with errors.Is.
var ErrBadInput = errors.New("bad input")

// ErrNoData is returned by PartialUpdate when the field map is empty.
var ErrNoData = fmt.Errorf("%w: no data", ErrBadInput)
