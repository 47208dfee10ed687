// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
)

// Field identifies a calendar field that a Temporal value may expose.
type Field int

const (
	DayOfMonth Field = 1 + iota
	MonthOfYear
)

// ErrFieldRange indicates a field value outside its legal numeric range.
var ErrFieldRange = errors.New("field value out of range")

func (f Field) String() string {
	switch f {
	case DayOfMonth:
		return "day-of-month"
	case MonthOfYear:
		return "month-of-year"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Range returns the legal numeric range for the field, inclusive of
// both bounds.
func (f Field) Range() (from, to int) {
	switch f {
	case DayOfMonth:
		return 1, 31
	case MonthOfYear:
		return 1, 12
	}
	return 0, 0
}

// CheckValid returns val if it lies within the field's legal numeric
// range and an error wrapping ErrFieldRange otherwise.
func (f Field) CheckValid(val int) (int, error) {
	from, to := f.Range()
	if val < from || val > to {
		return 0, fmt.Errorf("invalid %s: %d, expected %d-%d: %w", f, val, from, to, ErrFieldRange)
	}
	return val, nil
}
