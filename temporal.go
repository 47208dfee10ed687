// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrConversion indicates that a value could not supply the
	// fields required to derive a MonthDay from it.
	ErrConversion = errors.New("unable to derive month-day")
	// ErrUnsupportedField indicates a request for a field a Temporal
	// does not expose.
	ErrUnsupportedField = errors.New("unsupported field")
)

// Temporal is implemented by values that expose calendar fields.
// Supported must be consulted before Get; Get on an unsupported
// field returns an error wrapping ErrUnsupportedField.
type Temporal interface {
	Supported(field Field) bool
	Get(field Field) (int, error)
}

type timeTemporal struct {
	when time.Time
}

// TimeTemporal adapts a time.Time to the Temporal interface so that
// it can traverse the same derivation path as any other field-bearing
// value. FromTime is the direct equivalent.
func TimeTemporal(when time.Time) Temporal {
	return timeTemporal{when: when}
}

func (t timeTemporal) Supported(field Field) bool {
	return field == DayOfMonth || field == MonthOfYear
}

func (t timeTemporal) Get(field Field) (int, error) {
	switch field {
	case DayOfMonth:
		return t.when.Day(), nil
	case MonthOfYear:
		return int(t.when.Month()), nil
	}
	return 0, fmt.Errorf("%s: %w", field, ErrUnsupportedField)
}

func (t timeTemporal) String() string {
	return t.when.Format(time.DateOnly)
}

// A Query derives a MonthDay from a Temporal under a stable name.
type Query struct {
	name string
	fn   func(Temporal) (MonthDay, error)
}

// Name returns the query's registered name.
func (q Query) Name() string {
	return q.name
}

// Apply runs the query against t.
func (q Query) Apply(t Temporal) (MonthDay, error) {
	return q.fn(t)
}

// MonthDayQuery is the query used by formatters to materialize a
// MonthDay from accumulated fields. It is constructed during package
// initialization, before any parse is reachable, and never
// reassigned.
var MonthDayQuery = Query{name: "MonthDay", fn: From}
