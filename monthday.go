// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chrono provides year-agnostic calendar values following the
// ISO-8601, ie. proleptic Gregorian, calendar. Its central type is
// MonthDay, a combination of a month and a day-of-month without a
// year, suitable for recurring calendar points such as anniversaries,
// billing cycles or holidays.
package chrono

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCombination indicates a day-of-month that is numerically
// in range but not valid for the given month, eg. April 31.
var ErrInvalidCombination = errors.New("day not valid for month")

// MonthDay is an immutable month and day-of-month. February 29 is
// always a valid MonthDay since there is no year to rule it out.
// MonthDay values are comparable with == and may be freely shared
// across goroutines. The zero value is not a valid month-day; obtain
// instances via New, Of, FromTime, From, Parse or the Now variants.
type MonthDay struct {
	month Month
	day   int
}

// New returns the MonthDay for the given month and day. The day must
// be in the range 1-31 and must not exceed the month's maximum length
// in a leap year, so New(February, 29) always succeeds whereas
// New(April, 31) does not.
func New(month Month, day int) (MonthDay, error) {
	if !month.Valid() {
		return MonthDay{}, fmt.Errorf("invalid month: %d, expected 1-12: %w", int(month), ErrFieldRange)
	}
	if _, err := DayOfMonth.CheckValid(day); err != nil {
		return MonthDay{}, err
	}
	if day > month.MaxDays() {
		return MonthDay{}, fmt.Errorf("day %d is not valid for %s: %w", day, month, ErrInvalidCombination)
	}
	return MonthDay{month: month, day: day}, nil
}

// Of is like New but accepts the month as its 1-12 ordinal.
func Of(month, day int) (MonthDay, error) {
	m, err := MonthOfYear.CheckValid(month)
	if err != nil {
		return MonthDay{}, err
	}
	return New(Month(m), day)
}

// FromTime returns the MonthDay for the given time.
func FromTime(when time.Time) MonthDay {
	return MonthDay{month: Month(when.Month()), day: when.Day()}
}

// NowFromClock returns the current MonthDay as reported by the
// supplied clock.
func NowFromClock(clock Clock) MonthDay {
	return FromTime(clock.Now())
}

// Now returns the current MonthDay in the local time zone.
func Now() MonthDay {
	return NowFromClock(SystemClock())
}

// NowIn returns the current MonthDay in the given, non-nil, time zone.
func NowIn(loc *time.Location) MonthDay {
	return NowFromClock(SystemClockIn(loc))
}

// From derives a MonthDay from any value exposing the month-of-year
// and day-of-month fields. A value that is already a MonthDay is
// returned as is. A temporal that does not report both fields, or
// fails to produce them, results in an error wrapping ErrConversion
// that names the offending value; out of range or incompatible field
// values fail as for Of.
func From(t Temporal) (MonthDay, error) {
	if md, ok := t.(MonthDay); ok {
		return md, nil
	}
	if t == nil {
		return MonthDay{}, fmt.Errorf("nil temporal: %w", ErrConversion)
	}
	if !t.Supported(MonthOfYear) || !t.Supported(DayOfMonth) {
		return MonthDay{}, fmt.Errorf("%v (%T) does not expose month-of-year and day-of-month: %w", t, t, ErrConversion)
	}
	month, err := t.Get(MonthOfYear)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%v (%T): %v: %w", t, t, err, ErrConversion)
	}
	day, err := t.Get(DayOfMonth)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%v (%T): %v: %w", t, t, err, ErrConversion)
	}
	return Of(month, day)
}

// Month returns the month.
func (md MonthDay) Month() Month {
	return md.month
}

// MonthValue returns the month as its 1-12 ordinal.
func (md MonthDay) MonthValue() int {
	return int(md.month)
}

// Day returns the day-of-month.
func (md MonthDay) Day() int {
	return md.day
}

// String returns the month-day in the --MM-dd form, eg. "--12-03".
func (md MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", md.month, md.day)
}

// Compare returns -1, 0 or 1 depending on whether md is before, equal
// to, or after other in calendar order.
func (md MonthDay) Compare(other MonthDay) int {
	if md.month != other.month {
		if md.month < other.month {
			return -1
		}
		return 1
	}
	if md.day != other.day {
		if md.day < other.day {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if md is earlier in the calendar than other.
func (md MonthDay) Before(other MonthDay) bool {
	return md.Compare(other) < 0
}

// After returns true if md is later in the calendar than other.
func (md MonthDay) After(other MonthDay) bool {
	return md.Compare(other) > 0
}

func (md MonthDay) Equal(other MonthDay) bool {
	return md == other
}

// WithMonth returns a copy of md with the given month. The day is
// lowered to the month's maximum length where necessary, so
// --01-31 with February becomes --02-29.
func (md MonthDay) WithMonth(month Month) (MonthDay, error) {
	if !month.Valid() {
		return MonthDay{}, fmt.Errorf("invalid month: %d, expected 1-12: %w", int(month), ErrFieldRange)
	}
	day := md.day
	if day > month.MaxDays() {
		day = month.MaxDays()
	}
	return MonthDay{month: month, day: day}, nil
}

// WithDay returns a copy of md with the given day-of-month, validated
// as for New.
func (md MonthDay) WithDay(day int) (MonthDay, error) {
	return New(md.month, day)
}

// ValidYear returns true if the month-day can occur in the given
// year. Only February 29 in a non-leap year is excluded.
func (md MonthDay) ValidYear(year int) bool {
	return md.day <= md.month.Days(year)
}

// Supported implements Temporal.
func (md MonthDay) Supported(field Field) bool {
	return field == DayOfMonth || field == MonthOfYear
}

// Get implements Temporal.
func (md MonthDay) Get(field Field) (int, error) {
	switch field {
	case DayOfMonth:
		return md.day, nil
	case MonthOfYear:
		return int(md.month), nil
	}
	return 0, fmt.Errorf("%s: %w", field, ErrUnsupportedField)
}
