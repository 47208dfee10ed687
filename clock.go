// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"time"
)

// Clock supplies the current time. It exists so that code deriving
// calendar values from "now" can be driven by a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// SystemClock returns a Clock reporting the system time in the local
// time zone.
func SystemClock() Clock {
	return systemClock{loc: time.Local}
}

// SystemClockIn returns a Clock reporting the system time in the
// given, non-nil, time zone.
func SystemClockIn(loc *time.Location) Clock {
	return systemClock{loc: loc}
}

// LoadClock returns a Clock reporting the system time in the named
// IANA time zone, eg. "America/New_York" or "UTC".
func LoadClock(zone string) (Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("invalid time zone: %q: %v", zone, err)
	}
	return systemClock{loc: loc}, nil
}

type fixedClock struct {
	when time.Time
}

func (c fixedClock) Now() time.Time {
	return c.when
}

// FixedClock returns a Clock that always reports when.
func FixedClock(when time.Time) Clock {
	return fixedClock{when: when}
}
