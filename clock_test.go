// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"testing"
	"time"

	"github.com/boeriksson/chrono"
)

func TestFixedClock(t *testing.T) {
	when := newTime(2021, chrono.February, 17)
	clock := chrono.FixedClock(when)
	if got, want := clock.Now(), when; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// A fixed clock keeps reporting the same instant.
	if got, want := clock.Now(), clock.Now(); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chrono.NowFromClock(clock), newMonthDay(2, 17); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSystemClockIn(t *testing.T) {
	clock := chrono.SystemClockIn(time.UTC)
	if got, want := clock.Now().Location(), time.UTC; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLoadClock(t *testing.T) {
	clock, err := chrono.LoadClock("America/New_York")
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := clock.Now().Location().String(), "America/New_York"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := chrono.LoadClock("Not/AZone"); err == nil {
		t.Errorf("failed to return an error")
	}
}
