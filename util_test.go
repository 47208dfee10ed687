// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"time"

	"github.com/boeriksson/chrono"
)

func newMonthDay(month, day int) chrono.MonthDay {
	md, err := chrono.Of(month, day)
	if err != nil {
		panic(err)
	}
	return md
}

func newTime(year int, month chrono.Month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}
