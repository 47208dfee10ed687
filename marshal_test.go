// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/boeriksson/chrono"
	"go.yaml.in/yaml/v3"
)

type billing struct {
	Anniversary chrono.MonthDay `json:"anniversary" yaml:"anniversary"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := billing{Anniversary: newMonthDay(2, 29)}
	buf, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := string(buf), `{"anniversary":"--02-29"}`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var out billing
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := out.Anniversary, in.Anniversary; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := json.Unmarshal([]byte(`{"anniversary":"--04-31"}`), &out); !errors.Is(err, chrono.ErrInvalidCombination) {
		t.Errorf("got %v, want %v", err, chrono.ErrInvalidCombination)
	}
	if err := json.Unmarshal([]byte(`{"anniversary":"02-29"}`), &out); !errors.Is(err, chrono.ErrParse) {
		t.Errorf("got %v, want %v", err, chrono.ErrParse)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	in := billing{Anniversary: newMonthDay(12, 3)}
	buf, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := string(buf), "anniversary: --12-03\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	var out billing
	if err := yaml.Unmarshal(buf, &out); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := out.Anniversary, in.Anniversary; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if err := yaml.Unmarshal([]byte("anniversary: --13-01\n"), &out); !errors.Is(err, chrono.ErrFieldRange) {
		t.Errorf("got %v, want %v", err, chrono.ErrFieldRange)
	}
}

func TestTextRoundTrip(t *testing.T) {
	md := newMonthDay(7, 9)
	buf, err := md.MarshalText()
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := string(buf), "--07-09"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var out chrono.MonthDay
	if err := out.UnmarshalText(buf); err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := out, md; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := out.UnmarshalText([]byte("--7-9")); !errors.Is(err, chrono.ErrParse) {
		t.Errorf("got %v, want %v", err, chrono.ErrParse)
	}
}
