// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse indicates text that does not match a formatter's layout.
var ErrParse = errors.New("invalid month-day text")

// DefaultLayout is the layout used by Parse and MonthDay.String.
const DefaultLayout = "--MM-dd"

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentMonth
	segmentDay
)

type segment struct {
	kind    segmentKind
	literal string
}

// Formatter formats and parses month-day text against a fixed layout.
// The layout tokens are 'MM' for a two digit month and 'dd' for a two
// digit day; every other character is matched literally. A Formatter
// is compiled once by NewFormatter and is safe for concurrent use.
type Formatter struct {
	layout   string
	segments []segment
}

// NewFormatter compiles the given layout. The layout must contain
// both the month and day tokens exactly once; single 'M' or 'd'
// tokens are not supported.
func NewFormatter(layout string) (*Formatter, error) {
	var segments []segment
	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			segments = append(segments, segment{kind: segmentLiteral, literal: literal.String()})
			literal.Reset()
		}
	}
	seenMonth, seenDay := false, false
	for i := 0; i < len(layout); {
		switch {
		case strings.HasPrefix(layout[i:], "MM"):
			if seenMonth {
				return nil, fmt.Errorf("invalid layout %q: duplicate 'MM'", layout)
			}
			flush()
			segments = append(segments, segment{kind: segmentMonth})
			seenMonth = true
			i += 2
		case strings.HasPrefix(layout[i:], "dd"):
			if seenDay {
				return nil, fmt.Errorf("invalid layout %q: duplicate 'dd'", layout)
			}
			flush()
			segments = append(segments, segment{kind: segmentDay})
			seenDay = true
			i += 2
		case layout[i] == 'M' || layout[i] == 'd':
			return nil, fmt.Errorf("invalid layout %q: unsupported token %q", layout, layout[i:i+1])
		default:
			literal.WriteByte(layout[i])
			i++
		}
	}
	flush()
	if !seenMonth || !seenDay {
		return nil, fmt.Errorf("invalid layout %q: 'MM' and 'dd' are both required", layout)
	}
	return &Formatter{layout: layout, segments: segments}, nil
}

// Layout returns the layout the formatter was compiled from.
func (f *Formatter) Layout() string {
	return f.layout
}

func (f *Formatter) segmentField(kind segmentKind) Field {
	if kind == segmentMonth {
		return MonthOfYear
	}
	return DayOfMonth
}

// Format renders the temporal's month and day fields against the
// layout. It fails with an error wrapping ErrConversion if t does not
// expose a required field.
func (f *Formatter) Format(t Temporal) (string, error) {
	var out strings.Builder
	for _, s := range f.segments {
		if s.kind == segmentLiteral {
			out.WriteString(s.literal)
			continue
		}
		field := f.segmentField(s.kind)
		if !t.Supported(field) {
			return "", fmt.Errorf("%v (%T) does not expose %s: %w", t, t, field, ErrConversion)
		}
		val, err := t.Get(field)
		if err != nil {
			return "", fmt.Errorf("%v (%T): %v: %w", t, t, err, ErrConversion)
		}
		fmt.Fprintf(&out, "%02d", val)
	}
	return out.String(), nil
}

// Parsed holds the fields accumulated by Formatter.Parse. It exposes
// them through the Temporal interface so that a value type's query
// can materialize the final value.
type Parsed struct {
	text   string
	fields map[Field]int
}

func (p *Parsed) Supported(field Field) bool {
	_, ok := p.fields[field]
	return ok
}

func (p *Parsed) Get(field Field) (int, error) {
	val, ok := p.fields[field]
	if !ok {
		return 0, fmt.Errorf("%s: %w", field, ErrUnsupportedField)
	}
	return val, nil
}

func (p *Parsed) String() string {
	return fmt.Sprintf("parsed %q", p.text)
}

func twoDigits(text string, pos int) (int, bool) {
	if pos+2 > len(text) {
		return 0, false
	}
	hi, lo := text[pos], text[pos+1]
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}

// Parse matches text against the layout and returns the accumulated
// fields. Matching is strict: literals must appear exactly, numeric
// tokens must be exactly two digits and no text may remain. Failures
// wrap ErrParse.
func (f *Formatter) Parse(text string) (*Parsed, error) {
	fields := make(map[Field]int, 2)
	pos := 0
	for _, s := range f.segments {
		if s.kind == segmentLiteral {
			if !strings.HasPrefix(text[pos:], s.literal) {
				return nil, fmt.Errorf("%q: expected %q at position %d: %w", text, s.literal, pos, ErrParse)
			}
			pos += len(s.literal)
			continue
		}
		field := f.segmentField(s.kind)
		val, ok := twoDigits(text, pos)
		if !ok {
			return nil, fmt.Errorf("%q: expected two digit %s at position %d: %w", text, field, pos, ErrParse)
		}
		fields[field] = val
		pos += 2
	}
	if pos != len(text) {
		return nil, fmt.Errorf("%q: unexpected trailing text at position %d: %w", text, pos, ErrParse)
	}
	return &Parsed{text: text, fields: fields}, nil
}

// defaultFormatter is compiled during package initialization, before
// any parse is reachable, and never reassigned.
var defaultFormatter *Formatter

func init() {
	f, err := NewFormatter(DefaultLayout)
	if err != nil {
		panic(err)
	}
	defaultFormatter = f
}

// Parse parses a month-day in the default --MM-dd form, eg "--12-03".
func Parse(text string) (MonthDay, error) {
	return ParseWith(defaultFormatter, text)
}

// ParseWith parses a month-day using the supplied formatter. Layout
// mismatches surface as the formatter's own parse errors; text that
// matches the layout but does not denote a valid month-day fails as
// for Of.
func ParseWith(f *Formatter, text string) (MonthDay, error) {
	parsed, err := f.Parse(text)
	if err != nil {
		return MonthDay{}, err
	}
	return MonthDayQuery.Apply(parsed)
}
