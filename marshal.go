// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"encoding/json"

	"go.yaml.in/yaml/v3"
)

// MarshalText implements encoding.TextMarshaler using the --MM-dd form.
func (md MonthDay) MarshalText() ([]byte, error) {
	return []byte(md.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (md *MonthDay) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, encoding the month-day as a
// --MM-dd string.
func (md MonthDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(md.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (md *MonthDay) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	return md.UnmarshalText([]byte(text))
}

// MarshalYAML implements yaml.Marshaler.
func (md MonthDay) MarshalYAML() (interface{}, error) {
	return md.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (md *MonthDay) UnmarshalYAML(value *yaml.Node) error {
	return md.UnmarshalText([]byte(value.Value))
}
