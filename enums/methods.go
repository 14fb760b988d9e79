// Copyright (c) 2026, The Plotline Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enums

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// String returns the string representation of the given
// enum value with the given map from values to strings.
// Values missing from the map are formatted as their int64.
func String[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if str, ok := m[i]; ok {
		return str
	}
	return strconv.FormatInt(i.Int64(), 10)
}

// SetString sets the given enum value from its string representation, the map from
// string representations to enum values, and the name of the enum type, which is
// used for the error message.
func SetString[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// SetStringLower sets the given enum value from its string representation, the map
// from string representations to enum values, and the name of the enum type, which
// is used for the error message. It also tries the lowercase version of the given
// string if the original version fails.
func SetStringLower[T Enum](i *T, s string, valueMap map[string]T, typeName string) error {
	if val, ok := valueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := valueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s is not a valid value for type %s", s, typeName)
}

// Desc returns the description of the given enum value with the given map
// from values to descriptions. Values missing from the map fall back on
// their string representation.
func Desc[T interface {
	Enum
	comparable
}](i T, m map[T]string) string {
	if desc, ok := m[i]; ok {
		return desc
	}
	return i.String()
}

// Values returns the given slice of enum values as a slice of [Enum] values.
func Values[T Enum](values []T) []Enum {
	res := make([]Enum, len(values))
	for i, v := range values {
		res[i] = v
	}
	return res
}

// UnmarshalText unmarshals the given text into the given enum value
// using its SetString method. It logs any error instead of returning it
// to prevent one unknown value from tanking an entire unmarshal process.
func UnmarshalText[T EnumSetter](i T, text []byte, typeName string) error {
	if err := i.SetString(string(text)); err != nil {
		slog.Error(typeName + ".UnmarshalText: " + err.Error())
	}
	return nil
}

// UnmarshalJSON unmarshals the given JSON data into the given enum value
// using its SetString method. It logs any error instead of returning it
// to prevent one unknown value from tanking an entire unmarshal process.
func UnmarshalJSON[T EnumSetter](i T, data []byte, typeName string) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		slog.Error(typeName + ".UnmarshalJSON: " + err.Error())
		return nil
	}
	if err := i.SetString(s); err != nil {
		slog.Error(typeName + ".UnmarshalJSON: " + err.Error())
	}
	return nil
}

// UnmarshalYAML unmarshals the given YAML node into the given enum value
// using its SetString method. It logs any error instead of returning it
// to prevent one unknown value from tanking an entire unmarshal process.
func UnmarshalYAML[T EnumSetter](i T, n *yaml.Node, typeName string) error {
	if err := i.SetString(n.Value); err != nil {
		slog.Error(typeName + ".UnmarshalYAML: " + err.Error())
	}
	return nil
}
