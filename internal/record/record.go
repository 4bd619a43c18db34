// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package record defines the row abstraction shown by the data table and
// the value ordering used to sort it.
package record

import (
	"fmt"
	"strconv"
	"time"
)

// Record is a row the data table can display. Rows are compared with ==,
// so pointer types give reference identity: two rows holding equal values
// are still different rows.
type Record interface {
	comparable
	// Field returns the value stored under name and whether it exists.
	Field(name string) (any, bool)
}

// Map is a free-form record. Use *Map as the row type so each row has its
// own identity.
type Map map[string]any

// NewMap copies values into a new record.
func NewMap(values map[string]any) *Map {
	m := make(Map, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &m
}

// Field implements Record.
func (m *Map) Field(name string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := (*m)[name]
	return v, ok
}

// Values exposes the underlying map, e.g. for JSON encoding.
func (m *Map) Values() map[string]any {
	if m == nil {
		return nil
	}
	return *m
}

func isRecord[T Record]() {}

var _ = isRecord[*Map]

// Format renders a cell value. Missing values (nil) render as "".
func Format(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.DateTime)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
