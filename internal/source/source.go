// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// Package source loads table rows from data files or a SQL query.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/toeirei/dashui/internal/record"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported data format")
	ErrUnsupportedDriver = errors.New("unsupported sql driver")
	ErrNoSource          = errors.New("no data source configured")
)

// Spec names where rows come from. A File wins over a SQL query.
type Spec struct {
	Driver string `mapstructure:"driver" yaml:"driver"`
	DSN    string `mapstructure:"dsn" yaml:"dsn"`
	Query  string `mapstructure:"query" yaml:"query"`
	File   string `mapstructure:"file" yaml:"file"`
}

func (s Spec) IsZero() bool {
	return s.File == "" && s.Query == ""
}

// Load reads the rows described by spec. It returns the rows and the
// field names in the order they were first seen.
func Load(ctx context.Context, spec Spec) ([]*record.Map, []string, error) {
	switch {
	case spec.File != "":
		return LoadFile(spec.File)
	case spec.Query != "":
		return LoadSQL(ctx, spec.Driver, spec.DSN, spec.Query)
	default:
		return nil, nil, ErrNoSource
	}
}

// fieldSet collects field names keeping first-seen order.
type fieldSet struct {
	seen  map[string]struct{}
	names []string
}

func (f *fieldSet) add(name string) {
	if f.seen == nil {
		f.seen = make(map[string]struct{})
	}
	if _, ok := f.seen[name]; ok {
		return
	}
	f.seen[name] = struct{}{}
	f.names = append(f.names, name)
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
