// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package source

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/toeirei/dashui/internal/logging"
	"github.com/toeirei/dashui/internal/record"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/schema"
	_ "modernc.org/sqlite"
)

type driver struct {
	sqlName string
	dialect func() schema.Dialect
}

var drivers = map[string]driver{
	"sqlite":   {"sqlite", func() schema.Dialect { return sqlitedialect.New() }},
	"postgres": {"pgx", func() schema.Dialect { return pgdialect.New() }},
	"mysql":    {"mysql", func() schema.Dialect { return mysqldialect.New() }},
}

// NormalizeDriver maps common driver spellings to sqlite, postgres or
// mysql.
func NormalizeDriver(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sqlite", "sqlite3":
		return "sqlite", nil
	case "postgres", "postgresql", "pg", "pgx":
		return "postgres", nil
	case "mysql", "mariadb":
		return "mysql", nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnsupportedDriver)
}

// Open connects to dsn through bun. The caller closes the returned DB.
func Open(driverName, dsn string) (*bun.DB, error) {
	name, err := NormalizeDriver(driverName)
	if err != nil {
		return nil, err
	}
	d := drivers[name]
	sqldb, err := sql.Open(d.sqlName, dsn)
	if err != nil {
		return nil, wrap("open database", err)
	}
	return bun.NewDB(sqldb, d.dialect()), nil
}

// LoadSQL runs query and returns one row per result row. Fields follow the
// column order of the result set.
func LoadSQL(ctx context.Context, driverName, dsn, query string) ([]*record.Map, []string, error) {
	db, err := Open(driverName, dsn)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	return Query(ctx, db, query)
}

// Query runs query on an open database.
func Query(ctx context.Context, db *bun.DB, query string, args ...any) ([]*record.Map, []string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, wrap("run query", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, wrap("read columns", err)
	}

	var scanned []map[string]any
	if err := db.ScanRows(ctx, rows, &scanned); err != nil {
		return nil, nil, wrap("scan rows", err)
	}
	logging.Debugf("source: query returned %d rows", len(scanned))

	out := make([]*record.Map, len(scanned))
	for i, values := range scanned {
		for k, v := range values {
			values[k] = normalize(v)
		}
		out[i] = record.NewMap(values)
	}
	return out, columns, nil
}
