package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/dashui/internal/record"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func field(t *testing.T, row *record.Map, name string) string {
	t.Helper()
	v, ok := row.Field(name)
	if !ok {
		t.Fatalf("row has no field %q", name)
	}
	return record.Format(v)
}

func TestFormatOf(t *testing.T) {
	cases := []struct {
		path       string
		format     string
		compressed bool
	}{
		{"users.json", FormatJSON, false},
		{"users.YAML", FormatYAML, false},
		{"users.yml.zst", FormatYAML, true},
		{"dir/users.csv", FormatCSV, false},
		{"users.txt", "", false},
	}
	for _, c := range cases {
		format, compressed := FormatOf(c.path)
		if format != c.format || compressed != c.compressed {
			t.Errorf("FormatOf(%q) = %q, %v", c.path, format, compressed)
		}
	}
}

func TestLoadFile_JSONKeepsKeyOrder(t *testing.T) {
	path := writeFile(t, "users.json", `[
		{"id": 1, "name": "Bob", "email": "bob@example.com"},
		{"id": 2, "name": "Alice", "role": "Admin"}
	]`)
	rows, fields, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if !slices.Equal(fields, []string{"id", "name", "email", "role"}) {
		t.Fatalf("fields = %v", fields)
	}
	if field(t, rows[1], "name") != "Alice" {
		t.Fatalf("second row name = %q", field(t, rows[1], "name"))
	}
	if _, ok := rows[1].Field("email"); ok {
		t.Fatalf("missing key should stay missing")
	}
	if record.Compare(mustField(rows[0], "id"), mustField(rows[1], "id")) >= 0 {
		t.Fatalf("ids should compare numerically")
	}
}

func mustField(row *record.Map, name string) any {
	v, _ := row.Field(name)
	return v
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeFile(t, "users.yaml", `
- name: Carol
  age: 41
- name: Dave
  age: 9
`)
	rows, fields, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !slices.Equal(fields, []string{"name", "age"}) {
		t.Fatalf("fields = %v", fields)
	}
	if record.Compare(mustField(rows[1], "age"), mustField(rows[0], "age")) >= 0 {
		t.Fatalf("9 should sort before 41")
	}
}

func TestLoadFile_CSVParsesNumbers(t *testing.T) {
	path := writeFile(t, "users.csv", "id,name,score\n10,Bob,1.5\n9,Alice,\n")
	rows, fields, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !slices.Equal(fields, []string{"id", "name", "score"}) {
		t.Fatalf("fields = %v", fields)
	}
	if v, _ := rows[0].Field("id"); v != int64(10) {
		t.Fatalf("id = %#v", v)
	}
	if v, _ := rows[0].Field("score"); v != 1.5 {
		t.Fatalf("score = %#v", v)
	}
	if field(t, rows[1], "name") != "Alice" {
		t.Fatalf("name = %q", field(t, rows[1], "name"))
	}
}

func TestLoadFile_Zstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.csv.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Write([]byte("name\nBob\nAlice\n")); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	rows, _, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(rows) != 2 || field(t, rows[0], "name") != "Bob" {
		t.Fatalf("unexpected rows from zstd file")
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, _, err := LoadFile(writeFile(t, "users.txt", "x")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
	if _, _, err := LoadFile(writeFile(t, "broken.json", `[{"a": }`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	rows, fields, err := LoadFile(writeFile(t, "empty.json", "  \n"))
	if err != nil || len(rows) != 0 || len(fields) != 0 {
		t.Fatalf("empty file: rows=%d fields=%v err=%v", len(rows), fields, err)
	}
}

func TestLoadSQL_SQLite(t *testing.T) {
	ctx := context.Background()
	rows, fields, err := LoadSQL(ctx, "sqlite3", ":memory:",
		"SELECT 1 AS id, 'Bob' AS name UNION ALL SELECT 2, 'Alice'")
	if err != nil {
		t.Fatalf("LoadSQL: %v", err)
	}
	if !slices.Equal(fields, []string{"id", "name"}) {
		t.Fatalf("fields = %v", fields)
	}
	if len(rows) != 2 || field(t, rows[1], "name") != "Alice" {
		t.Fatalf("unexpected rows: %d", len(rows))
	}
	if field(t, rows[0], "id") != "1" {
		t.Fatalf("id = %q", field(t, rows[0], "id"))
	}
}

func TestQuery_Table(t *testing.T) {
	ctx := context.Background()
	db, err := Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT, role TEXT)",
		"INSERT INTO users (name, role) VALUES ('Alice', 'Admin'), ('Bob', NULL)",
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}

	rows, fields, err := Query(ctx, db, "SELECT id, name, role FROM users WHERE id > ? ORDER BY id", 0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if !slices.Equal(fields, []string{"id", "name", "role"}) {
		t.Fatalf("fields = %v", fields)
	}
	if len(rows) != 2 || field(t, rows[0], "name") != "Alice" {
		t.Fatalf("unexpected rows")
	}
	if v, _ := rows[1].Field("role"); v != nil {
		t.Fatalf("NULL role = %#v", v)
	}
}

func TestLoad_Dispatch(t *testing.T) {
	if _, _, err := Load(context.Background(), Spec{}); !errors.Is(err, ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
	if _, _, err := Load(context.Background(), Spec{Driver: "oracle", Query: "SELECT 1"}); !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("expected ErrUnsupportedDriver, got %v", err)
	}
	path := writeFile(t, "users.json", `[{"name": "Bob"}]`)
	rows, _, err := Load(context.Background(), Spec{File: path, Query: "ignored"})
	if err != nil || len(rows) != 1 {
		t.Fatalf("file spec: rows=%d err=%v", len(rows), err)
	}
}

func TestNormalizeDriver(t *testing.T) {
	for in, want := range map[string]string{
		"":           "sqlite",
		"SQLite3":    "sqlite",
		"postgresql": "postgres",
		"pgx":        "postgres",
		"mariadb":    "mysql",
	} {
		got, err := NormalizeDriver(in)
		if err != nil || got != want {
			t.Errorf("NormalizeDriver(%q) = %q, %v", in, got, err)
		}
	}
}
