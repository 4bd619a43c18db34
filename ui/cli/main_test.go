// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/dashui/internal/config"
	"github.com/toeirei/dashui/internal/i18n"
	"github.com/toeirei/dashui/internal/record"
	"github.com/toeirei/dashui/internal/source"
)

// run executes a fresh root command with an empty user config dir.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Cleanup(func() { i18n.Init("en") })

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestStoriesCommand(t *testing.T) {
	out, err := run(t, "stories")
	if err != nil {
		t.Fatalf("stories: %v", err)
	}
	for _, want := range []string{"DataTable/Default", "DataTable/DarkModeLoading", "InputField/Sizes"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestStoryCommand(t *testing.T) {
	out, err := run(t, "story", "InputField/Password", "--static")
	if err != nil {
		t.Fatalf("story: %v", err)
	}
	if !strings.Contains(out, "Password") {
		t.Fatalf("story not rendered:\n%s", out)
	}

	if _, err := run(t, "story", "nope"); err == nil || !strings.Contains(err.Error(), "unknown story") {
		t.Fatalf("err = %v", err)
	}
}

func TestTableCommandStatic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.json")
	data := `[{"id": 1, "name": "Ann"}, {"id": 2, "name": "Ben"}]`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "table", "--file", path, "--static")
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	for _, want := range []string{"Name", "Ann", "Ben"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestTableCommandErrors(t *testing.T) {
	if _, err := run(t, "table", "--static"); !errors.Is(err, source.ErrNoSource) {
		t.Fatalf("err = %v, want ErrNoSource", err)
	}

	path := filepath.Join(t.TempDir(), "rows.txt")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "table", "--file", path, "--static"); !errors.Is(err, source.ErrUnsupportedFormat) {
		t.Fatalf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestConfigShowUsesFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashui.yaml")
	cfg := config.Config{Language: "de", Theme: "dark"}
	cfg.Table.PageSize = 7
	if err := config.WriteConfigFileTo(&cfg, path); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "--config", path, "--language", "en", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"theme: dark", "language: en", "page_size: 7", "log_file: dashui.log"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestConfigMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := run(t, "--config", missing, "version"); err == nil {
		t.Fatal("expected error for missing --config file")
	}
}

func TestConfigWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dashui.yaml")
	out, err := run(t, "--theme", "dark", "config", "write", "--path", path)
	if err != nil {
		t.Fatalf("config write: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Fatalf("output = %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "theme: dark") {
		t.Fatalf("written config:\n%s", data)
	}
}

func TestMergeSpec(t *testing.T) {
	configured := source.Spec{Driver: "sqlite", DSN: "file.db", Query: "select 1"}

	if got := mergeSpec(source.Spec{File: "a.csv"}, configured); got != (source.Spec{File: "a.csv"}) {
		t.Fatalf("file flag: %+v", got)
	}
	if got := mergeSpec(source.Spec{Query: "select 2"}, configured); got.Driver != "sqlite" || got.Query != "select 2" {
		t.Fatalf("query flag: %+v", got)
	}
	if got := mergeSpec(source.Spec{}, source.Spec{File: "b.json"}); got.File != "b.json" {
		t.Fatalf("configured file: %+v", got)
	}
}

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	if err := printSelection(&buf, nil); err != nil || buf.Len() != 0 {
		t.Fatalf("empty selection printed %q (%v)", buf.String(), err)
	}

	rows := []*record.Map{record.NewMap(map[string]any{"name": "Ann"})}
	if err := printSelection(&buf, rows); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"name": "Ann"`) {
		t.Fatalf("printed %q", buf.String())
	}
}
