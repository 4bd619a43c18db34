// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadKeysTreatsPluralsAsOneKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "en.yaml")
	write(t, path, `
app.title: "Title"
selection.count:
  one: "{{.Count}} row"
  other: "{{.Count}} rows"
nested:
  key: "v"
`)
	keys, err := loadKeysFromLocale(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"app.title", "selection.count", "nested.key"} {
		if _, ok := keys[want]; !ok {
			t.Errorf("missing key %q in %v", want, keys)
		}
	}
	if _, ok := keys["selection.count.one"]; ok {
		t.Error("plural form leaked as key")
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "pkg", "a.go"), `package pkg
func f() {
	_ = i18n.T("app.title")
	_ = i18n.TN("selection.count", 2)
}`)
	write(t, filepath.Join(root, "pkg", "a_test.go"), `package pkg
var _ = i18n.T("test.only")`)
	locales := filepath.Join(root, "locales")
	write(t, filepath.Join(locales, "en.yaml"), `
app.title: "Title"
app.unused: "Unused"
selection.count:
  one: "one"
  other: "many"
`)
	write(t, filepath.Join(locales, "de.yaml"), `
app.title: "Titel"
app.unused: "Unbenutzt"
`)

	rep, err := lint(root, locales)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := rep.used["test.only"]; ok {
		t.Error("test files should not be scanned")
	}
	if len(rep.orphans) != 1 || rep.orphans[0] != "app.unused" {
		t.Errorf("orphans = %v", rep.orphans)
	}

	var out bytes.Buffer
	if rep.print(&out) {
		t.Fatal("missing plural key in de.yaml should fail the lint")
	}
	if !strings.Contains(out.String(), "missing: selection.count") {
		t.Fatalf("report:\n%s", out.String())
	}
}
