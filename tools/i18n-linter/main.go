// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the translation keys used in
// the Go sources. Keys missing from a locale fail the run, keys no source
// file mentions are reported as orphans.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// keyRe finds i18n.T / i18n.TN calls and bare literals shaped like keys.
var keyRe = regexp.MustCompile(`i18n\.TN?\("([^"]+)"|"([a-z]+\.[a-z_.]+)"`)

// pluralForms are the CLDR categories go-i18n accepts under a plural key.
var pluralForms = []string{"zero", "one", "two", "few", "many", "other"}

type report struct {
	used    map[string]struct{}
	primary map[string]struct{}
	missing map[string][]string // locale file -> keys
	orphans []string
}

func main() {
	rep, err := lint(projectRoot, filepath.Join(projectRoot, localesDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	if !rep.print(os.Stdout) {
		os.Exit(1)
	}
}

func lint(root, locales string) (*report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return nil, fmt.Errorf("scanning sources: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", primaryLocale, err)
	}
	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return nil, err
	}

	rep := &report{used: used, primary: primary, missing: map[string][]string{}}
	for key := range primary {
		if _, ok := used[key]; !ok {
			rep.orphans = append(rep.orphans, key)
		}
	}
	slices.Sort(rep.orphans)

	for _, file := range files {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", file, err)
		}
		for key := range primary {
			if _, ok := keys[key]; !ok {
				rep.missing[file] = append(rep.missing[file], key)
			}
		}
		slices.Sort(rep.missing[file])
	}
	return rep, nil
}

// print writes the report and tells whether the locales are consistent.
func (r *report) print(w io.Writer) bool {
	fmt.Fprintf(w, "%d keys used in sources, %d keys in %s\n", len(r.used), len(r.primary), primaryLocale)

	ok := true
	files := make([]string, 0, len(r.missing))
	for file := range r.missing {
		files = append(files, file)
	}
	slices.Sort(files)
	for _, file := range files {
		for _, key := range r.missing[file] {
			fmt.Fprintf(w, "missing: %s in %s\n", key, file)
			ok = false
		}
	}
	for _, key := range r.orphans {
		fmt.Fprintf(w, "orphaned: %s\n", key)
	}

	if ok {
		fmt.Fprintln(w, "all locales are consistent")
	}
	return ok
}

// findUsedKeys scans non-test .go files below root, skipping tools.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (d.Name() == "tools" || strings.HasPrefix(d.Name(), "_") || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyRe.FindAllStringSubmatch(string(content), -1) {
			if match[1] != "" {
				keys[match[1]] = struct{}{}
			} else if match[2] != "" {
				keys[match[2]] = struct{}{}
			}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale returns the flat, dot separated keys of a locale file.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	v, ok := node.(map[string]any)
	if !ok || (prefix != "" && isPlural(v)) {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, val := range v {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		flattenYAML(name, val, keys)
	}
}

func isPlural(m map[string]any) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if !slices.Contains(pluralForms, k) {
			return false
		}
	}
	return true
}
