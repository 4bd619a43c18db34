// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"
	"github.com/toeirei/dashui/internal/record"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// FormatOf derives the data format from a file name. A trailing .zst is
// ignored and reported through compressed.
func FormatOf(path string) (format string, compressed bool) {
	name := strings.ToLower(filepath.Base(path))
	if trimmed, ok := strings.CutSuffix(name, ".zst"); ok {
		name, compressed = trimmed, true
	}
	switch filepath.Ext(name) {
	case ".json":
		return FormatJSON, compressed
	case ".yaml", ".yml":
		return FormatYAML, compressed
	case ".csv":
		return FormatCSV, compressed
	}
	return "", compressed
}

// LoadFile reads a JSON array of objects, a YAML list of mappings or a CSV
// file with a header row, optionally zstd compressed.
func LoadFile(path string) ([]*record.Map, []string, error) {
	format, compressed := FormatOf(path)
	if format == "" {
		return nil, nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, wrap("open data file", err)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, nil, wrap("open zstd stream", err)
		}
		defer dec.Close()
		r = dec
	}

	rows, fields, err := Decode(r, format)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, fields, nil
}

// Decode parses rows in the given format.
func Decode(r io.Reader, format string) ([]*record.Map, []string, error) {
	switch format {
	case FormatJSON, FormatYAML:
		return decodeDocument(r)
	case FormatCSV:
		return decodeCSV(r)
	}
	return nil, nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
}

// decodeDocument handles JSON and YAML alike; JSON is valid YAML and the
// ordered map keeps the key order for the column list.
func decodeDocument(r io.Reader) ([]*record.Map, []string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, wrap("read data", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, nil
	}

	var docs []yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &docs, yaml.UseOrderedMap()); err != nil {
		return nil, nil, wrap("decode rows", err)
	}

	var fields fieldSet
	rows := make([]*record.Map, 0, len(docs))
	for _, doc := range docs {
		values := make(map[string]any, len(doc))
		for _, item := range doc {
			name := fmt.Sprint(item.Key)
			fields.add(name)
			values[name] = normalize(item.Value)
		}
		rows = append(rows, record.NewMap(values))
	}
	return rows, fields.names, nil
}

func decodeCSV(r io.Reader) ([]*record.Map, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, wrap("read csv header", err)
	}

	var fields fieldSet
	for _, name := range header {
		fields.add(name)
	}

	var rows []*record.Map
	for {
		line, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, wrap("read csv", err)
		}
		values := make(map[string]any, len(header))
		for i, cell := range line {
			if i >= len(header) {
				break
			}
			values[header[i]] = parseCell(cell)
		}
		rows = append(rows, record.NewMap(values))
	}
	return rows, fields.names, nil
}

// parseCell turns numeric cells into numbers so they sort numerically.
func parseCell(cell string) any {
	if cell == "" {
		return ""
	}
	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}
	return cell
}

// normalize flattens decoder specific types into plain Go values.
func normalize(v any) any {
	switch v := v.(type) {
	case yaml.MapSlice:
		m := make(map[string]any, len(v))
		for _, item := range v {
			m[fmt.Sprint(item.Key)] = normalize(item.Value)
		}
		return m
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = normalize(v[i])
		}
		return out
	case []byte:
		return string(v)
	default:
		return v
	}
}
