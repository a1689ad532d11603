package cmd

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
)

type format string

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func parseFormat(raw string) (format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", formatJSON:
		return formatJSON, nil
	case formatYAML, "yml":
		return formatYAML, nil
	case formatTable:
		return formatTable, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", raw)
	}
}

// render writes value as indented JSON, YAML or a table. YAML and tables go
// through the JSON encoding first so every format uses the same field names.
func render(w io.Writer, f format, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch f {
	case formatYAML:
		var generic any
		if err := json.Unmarshal(encoded, &generic); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		document, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to encode output as yaml: %w", err)
		}
		_, err = w.Write(document)
		return err
	case formatTable:
		decoder := json.NewDecoder(bytes.NewReader(encoded))
		decoder.UseNumber()
		var generic any
		if err := decoder.Decode(&generic); err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
		headers, rows := tabulate(generic)
		return writeTable(w, headers, rows)
	default:
		_, err = fmt.Fprintln(w, string(encoded))
		return err
	}
}

func writeTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	cells := make([]any, len(headers))
	for i, header := range headers {
		cells[i] = header
	}
	table.Header(cells...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, cell := range row {
			cells[i] = cell
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}

// tabulate flattens a decoded JSON value into table rows. A page (one list
// of objects next to its links) or a bare list becomes one row per item.
// Any other object becomes field/value pairs.
func tabulate(value any) ([]string, [][]string) {
	switch v := value.(type) {
	case []any:
		return itemRows(v)
	case map[string]any:
		if items, ok := pageItems(v); ok {
			return itemRows(items)
		}
		keys := sortedKeys(v)
		rows := make([][]string, 0, len(keys))
		for _, key := range keys {
			rows = append(rows, []string{key, cell(v[key])})
		}
		return []string{"field", "value"}, rows
	default:
		return []string{"value"}, [][]string{{cell(v)}}
	}
}

func pageItems(object map[string]any) ([]any, bool) {
	var items []any
	found := false
	for key, value := range object {
		if key == "links" {
			continue
		}
		list, ok := value.([]any)
		if !ok || found {
			return nil, false
		}
		items, found = list, true
	}
	return items, found
}

func itemRows(items []any) ([]string, [][]string) {
	columns := map[string]struct{}{}
	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{cell(item)})
			}
			return []string{"value"}, rows
		}
		for key := range object {
			columns[key] = struct{}{}
		}
	}

	headers := sortedKeys(columns)
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		object := item.(map[string]any)
		row := make([]string, len(headers))
		for i, header := range headers {
			row[i] = cell(object[header])
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func cell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		compact, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(compact)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
