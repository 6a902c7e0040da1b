// Package commands contains CLI command implementations for the application.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/allisson/vaultclient/internal/app"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// CloseContainer closes all resources in the container and logs any errors.
func CloseContainer(container *app.Container, logger *slog.Logger) {
	if err := container.Shutdown(context.Background()); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

// validateFormat checks the output format flag.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid options: text, json)", format)
	}
}

// writeOutput renders result as indented JSON, or with text when format is "text".
func writeOutput(w io.Writer, format string, result any, text func(io.Writer)) {
	if format != "json" {
		text(w)
		return
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}
	_, _ = fmt.Fprintln(w, string(jsonBytes))
}

// writeRecords prints one line per record with its fields in key order.
func writeRecords(w io.Writer, records []map[string]any) {
	for i, record := range records {
		keys := make([]string, 0, len(record))
		for k := range record {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, record[k]))
		}
		_, _ = fmt.Fprintf(w, "[%d] %s\n", i, strings.Join(parts, " "))
	}
}

// parseJSONObject parses a JSON object flag value.
func parseJSONObject(name, raw string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	parsed := gjson.Parse(raw)
	if !gjson.Valid(raw) || !parsed.IsObject() {
		return nil, fmt.Errorf("%s must be a JSON object", name)
	}
	object, _ := parsed.Value().(map[string]any)
	return object, nil
}

// parseJSONObjects parses a JSON array of objects flag value.
func parseJSONObjects(name, raw string) ([]map[string]any, error) {
	if !gjson.Valid(raw) || !gjson.Parse(raw).IsArray() {
		return nil, fmt.Errorf("%s must be a JSON array of objects", name)
	}
	items := gjson.Parse(raw).Array()
	objects := make([]map[string]any, 0, len(items))
	for i, item := range items {
		object, ok := item.Value().(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a JSON object", name, i)
		}
		objects = append(objects, object)
	}
	return objects, nil
}

// parseKeyValues parses repeated key=value flag values.
func parseKeyValues(name string, pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("%s must be key=value, got: %s", name, pair)
		}
		values[key] = value
	}
	return values, nil
}
