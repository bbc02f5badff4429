package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultDateLayout is used by FormatDate when no layout is given.
const DefaultDateLayout = "2006-01-02 15:04:05"

// FormatDate renders t using layout, falling back to DefaultDateLayout when
// layout is empty.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	return t.Format(layout)
}

// ParseJSONFile reads the file at path and decodes it as a JSON object.
func ParseJSONFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("invalid JSON in file %s: %w", path, err)
	}
	return out, nil
}
