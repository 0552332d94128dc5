// Package report renders a health snapshot as JSON, plain text, or HTML.
// All renderers are pure functions of their input.
package report

import (
	"encoding/json"
	"fmt"
)

// JSON serializes v with two-space indentation. Map-backed sections
// marshal with sorted keys, so output is stable across runs.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}
