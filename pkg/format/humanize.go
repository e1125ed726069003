// Package format post-processes the extracted document for human
// readability. The transformations change representation only, never
// semantic values, and are skipped entirely in raw mode.
package format

import (
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// sortThreshold is the list length above which semicolon-delimited lists are
// sorted for readability.
const sortThreshold = 10

// semicolonListKeys are string-encoded semicolon-delimited lists.
var semicolonListKeys = map[string]struct{}{
	"visible_settings":        {},
	"categories_expanded":     {},
	"custom_visible_settings": {},
	"recent_files":            {},
	"expanded_brands":         {},
}

// gcodeKeys are newline-delimited multi-line G-code blocks.
var gcodeKeys = map[string]struct{}{
	"machine_start_gcode": {},
	"machine_end_gcode":   {},
	"start_gcode":         {},
	"end_gcode":           {},
}

// polygonKey is a string-encoded coordinate list literal.
const polygonKey = "machine_head_with_fans_polygon"

// Humanize recursively rewrites string-encoded lists and G-code blocks into
// arrays. The input map is not modified.
func Humanize(data map[string]any) map[string]any {
	return humanizeMap(data)
}

func humanizeMap(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	for key, value := range m {
		result[key] = humanizeValue(key, value)
	}
	return result
}

func humanizeValue(key string, value any) any {
	switch v := value.(type) {
	case map[string]any:
		return humanizeMap(v)
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			if m, ok := item.(map[string]any); ok {
				items[i] = humanizeMap(m)
			} else {
				items[i] = item
			}
		}
		return items
	case string:
		return humanizeString(key, v)
	default:
		return value
	}
}

func humanizeString(key, value string) any {
	if _, ok := semicolonListKeys[key]; ok {
		return splitSemicolonList(value)
	}
	if _, ok := gcodeKeys[key]; ok {
		return splitGCode(value)
	}
	if key == polygonKey {
		return parsePolygon(value)
	}
	return value
}

// splitSemicolonList splits a semicolon-delimited string into items,
// sorting long lists for readability.
func splitSemicolonList(value string) any {
	var items []any
	for _, item := range strings.Split(value, ";") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) > sortThreshold {
		sort.Slice(items, func(i, j int) bool {
			return items[i].(string) < items[j].(string)
		})
	}
	return items
}

// splitGCode turns an embedded multi-line G-code block into a line array.
// Single-line values stay strings. Literal escapes are unfolded first,
// matching how the flat format stores multi-line values.
func splitGCode(value string) any {
	cleaned := strings.ReplaceAll(value, `\n`, "\n")
	cleaned = strings.ReplaceAll(cleaned, `\t`, "\t")
	lines := strings.Split(cleaned, "\n")
	if len(lines) <= 1 {
		return value
	}
	result := make([]any, len(lines))
	for i, line := range lines {
		result[i] = line
	}
	return result
}

// parsePolygon decodes a coordinate-list literal like "[[-44, 26], ...]".
// Unparseable values pass through unchanged.
func parsePolygon(value string) any {
	var parsed any
	if err := json.UnmarshalFromString(value, &parsed); err != nil {
		return value
	}
	return parsed
}
