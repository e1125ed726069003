package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumanizeSemicolonList(t *testing.T) {
	out := Humanize(map[string]any{
		"visible_settings": "layer_height; infill_sparse_density ;support_enable;",
	})

	assert.Equal(t, []any{"layer_height", "infill_sparse_density", "support_enable"},
		out["visible_settings"])
}

func TestHumanizeSortsLongLists(t *testing.T) {
	out := Humanize(map[string]any{
		"categories_expanded": "k;j;i;h;g;f;e;d;c;b;a",
	})

	list, ok := out["categories_expanded"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}, list)
}

func TestHumanizeShortListsKeepOrder(t *testing.T) {
	out := Humanize(map[string]any{
		"recent_files": "/tmp/b.stl;/tmp/a.stl",
	})

	assert.Equal(t, []any{"/tmp/b.stl", "/tmp/a.stl"}, out["recent_files"])
}

func TestHumanizeGCode(t *testing.T) {
	out := Humanize(map[string]any{
		"machine_start_gcode": `G28 ; home\nG92 E0\nG1 Z2.0 F3000`,
	})

	assert.Equal(t, []any{"G28 ; home", "G92 E0", "G1 Z2.0 F3000"}, out["machine_start_gcode"])
}

func TestHumanizeSingleLineGCodeStaysString(t *testing.T) {
	out := Humanize(map[string]any{"machine_end_gcode": "M104 S0"})
	assert.Equal(t, "M104 S0", out["machine_end_gcode"])
}

func TestHumanizePolygon(t *testing.T) {
	out := Humanize(map[string]any{
		polygonKey: "[[-44, 26], [-44, -34], [64, 26], [64, -34]]",
	})

	parsed, ok := out[polygonKey].([]any)
	require.True(t, ok)
	assert.Len(t, parsed, 4)

	// An unparseable literal passes through unchanged.
	out = Humanize(map[string]any{polygonKey: "not a polygon"})
	assert.Equal(t, "not a polygon", out[polygonKey])
}

func TestHumanizeRecursesAndPreservesInput(t *testing.T) {
	input := map[string]any{
		"preferences": map[string]any{
			"general": map[string]any{
				"visible_settings": "a;b",
			},
		},
		"count": 3,
	}

	out := Humanize(input)

	nested := out["preferences"].(map[string]any)["general"].(map[string]any)
	assert.Equal(t, []any{"a", "b"}, nested["visible_settings"])
	assert.Equal(t, 3, out["count"])

	// The input map is left untouched.
	original := input["preferences"].(map[string]any)["general"].(map[string]any)
	assert.Equal(t, "a;b", original["visible_settings"])
}
