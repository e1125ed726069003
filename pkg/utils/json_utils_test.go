package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONSortsKeys(t *testing.T) {
	data := map[string]any{"zebra": 1, "alpha": 2, "mid": 3}

	first, err := MarshalJSON(data)
	require.NoError(t, err)
	second, err := MarshalJSON(data)
	require.NoError(t, err)

	// Sorted keys make repeated marshals byte-identical.
	assert.Equal(t, first, second)
	alpha := []byte(`"alpha"`)
	zebra := []byte(`"zebra"`)
	assert.Less(t, indexOf(first, alpha), indexOf(first, zebra))
}

func TestWriteToFileAsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteToFileAsJSON(path, map[string]string{"a": "b"}, 0o644))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"b\"\n}\n", string(raw))
}

func TestConvertToMap(t *testing.T) {
	type sample struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
		Skip  string `json:"skip,omitempty"`
	}

	m, err := ConvertToMap(sample{Name: "x", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, "x", m["name"])
	assert.NotContains(t, m, "skip")
}

func indexOf(haystack, needle []byte) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if string(haystack[i:i+len(needle)]) == string(needle) {
			return i
		}
	}
	return -1
}
