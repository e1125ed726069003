package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "machine.global.cfg", `[general]
version = 4
name = Ender 3 Pro

[metadata]
type = machine

[containers]
0 = Ender 3 Pro_user
6 = Creality Ender-3 Pro_settings
7 = creality_ender3pro
`)

	doc := ParseConfigFile(path)
	require.False(t, doc.Failed())
	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "machine.global.cfg", doc.Filename)
	assert.Equal(t, "Ender 3 Pro", doc.SectionValue("general", "name"))
	assert.Equal(t, "creality_ender3pro", doc.SectionValue("containers", "7"))
	assert.Equal(t, map[string]string{"type": "machine"}, doc.Section("metadata"))
}

func TestParseConfigFileKeepsSemicolons(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "cura.cfg", `[general]
visible_settings = layer_height;infill_sparse_density;support_enable
`)

	doc := ParseConfigFile(path)
	require.False(t, doc.Failed())
	// Semicolons are data (list delimiters), not inline comments.
	assert.Equal(t, "layer_height;infill_sparse_density;support_enable",
		doc.SectionValue("general", "visible_settings"))
}

func TestParseConfigFileMultilineValue(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "profile.inst.cfg", `[values]
machine_start_gcode = G28 ; home
	G92 E0
	G1 Z2.0 F3000
layer_height = 0.12
`)

	doc := ParseConfigFile(path)
	require.False(t, doc.Failed())
	assert.Contains(t, doc.SectionValue("values", "machine_start_gcode"), "G92 E0")
	assert.Equal(t, "0.12", doc.SectionValue("values", "layer_height"))
}

func TestParseConfigFileMissing(t *testing.T) {
	doc := ParseConfigFile(filepath.Join(t.TempDir(), "nope.cfg"))
	assert.True(t, doc.Failed())
	assert.Equal(t, "file not found", doc.Error)
	assert.Nil(t, doc.Section("general"))
}

func TestParseDefinitionFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "creality_base.def.json", `{
  "name": "Creality Base",
  "inherits": "fdmprinter",
  "overrides": {
    "layer_height": {"default_value": 0.16}
  }
}`)

	doc := ParseDefinitionFile(path)
	require.False(t, doc.Failed())
	assert.Equal(t, "fdmprinter", doc.Tree["inherits"])
}

func TestParseDefinitionFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.def.json", `{"name": `)

	doc := ParseDefinitionFile(path)
	assert.True(t, doc.Failed())
	assert.Nil(t, doc.Tree)
}

func TestDocumentName(t *testing.T) {
	doc := &Document{
		Filename: "my_profile.inst.cfg",
		Sections: map[string]map[string]string{
			"general": {"name": "Fine Detail"},
		},
	}
	assert.Equal(t, "Fine Detail", doc.Name())

	// Fall back to the file stem when no name is declared.
	doc.Sections = nil
	assert.Equal(t, "my_profile.inst", doc.Name())
}

func TestDocumentAsMap(t *testing.T) {
	doc := &Document{
		Path:     "/data/cura.cfg",
		Filename: "cura.cfg",
		Error:    "file not found",
	}
	m := doc.AsMap()
	assert.Equal(t, "/data/cura.cfg", m["_filepath"])
	assert.Equal(t, "cura.cfg", m["_filename"])
	assert.Equal(t, "file not found", m["_error"])
}
