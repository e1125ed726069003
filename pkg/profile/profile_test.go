package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadBuiltinQualities(t *testing.T) {
	resources := t.TempDir()
	writeFile(t, filepath.Join(resources, "quality", "base", "base_global_standard.inst.cfg"), `[general]
name = Standard Quality

[metadata]
quality_type = standard

[values]
layer_height = 0.2
`)
	writeFile(t, filepath.Join(resources, "quality", "base", "base_global_draft.inst.cfg"), `[general]
name = Draft Quality

[metadata]
quality_type = draft

[values]
layer_height = 0.3
`)

	qualities := LoadBuiltinQualities(resources)
	require.Len(t, qualities, 2)

	standard := qualities["standard"]
	assert.Equal(t, "Standard Quality", standard.Name)
	assert.Equal(t, "0.2", standard.Settings["layer_height"])
	assert.Equal(t, "Draft Quality", qualities["draft"].Name)
}

func TestLoadCustomQualitiesGroupsByName(t *testing.T) {
	dir := t.TempDir()
	// One global file and one per-extruder file declare the same name; they
	// form one grouped profile.
	writeFile(t, filepath.Join(dir, "a_global.inst.cfg"), `[general]
name = My Fine Profile

[metadata]
type = quality_changes

[values]
layer_height = 0.12
`)
	writeFile(t, filepath.Join(dir, "b_extruder.inst.cfg"), `[general]
name = My Fine Profile

[metadata]
position = 0

[values]
retraction_amount = 6.5
`)

	profiles := LoadCustomQualities(dir)
	require.Len(t, profiles, 1)

	group := profiles["My Fine Profile"]
	require.NotNil(t, group)
	assert.Len(t, group.Files, 2)
	assert.Equal(t, "0.12", group.Settings["layer_height"])
	assert.Equal(t, "6.5", group.Settings["retraction_amount"])
	// Metadata blocks are unioned across the group's files.
	assert.Equal(t, "quality_changes", group.Metadata["type"])
	assert.Equal(t, "0", group.Metadata["position"])
}

func TestLoadCustomQualitiesLaterFileWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "01_first.inst.cfg"), `[general]
name = P

[values]
layer_height = 0.2
`)
	writeFile(t, filepath.Join(dir, "02_second.inst.cfg"), `[general]
name = P

[values]
layer_height = 0.12
`)

	profiles := LoadCustomQualities(dir)
	// Files are processed in lexical order, so the later file's key wins.
	assert.Equal(t, "0.12", profiles["P"].Settings["layer_height"])
}

func TestLoadCustomQualitiesMissingDir(t *testing.T) {
	profiles := LoadCustomQualities(filepath.Join(t.TempDir(), "absent"))
	assert.Empty(t, profiles)
}

func TestLoadExtruders(t *testing.T) {
	dataPath := t.TempDir()
	writeFile(t, filepath.Join(dataPath, "extruders", "e0.extruder.cfg"), `[general]
name = Extruder 1

[metadata]
machine = Ender 3 Pro
position = 0

[containers]
6 = Extruder Settings
`)
	writeFile(t, filepath.Join(dataPath, "extruders", "other.extruder.cfg"), `[general]
name = Other

[metadata]
machine = Some Other Machine
position = 0
`)
	writeFile(t, filepath.Join(dataPath, "definition_changes", "e0_settings.inst.cfg"), `[general]
name = Extruder Settings

[values]
machine_nozzle_size = 0.6
`)

	extruders := LoadExtruders(dataPath, "Ender 3 Pro")
	require.Contains(t, extruders, "extruder_0")
	require.Contains(t, extruders, "extruder_0_settings")
	// Extruders belonging to other machines are filtered out.
	assert.Len(t, extruders, 2)

	settings, ok := extruders["extruder_0_settings"].(map[string]any)
	require.True(t, ok)
	values, ok := settings["values"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "0.6", values["machine_nozzle_size"])
}

func TestFindDefinitionChanges(t *testing.T) {
	dataPath := t.TempDir()
	writeFile(t, filepath.Join(dataPath, "definition_changes", "x.inst.cfg"), `[general]
name = Creality Ender-3 Pro_settings

[values]
layer_height = 0.12
`)

	doc := FindDefinitionChanges(dataPath, "Creality Ender-3 Pro_settings")
	require.NotNil(t, doc)
	assert.Equal(t, "0.12", doc.SectionValue("values", "layer_height"))

	assert.Nil(t, FindDefinitionChanges(dataPath, "unknown"))
}

func TestLoadPlugins(t *testing.T) {
	dataPath := t.TempDir()
	writeFile(t, filepath.Join(dataPath, "packages.json"), `{
  "installed": {
    "OctoPrintPlugin": {
      "package_info": {
        "display_name": "OctoPrint Connection",
        "package_version": "3.7.0",
        "description": "Connects to OctoPrint.",
        "author": {"display_name": "fieldOfView"},
        "website": "https://example.com"
      }
    },
    "bare": {"package_info": {"package_version": "1.0.0"}}
  }
}`)

	plugins := LoadPlugins(dataPath)
	require.Len(t, plugins, 2)

	octo := plugins["OctoPrintPlugin"]
	assert.Equal(t, "OctoPrint Connection", octo.Name)
	assert.Equal(t, "3.7.0", octo.Version)
	assert.Equal(t, "fieldOfView", octo.Author)

	// A package without a display name falls back to its identifier.
	assert.Equal(t, "bare", plugins["bare"].Name)
}

func TestLoadPluginsMissingManifest(t *testing.T) {
	assert.Empty(t, LoadPlugins(t.TempDir()))
}

func TestLoadPreferences(t *testing.T) {
	dataPath := t.TempDir()
	writeFile(t, filepath.Join(dataPath, "cura.cfg"), `[general]
visible_settings = layer_height;speed_print
`)

	doc := LoadPreferences(dataPath)
	require.False(t, doc.Failed())
	assert.Equal(t, "layer_height;speed_print", doc.SectionValue("general", "visible_settings"))
}
