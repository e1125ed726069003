package merge

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curaprof/curaprof/pkg/schema"
)

func stringPtr(s string) *string { return &s }

// fixtureLoader serves canned layers keyed by definition name.
func fixtureLoader(layers map[string]map[string]*schema.SettingMeta) Loader {
	return func(link schema.DefinitionLink) (map[string]*schema.SettingMeta, error) {
		settings, ok := layers[link.Name]
		if !ok {
			return nil, errors.Newf("no fixture for %q", link.Name)
		}
		return settings, nil
	}
}

func chainOf(names ...string) []schema.DefinitionLink {
	chain := make([]schema.DefinitionLink, len(names))
	for i, name := range names {
		chain[i] = schema.DefinitionLink{Name: name, File: name + ".def.json"}
	}
	return chain
}

func TestMergeChainLastWriterWins(t *testing.T) {
	// Chain in traversal order: most specific first. fdmprinter declares the
	// full metadata, descendants override default_value only.
	layers := map[string]map[string]*schema.SettingMeta{
		"fdmprinter": {
			"layer_height": {
				DefaultValue: 0.2,
				Type:         stringPtr("float"),
				Unit:         stringPtr("mm"),
				Description:  stringPtr("The height of each layer in mm."),
			},
			"machine_name": {DefaultValue: "Unknown"},
		},
		"creality_base": {
			"layer_height": {DefaultValue: 0.16},
			"machine_name": {DefaultValue: "Creality"},
		},
		"creality_ender3pro": {
			"machine_name": {DefaultValue: "Creality Ender-3 Pro"},
		},
	}

	effective, err := MergeChain(chainOf("creality_ender3pro", "creality_base", "fdmprinter"), fixtureLoader(layers))
	require.NoError(t, err)

	lh := effective["layer_height"]
	require.NotNil(t, lh)
	// The most specific defining layer wins the field.
	assert.Equal(t, 0.16, lh.DefaultValue)
	// Fields only the general layer defines survive the merge.
	assert.Equal(t, "mm", *lh.Unit)
	assert.Equal(t, "float", *lh.Type)
	// Provenance records contributing layers from most general to most
	// specific.
	assert.Equal(t, []string{"fdmprinter", "creality_base"}, lh.Sources)

	mn := effective["machine_name"]
	require.NotNil(t, mn)
	assert.Equal(t, "Creality Ender-3 Pro", mn.DefaultValue)
	assert.Equal(t, []string{"fdmprinter", "creality_base", "creality_ender3pro"}, mn.Sources)
}

func TestMergeChainAbsentFieldsNeverBlank(t *testing.T) {
	layers := map[string]map[string]*schema.SettingMeta{
		"base": {
			"retraction_enable": {
				DefaultValue: true,
				Description:  stringPtr("Retract the filament when the nozzle moves."),
			},
		},
		"child": {
			// Defines no fields at all; must still appear in provenance.
			"retraction_enable": {},
		},
	}

	effective, err := MergeChain(chainOf("child", "base"), fixtureLoader(layers))
	require.NoError(t, err)

	re := effective["retraction_enable"]
	require.NotNil(t, re)
	assert.Equal(t, true, re.DefaultValue)
	require.NotNil(t, re.Description)
	assert.Equal(t, []string{"base", "child"}, re.Sources)
}

func TestMergeChainOptionsReplacedWholesale(t *testing.T) {
	layers := map[string]map[string]*schema.SettingMeta{
		"base": {
			"support_pattern": {
				Options: map[string]any{"zigzag": "Zig Zag", "lines": "Lines", "grid": "Grid"},
			},
		},
		"child": {
			"support_pattern": {
				Options: map[string]any{"zigzag": "Zig Zag"},
			},
		},
	}

	effective, err := MergeChain(chainOf("child", "base"), fixtureLoader(layers))
	require.NoError(t, err)

	// The defining layer's option set replaces, never unions.
	sp := effective["support_pattern"]
	require.NotNil(t, sp)
	assert.Equal(t, map[string]any{"zigzag": "Zig Zag"}, sp.Options)
}

func TestMergeChainFailedLayerContributesNothing(t *testing.T) {
	layers := map[string]map[string]*schema.SettingMeta{
		"fdmprinter": {
			"layer_height": {DefaultValue: 0.2},
		},
	}

	effective, err := MergeChain(chainOf("ghost", "fdmprinter"), fixtureLoader(layers))
	require.NoError(t, err)

	lh := effective["layer_height"]
	require.NotNil(t, lh)
	assert.Equal(t, []string{"fdmprinter"}, lh.Sources)
}

func TestApplyDefinitionChanges(t *testing.T) {
	effective := map[string]*schema.EffectiveSetting{
		"layer_height": {
			SettingMeta: schema.SettingMeta{DefaultValue: 0.16},
			Sources:     []string{"fdmprinter", "creality_base", "creality_ender3pro"},
		},
	}

	ApplyDefinitionChanges(effective, map[string]string{
		"layer_height":  "0.12",
		"brand_new_key": "42",
	})

	lh := effective["layer_height"]
	// The override sets the effective value and leaves the chain-derived
	// default untouched.
	assert.Equal(t, 0.16, lh.DefaultValue)
	assert.Equal(t, "0.12", lh.EffectiveValue)
	assert.Equal(t, []string{"fdmprinter", "creality_base", "creality_ender3pro", DefinitionChangesSource}, lh.Sources)
	assert.Equal(t, DefinitionChangesSource, lh.Origin())

	// Keys the chain never produced get a fresh entry.
	fresh := effective["brand_new_key"]
	require.NotNil(t, fresh)
	assert.Equal(t, "42", fresh.EffectiveValue)
	assert.Nil(t, fresh.DefaultValue)
	assert.Equal(t, []string{DefinitionChangesSource}, fresh.Sources)
}

func TestMergeChainEmpty(t *testing.T) {
	effective, err := MergeChain(nil, fixtureLoader(nil))
	require.NoError(t, err)
	assert.Empty(t, effective)
}
