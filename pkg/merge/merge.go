// Package merge implements the effective-settings merger: it layers the
// flattened output of each chain link from the most general document to the
// most specific, then overlays the user's definition-changes values, keeping
// an ordered provenance list per setting.
package merge

import (
	"sort"

	"dario.cat/mergo"
	"github.com/cockroachdb/errors"

	log "github.com/curaprof/curaprof/pkg/logger"
	"github.com/curaprof/curaprof/pkg/schema"
)

// DefinitionChangesSource is the provenance marker appended for the user
// override layer. It is always the last entry when present, since overrides
// are applied after the chain.
const DefinitionChangesSource = "definition_changes"

// Loader produces one chain link's flattened settings. pkg/definition's
// walker satisfies it; tests substitute fixtures.
type Loader func(link schema.DefinitionLink) (map[string]*schema.SettingMeta, error)

// MergeChain merges the ordered inheritance chain into an effective-settings
// map. The chain arrives in traversal order (most specific first) and is
// applied in reverse, so the most general layer goes first and the last
// writer wins.
//
// Every key observed in any layer appears exactly once in the result, each
// contributing layer is appended to the key's provenance in chain order, and
// incoming metadata overwrites only the fields it actually defines. A layer
// that fails to load contributes nothing; the partial result stays valid.
func MergeChain(chain []schema.DefinitionLink, load Loader) (map[string]*schema.EffectiveSetting, error) {
	effective := make(map[string]*schema.EffectiveSetting)

	for i := len(chain) - 1; i >= 0; i-- {
		link := chain[i]
		settings, err := load(link)
		if err != nil {
			log.Warn("chain layer contributes nothing", "definition", link.Name, "file", link.File, "error", err)
			continue
		}

		for _, key := range sortedKeys(settings) {
			if err := mergeLayer(effective, key, settings[key], link.Name); err != nil {
				return nil, err
			}
		}
	}

	return effective, nil
}

// mergeLayer folds one layer's metadata for one key into the effective map
// and records the layer in the key's provenance, even when the metadata adds
// no new fields.
func mergeLayer(effective map[string]*schema.EffectiveSetting, key string, meta *schema.SettingMeta, layer string) error {
	entry, ok := effective[key]
	if !ok {
		entry = &schema.EffectiveSetting{Sources: []string{}}
		effective[key] = entry
	}

	if err := mergo.Merge(&entry.SettingMeta, *meta, mergo.WithOverride); err != nil {
		return errors.Wrapf(err, "merging setting %q from layer %q", key, layer)
	}
	// Option sets are replaced wholesale by the defining layer, not unioned
	// across layers.
	if meta.Options != nil {
		entry.Options = meta.Options
	}

	entry.Sources = append(entry.Sources, layer)
	return nil
}

// ApplyDefinitionChanges overlays the user's definition-changes values on an
// already-merged effective map. The override sets the distinguished
// effective value and leaves the chain-derived default untouched, so callers
// can distinguish "as-shipped" from "as-customized". Keys the chain never
// produced get a fresh entry.
func ApplyDefinitionChanges(effective map[string]*schema.EffectiveSetting, values map[string]string) {
	for _, key := range sortedKeys(values) {
		entry, ok := effective[key]
		if !ok {
			entry = &schema.EffectiveSetting{Sources: []string{}}
			effective[key] = entry
		}
		entry.EffectiveValue = values[key]
		entry.Sources = append(entry.Sources, DefinitionChangesSource)
	}
}

// sortedKeys returns map keys in lexical order for deterministic merging.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
