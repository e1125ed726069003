// Package definition walks Cura definition documents: it flattens the
// nested settings tree of a single document and resolves the `inherits`
// chain across documents. It is chain-agnostic per document and carries no
// merge policy; layering lives in pkg/merge.
package definition

import (
	"github.com/curaprof/curaprof/pkg/parser"
	"github.com/curaprof/curaprof/pkg/schema"
)

// categoryMarker is the `type` value identifying a structural node that
// contributes no setting of its own.
const categoryMarker = "category"

// FlattenSettings flattens a definition document's `settings` category tree
// into a flat setting-key -> metadata map, then folds the document's
// `overrides` block on top, stamping each overridden entry with the
// document's own filename.
//
// The namespace is flat by source-format convention: a leaf is keyed by its
// own node key regardless of nesting depth, never prefixed by its category.
func FlattenSettings(doc *parser.Document) map[string]*schema.SettingMeta {
	settings := make(map[string]*schema.SettingMeta)
	if doc == nil || doc.Tree == nil {
		return settings
	}

	if tree, ok := doc.Tree["settings"].(map[string]any); ok {
		for key, category := range tree {
			node, ok := category.(map[string]any)
			if !ok {
				continue
			}
			for k, meta := range flattenNode(key, node) {
				settings[k] = meta
			}
		}
	}

	if overrides, ok := doc.Tree["overrides"].(map[string]any); ok {
		applyOverrides(settings, overrides, doc.Filename)
	}

	return settings
}

// flattenNode recursively flattens one settings node into a partial map the
// caller merges. It is pure: no shared accumulator crosses recursive calls.
func flattenNode(key string, node map[string]any) map[string]*schema.SettingMeta {
	result := make(map[string]*schema.SettingMeta)

	if children, ok := node["children"].(map[string]any); ok {
		for childKey, child := range children {
			childNode, ok := child.(map[string]any)
			if !ok {
				continue
			}
			for k, meta := range flattenNode(childKey, childNode) {
				result[k] = meta
			}
		}
	}

	// A node is a leaf setting when it carries a non-category `type`.
	// Categories contribute structure only and are skipped for output.
	nodeType, hasType := node["type"].(string)
	if hasType && nodeType != categoryMarker {
		if meta := metaFromNode(node); meta != nil {
			result[key] = meta
		}
	}

	return result
}

// applyOverrides merges the flat `overrides` block into the settings map,
// field by field, creating entries for keys the settings tree never
// declared. Override fields win by being applied second.
func applyOverrides(settings map[string]*schema.SettingMeta, overrides map[string]any, sourceName string) {
	for key, value := range overrides {
		node, ok := value.(map[string]any)
		if !ok {
			continue
		}
		meta, exists := settings[key]
		if !exists {
			meta = &schema.SettingMeta{}
			settings[key] = meta
		}
		mergeNodeInto(meta, node)
		meta.Source = sourceName
	}
}

// metaFromNode copies the fixed allow-list of metadata fields from a leaf
// node. Returns nil when the node carries none of them.
func metaFromNode(node map[string]any) *schema.SettingMeta {
	meta := &schema.SettingMeta{}
	mergeNodeInto(meta, node)
	if isEmptyMeta(meta) {
		return nil
	}
	return meta
}

// mergeNodeInto copies the allow-listed fields present in node onto meta,
// leaving fields the node does not mention untouched.
func mergeNodeInto(meta *schema.SettingMeta, node map[string]any) {
	if v, ok := node["default_value"]; ok {
		meta.DefaultValue = v
	}
	if v, ok := node["value"]; ok {
		meta.Value = v
	}
	if v, ok := node["type"].(string); ok {
		meta.Type = &v
	}
	if v, ok := node["description"].(string); ok {
		meta.Description = &v
	}
	if v, ok := node["unit"].(string); ok {
		meta.Unit = &v
	}
	if v, ok := node["minimum_value"]; ok {
		meta.MinimumValue = v
	}
	if v, ok := node["maximum_value"]; ok {
		meta.MaximumValue = v
	}
	if v, ok := node["enabled"]; ok {
		meta.Enabled = v
	}
	if v, ok := node["settable_per_mesh"].(bool); ok {
		meta.SettablePerMesh = &v
	}
	if v, ok := node["settable_per_extruder"].(bool); ok {
		meta.SettablePerExtruder = &v
	}
	if v, ok := node["options"].(map[string]any); ok {
		meta.Options = v
	}
}

func isEmptyMeta(meta *schema.SettingMeta) bool {
	return meta.DefaultValue == nil &&
		meta.Value == nil &&
		meta.Type == nil &&
		meta.Description == nil &&
		meta.Unit == nil &&
		meta.MinimumValue == nil &&
		meta.MaximumValue == nil &&
		meta.Enabled == nil &&
		meta.SettablePerMesh == nil &&
		meta.SettablePerExtruder == nil &&
		meta.Options == nil
}
