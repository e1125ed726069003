package schema

// SettingMeta is one setting's metadata at one point in the inheritance
// chain. Every field is optional: nil means the layer does not define the
// field, which is what keeps a merge from blanking fields a layer never
// mentions. Values stay loosely typed (Cura encodes numbers, booleans and
// Python expressions interchangeably); this engine carries them opaquely.
type SettingMeta struct {
	DefaultValue        any            `json:"default_value,omitempty" yaml:"default_value,omitempty"`
	Value               any            `json:"value,omitempty" yaml:"value,omitempty"`
	Type                *string        `json:"type,omitempty" yaml:"type,omitempty"`
	Description         *string        `json:"description,omitempty" yaml:"description,omitempty"`
	Unit                *string        `json:"unit,omitempty" yaml:"unit,omitempty"`
	MinimumValue        any            `json:"minimum_value,omitempty" yaml:"minimum_value,omitempty"`
	MaximumValue        any            `json:"maximum_value,omitempty" yaml:"maximum_value,omitempty"`
	Enabled             any            `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	SettablePerMesh     *bool          `json:"settable_per_mesh,omitempty" yaml:"settable_per_mesh,omitempty"`
	SettablePerExtruder *bool          `json:"settable_per_extruder,omitempty" yaml:"settable_per_extruder,omitempty"`
	Options             map[string]any `json:"options,omitempty" yaml:"options,omitempty"`

	// Source names the document whose `overrides` block last touched this
	// setting. It is the document's own identity, not the provenance list
	// maintained by the merger.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
}

// DefinitionLink is one node in the inheritance chain: an identifier, the
// backing document's location, and the parent identifier it declares
// (empty for the root).
type DefinitionLink struct {
	Name     string `json:"name" yaml:"name"`
	File     string `json:"file" yaml:"file"`
	Inherits string `json:"inherits,omitempty" yaml:"inherits,omitempty"`
}

// EffectiveSetting is the merged, queryable result for one setting key:
// the union of all SettingMeta fields seen across the chain, collapsed so a
// field's value comes from the most specific layer that defines it, plus the
// ordered provenance of every contributing layer.
type EffectiveSetting struct {
	SettingMeta `yaml:",inline"`

	// EffectiveValue is the user's explicit customization from the
	// definition-changes layer, kept distinct from DefaultValue so callers
	// can tell "as-shipped" from "as-customized".
	EffectiveValue any `json:"effective_value,omitempty" yaml:"effective_value,omitempty"`

	// Sources lists every layer that contributed to this key, in
	// application order. Never empty for a present key; when the
	// definition-changes layer contributed, its marker is last.
	Sources []string `json:"sources" yaml:"sources"`
}

// Origin returns the most specific layer that contributed to the setting.
func (e *EffectiveSetting) Origin() string {
	if len(e.Sources) == 0 {
		return ""
	}
	return e.Sources[len(e.Sources)-1]
}

// ContainerStack is a machine instance's fixed set of references to other
// profile/definition documents. The numeric slot convention of the on-disk
// format is translated into named fields at the input boundary; nothing
// downstream reasons about slot numbers.
type ContainerStack struct {
	UserRef              string `json:"user,omitempty" yaml:"user,omitempty"`
	QualityChangesRef    string `json:"quality_changes,omitempty" yaml:"quality_changes,omitempty"`
	DefinitionChangesRef string `json:"definition_changes,omitempty" yaml:"definition_changes,omitempty"`
	BaseDefinitionRef    string `json:"base_definition,omitempty" yaml:"base_definition,omitempty"`

	// Raw preserves the original slot map for round-trip fidelity.
	Raw map[string]string `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Container stack slot labels, by Cura convention. A missing slot means
// "no customization at that layer" and is never an error.
const (
	SlotUser              = "0"
	SlotQualityChanges    = "1"
	SlotDefinitionChanges = "6"
	SlotBaseDefinition    = "7"
)

// NewContainerStack translates the numeric-slot section of a machine
// instance document into a ContainerStack.
func NewContainerStack(containers map[string]string) *ContainerStack {
	stack := &ContainerStack{Raw: containers}
	if containers == nil {
		return stack
	}
	stack.UserRef = containers[SlotUser]
	stack.QualityChangesRef = containers[SlotQualityChanges]
	stack.DefinitionChangesRef = containers[SlotDefinitionChanges]
	stack.BaseDefinitionRef = containers[SlotBaseDefinition]
	return stack
}

// Profile is a named bag of setting overrides plus descriptive metadata.
// Custom profiles may be split across several files (one global, one per
// extruder) grouped by declared name.
type Profile struct {
	Name     string            `json:"name" yaml:"name"`
	Files    []string          `json:"files" yaml:"files"`
	Settings map[string]string `json:"settings" yaml:"settings"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// QualityProfile is one built-in quality tier shipped with the install.
type QualityProfile struct {
	Name     string            `json:"name" yaml:"name"`
	File     string            `json:"file" yaml:"file"`
	Settings map[string]string `json:"settings" yaml:"settings"`
}

// PluginInfo describes one installed package from the plugins manifest.
type PluginInfo struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Author      string `json:"author,omitempty" yaml:"author,omitempty"`
	Website     string `json:"website,omitempty" yaml:"website,omitempty"`
}
