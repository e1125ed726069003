package schema

// ExtractMetadata is the metadata block of the output document.
type ExtractMetadata struct {
	CuraVersion      string `json:"cura_version" yaml:"cura_version"`
	ExtractedAt      string `json:"extracted_at" yaml:"extracted_at"`
	Machine          string `json:"machine" yaml:"machine"`
	ExtractorVersion string `json:"extractor_version" yaml:"extractor_version"`
}

// MachineSection holds the resolved machine configuration: the ordered
// inheritance chain, the flattened effective-settings map with provenance,
// and the raw definition-changes document.
type MachineSection struct {
	Instance          map[string]any               `json:"instance,omitempty" yaml:"instance,omitempty"`
	ContainerStack    *ContainerStack              `json:"container_stack,omitempty" yaml:"container_stack,omitempty"`
	InheritanceChain  []DefinitionLink             `json:"inheritance_chain" yaml:"inheritance_chain"`
	EffectiveSettings map[string]*EffectiveSetting `json:"effective_settings" yaml:"effective_settings"`
	DefinitionChanges map[string]any               `json:"definition_changes,omitempty" yaml:"definition_changes,omitempty"`

	// Truncated notes an inheritance chain that ended early because a
	// parent document was missing or unreadable. The resolved layers are
	// still merged; layers above the named definition are absent.
	Truncated string `json:"_truncated,omitempty" yaml:"_truncated,omitempty"`

	// Error carries a per-section failure without aborting other sections.
	Error string `json:"_error,omitempty" yaml:"_error,omitempty"`
}

// GCodeSection holds the machine's start/end G-code and where it came from.
type GCodeSection struct {
	StartGCode string `json:"start_gcode" yaml:"start_gcode"`
	EndGCode   string `json:"end_gcode" yaml:"end_gcode"`
	Source     string `json:"source" yaml:"source"`
}

// KeySetting is one entry of the quick-reference section.
type KeySetting struct {
	Value  any    `json:"value" yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

// ExtractOutput is the full output document. Field order is marshal order:
// the summary sections lead so the file is skimmable from the top.
type ExtractOutput struct {
	Summary        map[string]any            `json:"_summary,omitempty" yaml:"_summary,omitempty"`
	KeySettings    map[string]KeySetting     `json:"_key_settings,omitempty" yaml:"_key_settings,omitempty"`
	Metadata       ExtractMetadata           `json:"metadata" yaml:"metadata"`
	Preferences    map[string]any            `json:"preferences,omitempty" yaml:"preferences,omitempty"`
	Machine        *MachineSection           `json:"machine,omitempty" yaml:"machine,omitempty"`
	GCode          *GCodeSection             `json:"gcode,omitempty" yaml:"gcode,omitempty"`
	Extruders      map[string]any            `json:"extruders,omitempty" yaml:"extruders,omitempty"`
	QualityBuiltin map[string]QualityProfile `json:"quality_builtin,omitempty" yaml:"quality_builtin,omitempty"`
	QualityCustom  map[string]*Profile       `json:"quality_custom,omitempty" yaml:"quality_custom,omitempty"`
	Plugins        map[string]PluginInfo     `json:"plugins,omitempty" yaml:"plugins,omitempty"`
}
