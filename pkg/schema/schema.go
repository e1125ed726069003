// Package schema holds the typed configuration and the domain records shared
// by all curaprof packages.
package schema

// Configuration represents the schema for the `curaprof.yaml` CLI config.
type Configuration struct {
	// InstallPath is the Cura installation root (the directory containing
	// `share/cura/resources`). Empty means auto-detect.
	InstallPath string `yaml:"install_path" json:"install_path" mapstructure:"install_path"`

	// DataPath is the Cura user-data root (the versioned AppData directory
	// containing `cura.cfg`, `machine_instances`, etc.). Empty means
	// auto-detect.
	DataPath string `yaml:"data_path" json:"data_path" mapstructure:"data_path"`

	Logs     Logs     `yaml:"logs,omitempty" json:"logs,omitempty" mapstructure:"logs"`
	Settings Settings `yaml:"settings,omitempty" json:"settings,omitempty" mapstructure:"settings"`
}

// Logs configures the logging output.
type Logs struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty" mapstructure:"level"`
	File  string `yaml:"file,omitempty" json:"file,omitempty" mapstructure:"file"`
}

// Settings configures resolution policy.
type Settings struct {
	// FallbackDefinition seeds the inheritance chain when a machine's
	// container stack names no base definition. An empty value makes the
	// missing slot a hard error for that machine.
	FallbackDefinition string `yaml:"fallback_definition" json:"fallback_definition" mapstructure:"fallback_definition"`

	// MaterialLimit caps the number of material files listed by discovery.
	MaterialLimit int `yaml:"material_limit,omitempty" json:"material_limit,omitempty" mapstructure:"material_limit"`
}
