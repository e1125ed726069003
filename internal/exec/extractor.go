// Package exec implements the curaprof commands: discovery, resolution and
// extraction wired together behind thin cobra wrappers.
package exec

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	errUtils "github.com/curaprof/curaprof/errors"
	"github.com/curaprof/curaprof/pkg/definition"
	"github.com/curaprof/curaprof/pkg/discovery"
	"github.com/curaprof/curaprof/pkg/format"
	log "github.com/curaprof/curaprof/pkg/logger"
	"github.com/curaprof/curaprof/pkg/merge"
	"github.com/curaprof/curaprof/pkg/parser"
	"github.com/curaprof/curaprof/pkg/profile"
	"github.com/curaprof/curaprof/pkg/schema"
	"github.com/curaprof/curaprof/pkg/version"
)

// ExtractOptions selects which sections of the output document to produce.
type ExtractOptions struct {
	Preferences    bool
	Machine        bool
	GCode          bool
	Extruders      bool
	QualityBuiltin bool
	QualityCustom  bool
	Plugins        bool
}

// DefaultExtractOptions enables every section.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		Preferences:    true,
		Machine:        true,
		GCode:          true,
		Extruders:      true,
		QualityBuiltin: true,
		QualityCustom:  true,
		Plugins:        true,
	}
}

// Extractor resolves one machine's configuration against one install root
// and one user-data root. Extractors hold no mutable state across requests;
// every extraction recomputes from the files.
type Extractor struct {
	cfg  schema.Configuration
	disc *discovery.Discovery
}

// NewExtractor builds an Extractor from the tool configuration,
// auto-detecting any root the configuration leaves empty.
func NewExtractor(cfg schema.Configuration) (*Extractor, error) {
	installPath := cfg.InstallPath
	if installPath == "" {
		installPath = discovery.FindInstallPath()
	}
	if installPath == "" {
		return nil, errors.WithHint(errUtils.ErrMissingInstallPath, "set install_path in curaprof.yaml or pass --install-path")
	}

	dataPath := cfg.DataPath
	if dataPath == "" {
		dataPath = discovery.FindDataPath()
	}
	if dataPath == "" {
		return nil, errors.WithHint(errUtils.ErrMissingDataPath, "set data_path in curaprof.yaml or pass --data-path")
	}

	return &Extractor{
		cfg: cfg,
		disc: &discovery.Discovery{
			InstallPath:   installPath,
			DataPath:      dataPath,
			MaterialLimit: cfg.Settings.MaterialLimit,
		},
	}, nil
}

// Discovery exposes the extractor's directory scanner.
func (ex *Extractor) Discovery() *discovery.Discovery {
	return ex.disc
}

// ValidateAndWarn reports layout problems once, up front. Problems do not
// stop partial discovery; they are fatal only to the sections that need the
// missing structure.
func (ex *Extractor) ValidateAndWarn() {
	for _, problem := range ex.disc.Validate() {
		log.Warn("layout problem", "error", problem)
	}
}

// ExtractAll extracts the requested sections for a machine. Every section
// degrades independently: a failure in one never prevents another from
// being produced.
func (ex *Extractor) ExtractAll(machineName string, opts ExtractOptions) *schema.ExtractOutput {
	log.Info("starting extraction", "machine", machineName)

	out := &schema.ExtractOutput{
		Metadata: schema.ExtractMetadata{
			CuraVersion:      discovery.VersionFromPath(ex.disc.InstallPath),
			ExtractedAt:      time.Now().Format(time.RFC3339),
			Machine:          machineName,
			ExtractorVersion: version.Version,
		},
	}

	if opts.Preferences {
		log.Debug("extracting preferences")
		out.Preferences = profile.LoadPreferences(ex.disc.DataPath).AsMap()
	}
	if opts.Machine {
		log.Debug("extracting machine settings")
		out.Machine = ex.extractMachine(machineName)
	}
	if opts.GCode {
		log.Debug("extracting G-code")
		out.GCode = ex.extractGCode(machineName)
	}
	if opts.Extruders {
		log.Debug("extracting extruders")
		out.Extruders = profile.LoadExtruders(ex.disc.DataPath, machineName)
	}
	if opts.QualityBuiltin {
		log.Debug("extracting built-in quality profiles")
		out.QualityBuiltin = profile.LoadBuiltinQualities(ex.disc.ResourcesDir())
	}
	if opts.QualityCustom {
		log.Debug("extracting custom quality profiles")
		out.QualityCustom = profile.LoadCustomQualities(ex.disc.QualityChangesDir())
	}
	if opts.Plugins {
		log.Debug("extracting plugins")
		out.Plugins = profile.LoadPlugins(ex.disc.DataPath)
	}

	out.KeySettings = format.BuildKeySettings(out.Machine)
	out.Summary = format.BuildSummary(out)

	log.Info("extraction complete", "machine", machineName)
	return out
}

// extractMachine resolves the full machine section: instance document,
// container stack, inheritance chain, effective settings with provenance,
// and the raw definition-changes block. Failures are recorded on the
// section, never raised; a cyclic chain is fatal for this machine only.
func (ex *Extractor) extractMachine(name string) *schema.MachineSection {
	section := &schema.MachineSection{
		InheritanceChain:  []schema.DefinitionLink{},
		EffectiveSettings: map[string]*schema.EffectiveSetting{},
	}

	file := ex.disc.MachineFile(name)
	if file == "" {
		section.Error = errors.Wrapf(errUtils.ErrMachineNotFound, "machine %q", name).Error()
		return section
	}

	instance := parser.ParseConfigFile(file)
	section.Instance = instance.AsMap()

	stack := schema.NewContainerStack(instance.Section("containers"))
	section.ContainerStack = stack

	var overrideValues map[string]string
	if stack.DefinitionChangesRef != "" {
		if doc := profile.FindDefinitionChanges(ex.disc.DataPath, stack.DefinitionChangesRef); doc != nil {
			section.DefinitionChanges = doc.AsMap()
			overrideValues = doc.Section("values")
		}
	}

	baseID, err := ex.baseDefinition(name, stack)
	if err != nil {
		section.Error = err.Error()
		return section
	}

	chain, err := definition.ResolveChain(ex.disc.DefinitionsDir(), baseID)
	if chain != nil {
		section.InheritanceChain = chain
	}
	if err != nil {
		section.Error = err.Error()
		return section
	}
	if missing := truncatedAt(baseID, chain); missing != "" {
		section.Truncated = fmt.Sprintf("definition %q could not be read; layers above it are missing", missing)
	}

	effective, err := merge.MergeChain(chain, loadChainLayer)
	if err != nil {
		section.Error = err.Error()
		return section
	}
	merge.ApplyDefinitionChanges(effective, overrideValues)
	section.EffectiveSettings = effective

	return section
}

// truncatedAt reports the definition identifier a resolved chain could not
// read: the seed itself when nothing resolved, otherwise the last link's
// declared parent. Empty means the chain is complete.
func truncatedAt(seed string, chain []schema.DefinitionLink) string {
	if len(chain) == 0 {
		return seed
	}
	return chain[len(chain)-1].Inherits
}

// baseDefinition picks the identifier that seeds the inheritance chain: the
// container stack's base-definition slot, or the configured fallback when
// the slot is absent. An empty fallback turns the absence into a hard error
// for this machine.
func (ex *Extractor) baseDefinition(machineName string, stack *schema.ContainerStack) (string, error) {
	if stack.BaseDefinitionRef != "" {
		return stack.BaseDefinitionRef, nil
	}
	fallback := ex.cfg.Settings.FallbackDefinition
	if fallback == "" {
		return "", errors.Wrapf(errUtils.ErrNoBaseDefinition, "machine %q", machineName)
	}
	log.Warn("container stack names no base definition, using fallback",
		"machine", machineName, "fallback", fallback)
	return fallback, nil
}

// loadChainLayer flattens one chain link's backing document for the merger.
func loadChainLayer(link schema.DefinitionLink) (map[string]*schema.SettingMeta, error) {
	doc := parser.ParseDefinitionFile(link.File)
	if doc.Failed() {
		return nil, errors.Newf("parsing %s: %s", link.File, doc.Error)
	}
	return definition.FlattenSettings(doc), nil
}

// extractGCode finds the machine's start/end G-code: the user's
// definition-changes document wins; otherwise the machine's own inheritance
// chain is walked from the most specific layer down.
func (ex *Extractor) extractGCode(machineName string) *schema.GCodeSection {
	result := &schema.GCodeSection{Source: "unknown"}

	file := ex.disc.MachineFile(machineName)
	if file == "" {
		return result
	}
	instance := parser.ParseConfigFile(file)
	stack := schema.NewContainerStack(instance.Section("containers"))

	if stack.DefinitionChangesRef != "" {
		if doc := profile.FindDefinitionChanges(ex.disc.DataPath, stack.DefinitionChangesRef); doc != nil {
			values := doc.Section("values")
			if v, ok := values["machine_start_gcode"]; ok {
				result.StartGCode = v
				result.Source = doc.Path
			}
			if v, ok := values["machine_end_gcode"]; ok {
				result.EndGCode = v
				result.Source = doc.Path
			}
		}
	}
	if result.StartGCode != "" {
		return result
	}

	baseID, err := ex.baseDefinition(machineName, stack)
	if err != nil {
		return result
	}
	chain, err := definition.ResolveChain(ex.disc.DefinitionsDir(), baseID)
	if err != nil {
		return result
	}

	for _, link := range chain {
		doc := parser.ParseDefinitionFile(link.File)
		if doc.Failed() {
			continue
		}
		overrides, _ := doc.Tree["overrides"].(map[string]any)
		if start := overrideDefaultString(overrides, "machine_start_gcode"); start != "" {
			result.StartGCode = start
			result.Source = link.File
		}
		if end := overrideDefaultString(overrides, "machine_end_gcode"); end != "" {
			result.EndGCode = end
		}
		if result.StartGCode != "" {
			break
		}
	}
	return result
}

func overrideDefaultString(overrides map[string]any, key string) string {
	node, ok := overrides[key].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := node["default_value"].(string)
	return s
}
