// Package profile aggregates quality profiles, extruder documents and the
// installed-plugins manifest. Deliberately simpler than the chain merger:
// no provenance tracking, no default-vs-override distinction — later-read
// files win on key collision.
package profile

import (
	"os"
	"path/filepath"
	"sort"

	"dario.cat/mergo"
	"github.com/bmatcuk/doublestar/v4"

	log "github.com/curaprof/curaprof/pkg/logger"
	"github.com/curaprof/curaprof/pkg/parser"
	"github.com/curaprof/curaprof/pkg/schema"
)

// builtinQualityPattern matches the global built-in quality documents under
// a resources tree, whichever vendor subtree they live in.
const builtinQualityPattern = "quality/**/base_global_*.inst.cfg"

// LoadBuiltinQualities reads the built-in quality profiles shipped with the
// install, keyed by quality tier.
func LoadBuiltinQualities(resourcesDir string) map[string]schema.QualityProfile {
	result := make(map[string]schema.QualityProfile)

	files, err := doublestar.FilepathGlob(filepath.Join(resourcesDir, builtinQualityPattern))
	if err != nil {
		log.Warn("built-in quality scan failed", "dir", resourcesDir, "error", err)
		return result
	}
	sort.Strings(files)

	for _, file := range files {
		doc := parser.ParseConfigFile(file)
		if doc.Failed() {
			log.Warn("skipping unreadable quality profile", "file", file, "reason", doc.Error)
			continue
		}
		qualityType := doc.SectionValue("metadata", "quality_type")
		if qualityType == "" {
			qualityType = "unknown"
		}
		result[qualityType] = schema.QualityProfile{
			Name:     doc.Name(),
			File:     file,
			Settings: doc.Section("values"),
		}
	}
	return result
}

// LoadCustomQualities reads the user's quality-changes profiles, grouping
// same-named files (one global plus per-extruder files) into one profile.
// Files are processed in lexical order so collisions resolve
// deterministically: the later file's keys win, metadata blocks are unioned.
func LoadCustomQualities(qualityChangesDir string) map[string]*schema.Profile {
	result := make(map[string]*schema.Profile)

	files := listConfigFiles(qualityChangesDir, "*.inst.cfg")
	for _, file := range files {
		doc := parser.ParseConfigFile(file)
		if doc.Failed() {
			log.Warn("skipping unreadable custom profile", "file", file, "reason", doc.Error)
			continue
		}

		name := doc.Name()
		group, ok := result[name]
		if !ok {
			group = &schema.Profile{
				Name:     name,
				Files:    []string{},
				Settings: make(map[string]string),
			}
			result[name] = group
		}

		group.Files = append(group.Files, file)
		for key, value := range doc.Section("values") {
			group.Settings[key] = value
		}
		if metadata := doc.Section("metadata"); metadata != nil {
			if group.Metadata == nil {
				group.Metadata = make(map[string]string)
			}
			if err := mergo.Merge(&group.Metadata, metadata, mergo.WithOverride); err != nil {
				log.Warn("profile metadata union failed", "profile", name, "file", file, "error", err)
			}
		}
	}
	return result
}

// LoadExtruders reads the extruder documents belonging to a machine, plus
// the definition-changes document each extruder's container stack names.
func LoadExtruders(dataPath, machineName string) map[string]any {
	result := make(map[string]any)

	extruderDir := filepath.Join(dataPath, "extruders")
	files := listConfigFiles(extruderDir, "*.extruder.cfg")
	for _, file := range files {
		doc := parser.ParseConfigFile(file)
		if doc.Failed() {
			log.Warn("skipping unreadable extruder", "file", file, "reason", doc.Error)
			continue
		}
		if doc.SectionValue("metadata", "machine") != machineName {
			continue
		}

		position := doc.SectionValue("metadata", "position")
		if position == "" {
			position = "0"
		}
		result["extruder_"+position] = doc.AsMap()

		stack := schema.NewContainerStack(doc.Section("containers"))
		if stack.DefinitionChangesRef == "" {
			continue
		}
		if settings := FindDefinitionChanges(dataPath, stack.DefinitionChangesRef); settings != nil {
			result["extruder_"+position+"_settings"] = settings.AsMap()
		}
	}
	return result
}

// FindDefinitionChanges locates the definition-changes document declaring
// the given profile name, or nil when no document matches. An unresolvable
// reference contributes nothing.
func FindDefinitionChanges(dataPath, name string) *parser.Document {
	dir := filepath.Join(dataPath, "definition_changes")
	for _, file := range listConfigFiles(dir, "*.inst.cfg") {
		doc := parser.ParseConfigFile(file)
		if doc.Failed() {
			continue
		}
		if doc.SectionValue("general", "name") == name {
			return doc
		}
	}
	log.Debug("definition-changes document not found", "name", name, "dir", dir)
	return nil
}

// LoadPlugins reads the installed-plugins manifest (packages.json).
func LoadPlugins(dataPath string) map[string]schema.PluginInfo {
	result := make(map[string]schema.PluginInfo)

	manifestPath := filepath.Join(dataPath, "packages.json")
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		log.Debug("plugins manifest not readable", "file", manifestPath, "error", err)
		return result
	}

	var manifest packagesManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		log.Warn("plugins manifest malformed", "file", manifestPath, "error", err)
		return result
	}

	for id, pkg := range manifest.Installed {
		info := pkg.PackageInfo
		name := info.DisplayName
		if name == "" {
			name = id
		}
		result[id] = schema.PluginInfo{
			Name:        name,
			Version:     info.PackageVersion,
			Description: info.Description,
			Author:      info.Author.DisplayName,
			Website:     info.Website,
		}
	}
	return result
}

// LoadPreferences reads the flat preferences document (cura.cfg).
func LoadPreferences(dataPath string) *parser.Document {
	return parser.ParseConfigFile(filepath.Join(dataPath, "cura.cfg"))
}

// listConfigFiles returns the matching files in lexical order; a missing
// directory yields an empty list.
func listConfigFiles(dir, pattern string) []string {
	files, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		log.Warn("profile scan failed", "dir", dir, "error", err)
		return nil
	}
	sort.Strings(files)
	return files
}
