// Package parser implements the structured document reader: pure
// syntax-to-structure translation of Cura's two on-disk formats, with no
// merge logic and no interpretation of any key.
//
// Failures never propagate past this boundary as errors: a Document whose
// Error field is set marks an absent, unreadable or malformed file, and
// callers check the marker to report per-file provenance of failures without
// aborting a merge.
package parser

import (
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/ini.v1"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is a parsed on-disk document annotated with its source path.
// Exactly one of Sections (flat key/section format) or Tree (hierarchical
// format) is populated, depending on which parser produced it.
type Document struct {
	Path     string
	Filename string

	// Error is the embedded failure marker; empty means the parse succeeded.
	Error string

	// Sections maps section name to key/value pairs (flat format).
	Sections map[string]map[string]string

	// Tree holds the decoded hierarchical document (tree format).
	Tree map[string]any
}

// Failed reports whether the document carries a failure marker.
func (d *Document) Failed() bool {
	return d.Error != ""
}

// Section returns the named section's key/value pairs, or nil when the
// section (or the whole document) is absent.
func (d *Document) Section(name string) map[string]string {
	if d.Sections == nil {
		return nil
	}
	return d.Sections[name]
}

// SectionValue returns one key from one section, or "" when absent.
func (d *Document) SectionValue(section, key string) string {
	return d.Section(section)[key]
}

// Name returns the document's declared profile name from the `general`
// section, falling back to the file stem.
func (d *Document) Name() string {
	if name := d.SectionValue("general", "name"); name != "" {
		return name
	}
	base := d.Filename
	return base[:len(base)-len(filepath.Ext(base))]
}

// AsMap renders a flat-format document the way it appears in the output:
// source annotations first, then one entry per section.
func (d *Document) AsMap() map[string]any {
	result := map[string]any{
		"_filepath": d.Path,
		"_filename": d.Filename,
	}
	if d.Error != "" {
		result["_error"] = d.Error
	}
	for name, section := range d.Sections {
		result[name] = section
	}
	return result
}

// newDocument builds the path-annotated shell every parse starts from.
func newDocument(path string) *Document {
	return &Document{
		Path:     path,
		Filename: filepath.Base(path),
	}
}

// ParseConfigFile parses a Cura .cfg or .inst.cfg file (INI-style format).
func ParseConfigFile(path string) *Document {
	doc := newDocument(path)

	if _, err := os.Stat(path); err != nil {
		doc.Error = "file not found"
		return doc
	}

	// Cura writes configparser output: no interpolation, `;` is data (it
	// delimits lists and G-code), multi-line values continue by indentation.
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:        true,
		AllowPythonMultilineValues: true,
	}, path)
	if err != nil {
		doc.Error = err.Error()
		return doc
	}

	doc.Sections = make(map[string]map[string]string)
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection && len(section.Keys()) == 0 {
			continue
		}
		doc.Sections[section.Name()] = section.KeysHash()
	}
	return doc
}

// ParseDefinitionFile parses a Cura .def.json definition file.
func ParseDefinitionFile(path string) *Document {
	doc := newDocument(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			doc.Error = "file not found"
		} else {
			doc.Error = err.Error()
		}
		return doc
	}

	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		doc.Error = err.Error()
		return doc
	}
	doc.Tree = tree
	return doc
}
