// Package discovery locates Cura's on-disk layout: the install resources
// tree and the per-user data tree, and the machines, profiles and materials
// beneath them. All listings are sorted; the filesystem guarantees no
// ordering of its own.
package discovery

import (
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	errUtils "github.com/curaprof/curaprof/errors"
	log "github.com/curaprof/curaprof/pkg/logger"
	"github.com/curaprof/curaprof/pkg/parser"
	"github.com/curaprof/curaprof/pkg/utils"
)

const machineInstanceSuffix = ".global.cfg"

// Discovery scans one install root and one user-data root.
type Discovery struct {
	InstallPath   string
	DataPath      string
	MaterialLimit int
}

// ResourcesDir returns the install's resources subtree.
func (d *Discovery) ResourcesDir() string {
	return filepath.Join(d.InstallPath, ResourcesSubdir)
}

// DefinitionsDir returns the directory of hierarchical definition documents.
func (d *Discovery) DefinitionsDir() string {
	return filepath.Join(d.ResourcesDir(), "definitions")
}

// QualityChangesDir returns the user's quality-changes directory.
func (d *Discovery) QualityChangesDir() string {
	return filepath.Join(d.DataPath, "quality_changes")
}

// Validate checks that both roots exist and contain the expected
// substructure. All problems are reported at once; a partial layout still
// supports partial discovery.
func (d *Discovery) Validate() []error {
	var problems []error

	if !utils.IsDirectory(d.InstallPath) {
		problems = append(problems, errors.Wrapf(errUtils.ErrMissingInstallPath, "path %q", d.InstallPath))
	} else if !utils.IsDirectory(d.ResourcesDir()) {
		problems = append(problems, errors.Wrapf(errUtils.ErrInvalidInstallPath, "missing %q", d.ResourcesDir()))
	} else if !utils.FileExists(filepath.Join(d.DefinitionsDir(), "fdmprinter.def.json")) {
		problems = append(problems, errors.Wrapf(errUtils.ErrInvalidInstallPath, "missing fdmprinter.def.json in %q", d.DefinitionsDir()))
	}

	if !utils.IsDirectory(d.DataPath) {
		problems = append(problems, errors.Wrapf(errUtils.ErrMissingDataPath, "path %q", d.DataPath))
	} else if !utils.FileExists(filepath.Join(d.DataPath, "cura.cfg")) {
		problems = append(problems, errors.Wrapf(errUtils.ErrMissingDataPath, "missing cura.cfg in %q", d.DataPath))
	}

	return problems
}

// Machines lists the machine instance names under the data path, sorted.
// Names are URL-unescaped from the instance file stems.
func (d *Discovery) Machines() []string {
	files := d.glob(filepath.Join(d.DataPath, "machine_instances"), "*"+machineInstanceSuffix)
	names := lo.Map(files, func(file string, _ int) string {
		return machineNameFromFile(file)
	})
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// MachineFile returns the instance file backing a machine name, or "" when
// the machine is unknown.
func (d *Discovery) MachineFile(name string) string {
	files := d.glob(filepath.Join(d.DataPath, "machine_instances"), "*"+machineInstanceSuffix)
	for _, file := range files {
		if machineNameFromFile(file) == name {
			return file
		}
	}
	return ""
}

// CustomProfiles lists the distinct declared names of the user's
// quality-changes profiles, sorted.
func (d *Discovery) CustomProfiles() []string {
	files := d.glob(filepath.Join(d.DataPath, "quality_changes"), "*.inst.cfg")
	var names []string
	for _, file := range files {
		doc := parser.ParseConfigFile(file)
		if doc.Failed() {
			log.Debug("skipping unreadable profile during discovery", "file", file, "reason", doc.Error)
			continue
		}
		names = append(names, doc.Name())
	}
	names = lo.Uniq(names)
	sort.Strings(names)
	return names
}

// BuiltinQualities lists the names of the built-in global quality profiles,
// sorted.
func (d *Discovery) BuiltinQualities() []string {
	files := d.glob(d.ResourcesDir(), filepath.Join("quality", "**", "base_global_*.inst.cfg"))
	var names []string
	for _, file := range files {
		doc := parser.ParseConfigFile(file)
		if doc.Failed() {
			continue
		}
		names = append(names, doc.Name())
	}
	sort.Strings(names)
	return names
}

// Materials lists material names under the install, sorted and capped at
// MaterialLimit (material directories run large).
func (d *Discovery) Materials() []string {
	files := d.glob(filepath.Join(d.ResourcesDir(), "materials"), "*.xml.fdm_material")
	names := lo.Map(files, func(file string, _ int) string {
		stem := strings.TrimSuffix(filepath.Base(file), ".fdm_material")
		return strings.TrimSuffix(stem, ".xml")
	})
	sort.Strings(names)
	if d.MaterialLimit > 0 && len(names) > d.MaterialLimit {
		names = names[:d.MaterialLimit]
	}
	return names
}

// glob returns sorted matches; scan failures surface as an empty listing.
func (d *Discovery) glob(dir, pattern string) []string {
	files, err := doublestar.FilepathGlob(filepath.Join(dir, pattern))
	if err != nil {
		log.Warn("directory scan failed", "dir", dir, "pattern", pattern, "error", err)
		return nil
	}
	sort.Strings(files)
	return files
}

// machineNameFromFile decodes a machine name from its instance file name.
// Cura URL-encodes names on disk (spaces, plus signs).
func machineNameFromFile(file string) string {
	stem := strings.TrimSuffix(filepath.Base(file), machineInstanceSuffix)
	name, err := url.PathUnescape(stem)
	if err != nil {
		return stem
	}
	return name
}
