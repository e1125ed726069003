package discovery

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	goversion "github.com/hashicorp/go-version"

	"github.com/curaprof/curaprof/pkg/utils"
)

// ResourcesSubdir is the resources subtree every Cura install carries.
var ResourcesSubdir = filepath.Join("share", "cura", "resources")

var versionPattern = regexp.MustCompile(`(\d+\.\d+\.?\d*)`)

// FindInstallPath auto-detects the Cura installation directory by scanning
// the conventional program locations for a "cura" directory with the
// expected resources subtree. When several versions are installed, the
// newest wins. Returns "" when nothing is found.
func FindInstallPath() string {
	bases := []string{
		os.Getenv("PROGRAMFILES"),
		os.Getenv("PROGRAMFILES(X86)"),
		os.Getenv("LOCALAPPDATA"),
		"/opt",
	}
	bases = append(bases, xdg.DataDirs...)

	type candidate struct {
		version *goversion.Version
		path    string
	}
	var candidates []candidate

	for _, base := range bases {
		if base == "" || !utils.IsDirectory(base) {
			continue
		}
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() || !strings.Contains(strings.ToLower(entry.Name()), "cura") {
				continue
			}
			path := filepath.Join(base, entry.Name())
			if !utils.IsDirectory(filepath.Join(path, ResourcesSubdir)) {
				continue
			}
			candidates = append(candidates, candidate{
				version: versionFromName(entry.Name()),
				path:    path,
			})
		}
	}

	if len(candidates) == 0 {
		return ""
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].version.GreaterThan(candidates[j].version)
	})
	return candidates[0].path
}

// FindDataPath auto-detects the Cura user-data directory: the newest
// version directory under the platform's application-data root. Returns ""
// when nothing is found.
func FindDataPath() string {
	roots := []string{os.Getenv("APPDATA"), xdg.ConfigHome, xdg.DataHome}

	for _, root := range roots {
		if root == "" {
			continue
		}
		curaDir := filepath.Join(root, "cura")
		if !utils.IsDirectory(curaDir) {
			continue
		}

		entries, err := os.ReadDir(curaDir)
		if err != nil {
			continue
		}
		var versions []*goversion.Version
		byVersion := make(map[string]string)
		for _, entry := range entries {
			if !entry.IsDir() || !versionPattern.MatchString(entry.Name()) {
				continue
			}
			v, err := goversion.NewVersion(entry.Name())
			if err != nil {
				continue
			}
			versions = append(versions, v)
			byVersion[v.String()] = filepath.Join(curaDir, entry.Name())
		}
		if len(versions) == 0 {
			continue
		}
		sort.Sort(sort.Reverse(goversion.Collection(versions)))
		return byVersion[versions[0].String()]
	}
	return ""
}

// VersionFromPath extracts a dotted version from a path, e.g. the Cura
// release baked into the install directory name. Returns "unknown" when the
// path carries none.
func VersionFromPath(path string) string {
	if match := versionPattern.FindString(path); match != "" {
		return match
	}
	return "unknown"
}

// versionFromName parses a version out of a directory name, treating an
// unversioned name as 0.0.0 so it sorts last.
func versionFromName(name string) *goversion.Version {
	if match := versionPattern.FindString(name); match != "" {
		if v, err := goversion.NewVersion(match); err == nil {
			return v
		}
	}
	v, _ := goversion.NewVersion("0.0.0")
	return v
}
