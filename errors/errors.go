// Package errors defines the sentinel errors shared across curaprof
// packages, plus helpers for printing errors on the CLI surface.
package errors

import "github.com/cockroachdb/errors"

var (
	// ErrMissingInstallPath indicates that no Cura installation could be
	// located and none was configured.
	ErrMissingInstallPath = errors.New("cura install path not found")

	// ErrMissingDataPath indicates that no Cura user-data (AppData)
	// directory could be located and none was configured.
	ErrMissingDataPath = errors.New("cura data path not found")

	// ErrInvalidInstallPath indicates the configured install path exists but
	// lacks the expected resources subtree.
	ErrInvalidInstallPath = errors.New("install path missing cura resources")

	// ErrMachineNotFound indicates the requested machine instance does not
	// exist under the data path.
	ErrMachineNotFound = errors.New("machine not found")

	// ErrCyclicInheritance indicates a definition inheritance chain loops
	// back on itself. Fatal for the affected machine only.
	ErrCyclicInheritance = errors.New("cyclic inheritance detected")

	// ErrNoBaseDefinition indicates the machine's container stack names no
	// base definition and no fallback is configured.
	ErrNoBaseDefinition = errors.New("container stack names no base definition")

	// ErrUnknownFormat indicates an unsupported output format was requested.
	ErrUnknownFormat = errors.New("unknown output format")
)
