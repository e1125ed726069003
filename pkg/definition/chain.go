package definition

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	errUtils "github.com/curaprof/curaprof/errors"
	log "github.com/curaprof/curaprof/pkg/logger"
	"github.com/curaprof/curaprof/pkg/parser"
	"github.com/curaprof/curaprof/pkg/schema"
)

// Ext is the file extension of hierarchical definition documents.
const Ext = ".def.json"

// File returns the backing file path for a definition identifier.
func File(definitionsDir, id string) string {
	return filepath.Join(definitionsDir, id+Ext)
}

// ResolveChain follows a definition's declared `inherits` reference
// repeatedly, starting from startID, and returns the chain in traversal
// order (starting document first, ultimate ancestor last).
//
// A missing or unreadable backing document ends the chain at that point; a
// shorter chain is a valid result, not an error. A chain that revisits an
// identifier is cyclic and returns ErrCyclicInheritance along with the links
// resolved before the cycle closed.
func ResolveChain(definitionsDir, startID string) ([]schema.DefinitionLink, error) {
	var chain []schema.DefinitionLink
	visited := make(map[string]bool)

	current := startID
	for current != "" {
		if visited[current] {
			return chain, errors.Wrapf(errUtils.ErrCyclicInheritance, "definition %q revisited", current)
		}
		visited[current] = true

		path := File(definitionsDir, current)
		doc := parser.ParseDefinitionFile(path)
		if doc.Failed() {
			log.Warn("inheritance chain truncated", "definition", current, "file", path, "reason", doc.Error)
			break
		}

		link := schema.DefinitionLink{Name: current, File: path}
		if inherits, ok := doc.Tree["inherits"].(string); ok {
			link.Inherits = inherits
		}
		chain = append(chain, link)
		current = link.Inherits
	}

	return chain, nil
}
