// Package driver orchestrates the declare and resolve phases over whole
// projects: it owns unit discovery, the shared registry, per-unit
// parallelism and the on-disk export cache. The resolver itself stays
// single-threaded per unit; the driver parallelizes across units only.
package driver

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"fen/internal/ast"
	"fen/internal/diag"
	"fen/internal/project"
	"fen/internal/resolved"
	"fen/internal/source"
)

// SourceExt is the file extension of fen compilation units.
const SourceExt = ".fen"

// Unit is one compilation unit handed to the driver: a parsed program and
// the module path it lives at. Digest fingerprints the unit's source; a
// zero digest opts the unit out of the export cache.
type Unit struct {
	Name    string
	Path    []source.StringID
	Program *ast.Program
	Digest  project.Digest
}

// Result is the outcome of resolving one unit.
type Result struct {
	Name      string
	Namespace resolved.NamespaceID
	Module    *resolved.Module
	Bag       *diag.Bag
}

// ListSourceFiles returns every *.fen file under dir, sorted for a
// deterministic unit order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// UnitPath derives a module path from a source file path relative to the
// project root: `data/maybe.fen` becomes `data.maybe` segment-wise.
func UnitPath(interner *source.Interner, root, path string) ([]source.StringID, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return nil, err
	}
	rel = strings.TrimSuffix(rel, SourceExt)
	parts := strings.Split(filepath.ToSlash(rel), "/")
	out := make([]source.StringID, 0, len(parts))
	for _, part := range parts {
		out = append(out, interner.Intern(part))
	}
	return out, nil
}
