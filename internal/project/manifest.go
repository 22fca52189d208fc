// Package project loads the fen.toml manifest describing a compilation:
// where the sources live and how the resolver driver should behave.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the driver looks for in a project root.
const ManifestName = "fen.toml"

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
	// ErrManifestNotFound indicates no fen.toml upwards of the start dir.
	ErrManifestNotFound = errors.New("no fen.toml found")
)

// Manifest is a parsed fen.toml.
type Manifest struct {
	Package  PackageSection  `toml:"package"`
	Resolver ResolverSection `toml:"resolver"`
}

// PackageSection names the project and its source root.
type PackageSection struct {
	Name string `toml:"name"`
	Root string `toml:"root"`
}

// ResolverSection tunes the resolver driver.
type ResolverSection struct {
	MaxDiagnostics int  `toml:"max-diagnostics"`
	Dedup          bool `toml:"dedup"`
	Jobs           int  `toml:"jobs"`
}

// DefaultMaxDiagnostics bounds the per-unit diagnostic bag when the
// manifest does not say otherwise.
const DefaultMaxDiagnostics = 100

// LoadManifest parses a fen.toml and applies defaults.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if m.Package.Name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if m.Package.Root == "" {
		m.Package.Root = "."
	}
	if m.Resolver.MaxDiagnostics <= 0 {
		m.Resolver.MaxDiagnostics = DefaultMaxDiagnostics
	}
	return m, nil
}

// FindManifest walks upward from dir until it finds a fen.toml.
func FindManifest(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(abs, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", ErrManifestNotFound
		}
		abs = parent
	}
}
