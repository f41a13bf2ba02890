package project

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"gloss/internal/ast"
)

// Manifest is the parsed gloss.toml. Only the sections the toolchain
// consults are modeled; unknown keys are a manifest error so typos do not
// silently fall back to defaults.
type Manifest struct {
	Package PackageSection `toml:"package"`
	Program ProgramSection `toml:"program"`

	// Path is where the manifest was loaded from. Not part of the TOML.
	Path string `toml:"-"`
}

// PackageSection is the [package] table.
type PackageSection struct {
	Name string `toml:"name"`
}

// ProgramSection is the [program] table. Kind and Strict feed the
// compilation configuration; CLI flags override both.
type ProgramSection struct {
	Kind   string `toml:"kind"`
	Strict bool   `toml:"strict"`
}

// LoadManifest reads and decodes a gloss.toml file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	meta, err := toml.Decode(string(data), &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if undec := meta.Undecoded(); len(undec) > 0 {
		keys := make([]string, 0, len(undec))
		for _, k := range undec {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown manifest keys: %s", path, strings.Join(keys, ", "))
	}
	if _, err := m.ProgramKind(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.Path = path
	return &m, nil
}

// LoadNearest finds and loads the manifest governing startDir. ok=false
// with a nil error means no manifest exists, which is not a failure:
// checks then run with defaults.
func LoadNearest(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindGlossToml(startDir)
	if err != nil || !ok {
		return nil, false, err
	}
	m, err := LoadManifest(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// ProgramKind resolves the [program] kind spelling. An empty kind means
// KindGeneric.
func (m *Manifest) ProgramKind() (ast.ProgramKind, error) {
	if m == nil || m.Program.Kind == "" {
		return ast.KindGeneric, nil
	}
	kind, ok := ast.ParseProgramKind(m.Program.Kind)
	if !ok {
		return ast.KindGeneric, fmt.Errorf(
			"unknown program kind %q (expected one of: %s)",
			m.Program.Kind, strings.Join(ast.ProgramKindNames(), ", "))
	}
	return kind, nil
}
