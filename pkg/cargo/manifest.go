package cargo

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargodeps/pkg/deps"
	"github.com/matzehuels/cargodeps/pkg/errors"
)

type manifestFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"` // string, or {workspace = true}
	} `toml:"package"`
	Features          map[string][]string     `toml:"features"`
	Dependencies      map[string]any          `toml:"dependencies"`
	DevDependencies   map[string]any          `toml:"dev-dependencies"`
	BuildDependencies map[string]any          `toml:"build-dependencies"`
	Target            map[string]targetTables `toml:"target"`
	Workspace         *workspaceTables        `toml:"workspace"`
}

// workspaceTables holds what members may inherit from the workspace root.
type workspaceTables struct {
	Package struct {
		Version string `toml:"version"`
	} `toml:"package"`
	Dependencies map[string]any `toml:"dependencies"`
}

type targetTables struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}

// depTable is one dependency table with the kind and platform it declares.
type depTable struct {
	entries map[string]any
	kind    deps.EdgeKind
	target  string
}

// tables lists the dependency tables in declaration order: normal, dev and
// build, then the same three for each target in sorted order.
func (m *manifestFile) tables() []depTable {
	out := []depTable{
		{m.Dependencies, deps.EdgeNormal, ""},
		{m.DevDependencies, deps.EdgeDev, ""},
		{m.BuildDependencies, deps.EdgeBuild, ""},
	}
	for _, target := range slices.Sorted(maps.Keys(m.Target)) {
		tt := m.Target[target]
		out = append(out,
			depTable{tt.Dependencies, deps.EdgeNormal, target},
			depTable{tt.DevDependencies, deps.EdgeDev, target},
			depTable{tt.BuildDependencies, deps.EdgeBuild, target},
		)
	}
	return out
}

// inheritsWorkspace reports whether the package version or any dependency
// is declared with `workspace = true`.
func (m *manifestFile) inheritsWorkspace() bool {
	if isWorkspaceRef(m.Package.Version) {
		return true
	}
	for _, t := range m.tables() {
		for _, v := range t.entries {
			if isWorkspaceRef(v) {
				return true
			}
		}
	}
	return false
}

func isWorkspaceRef(v any) bool {
	t, ok := v.(map[string]any)
	if !ok {
		return false
	}
	inherit, _ := t["workspace"].(bool)
	return inherit
}

// readManifest decodes the Cargo.toml at path. A manifest without a
// [package] table (a virtual workspace) yields a nil package. Members that
// inherit from their workspace read it from the nearest ancestor manifest
// with a [workspace] table.
func readManifest(path string) (*deps.Package, error) {
	m, err := readManifestFile(path)
	if err != nil {
		return nil, err
	}
	if m.Package.Name == "" {
		return nil, nil
	}
	if m.Workspace == nil && m.inheritsWorkspace() {
		if m.Workspace, err = findWorkspace(filepath.Dir(path)); err != nil {
			return nil, err
		}
	}
	return m.pkg()
}

func readManifestFile(path string) (*manifestFile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read manifest %s", path)
	}
	return decodeManifest(data)
}

// findWorkspace walks up from the parent of dir to the workspace root.
func findWorkspace(dir string) (*workspaceTables, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "resolve %s", dir)
	}
	for d := filepath.Dir(abs); ; d = filepath.Dir(d) {
		path := filepath.Join(d, manifestName)
		if _, err := os.Stat(path); err == nil {
			m, err := readManifestFile(path)
			if err != nil {
				return nil, err
			}
			if m.Workspace != nil {
				return m.Workspace, nil
			}
		}
		if parent := filepath.Dir(d); parent == d {
			break
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "%s inherits from a workspace but no workspace root found above %s", manifestName, abs)
}

func decodeManifest(data []byte) (*manifestFile, error) {
	var m manifestFile
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode Cargo.toml")
	}
	return &m, nil
}

// parseManifest decodes a single Cargo.toml. Inheritance only sees the
// manifest's own [workspace] table.
func parseManifest(data []byte) (*deps.Package, error) {
	m, err := decodeManifest(data)
	if err != nil {
		return nil, err
	}
	if m.Package.Name == "" {
		return nil, nil
	}
	return m.pkg()
}

func (m *manifestFile) pkg() (*deps.Package, error) {
	var version string
	if m.Workspace != nil {
		version = m.Workspace.Package.Version
	}
	if v, ok := m.Package.Version.(string); ok {
		version = v
	}

	var edges []deps.Edge
	for _, t := range m.tables() {
		for _, key := range slices.Sorted(maps.Keys(t.entries)) {
			e, err := m.edge(key, t.entries[key], t.kind, t.target)
			if err != nil {
				return nil, err
			}
			edges = append(edges, e)
		}
	}

	return &deps.Package{
		Name:         m.Package.Name,
		Version:      version,
		Features:     slices.Sorted(maps.Keys(m.Features)),
		Dependencies: edges,
	}, nil
}

// edge converts one dependency entry. Entries are either a requirement
// string or a table; `workspace = true` tables inherit from
// [workspace.dependencies].
func (m *manifestFile) edge(key string, value any, kind deps.EdgeKind, target string) (deps.Edge, error) {
	e := deps.Edge{Name: key, Kind: kind, Target: target, UsesDefaultFeatures: true}

	switch v := value.(type) {
	case string:
		e.Req = v
		return e, nil
	case map[string]any:
		if isWorkspaceRef(v) && m.Workspace != nil {
			if base, ok := m.Workspace.Dependencies[key]; ok {
				if isWorkspaceRef(base) {
					return e, errors.New(errors.ErrCodeInvalidManifest, "workspace dependency %s: cannot inherit from the workspace", key)
				}
				inherited, err := m.edge(key, base, kind, target)
				if err != nil {
					return e, err
				}
				e = inherited
			}
		}
		if err := applyTable(&e, key, v); err != nil {
			return e, err
		}
		return e, nil
	default:
		return e, errors.New(errors.ErrCodeInvalidManifest, "dependency %s: unexpected value %v", key, value)
	}
}

func applyTable(e *deps.Edge, key string, t map[string]any) error {
	if v, ok := t["version"].(string); ok {
		e.Req = v
	}
	if pkg, ok := t["package"].(string); ok && pkg != "" {
		e.Name = pkg
		e.Rename = key
	}
	if opt, ok := t["optional"].(bool); ok {
		e.Optional = opt
	}
	for _, k := range []string{"default-features", "default_features"} {
		if def, ok := t[k].(bool); ok {
			e.UsesDefaultFeatures = def
		}
	}
	if raw, ok := t["features"]; ok {
		list, ok := raw.([]any)
		if !ok {
			return errors.New(errors.ErrCodeInvalidManifest, "dependency %s: features must be a list", key)
		}
		for _, f := range list {
			e.Features = append(e.Features, fmt.Sprint(f))
		}
	}
	return nil
}
