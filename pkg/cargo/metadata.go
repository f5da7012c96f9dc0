package cargo

import (
	"encoding/json"
	"path/filepath"
	"slices"

	"github.com/matzehuels/cargodeps/pkg/deps"
	"github.com/matzehuels/cargodeps/pkg/errors"
)

// formatVersion is the `cargo metadata` output format this package reads.
const formatVersion = 1

type metadata struct {
	Packages      []metaPackage `json:"packages"`
	Resolve       *metaResolve  `json:"resolve"`
	WorkspaceRoot string        `json:"workspace_root"`
	Version       int           `json:"version"`
}

type metaPackage struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Version      string              `json:"version"`
	ManifestPath string              `json:"manifest_path"`
	Dependencies []metaDependency    `json:"dependencies"`
	Features     map[string][]string `json:"features"`
}

type metaDependency struct {
	Name                string   `json:"name"`
	Req                 string   `json:"req"`
	Kind                string   `json:"kind"`   // null for normal dependencies
	Target              string   `json:"target"` // null when unrestricted
	Rename              string   `json:"rename"`
	Optional            bool     `json:"optional"`
	UsesDefaultFeatures bool     `json:"uses_default_features"`
	Features            []string `json:"features"`
}

type metaResolve struct {
	Nodes []metaNode `json:"nodes"`
	Root  string     `json:"root"`
}

type metaNode struct {
	ID           string   `json:"id"`
	Dependencies []string `json:"dependencies"`
}

// ParseMetadata decodes `cargo metadata --format-version 1` output.
func ParseMetadata(data []byte) (*deps.Graph, error) {
	var m metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMetadata, err, "decode cargo metadata")
	}
	if m.Version != 0 && m.Version != formatVersion {
		return nil, errors.New(errors.ErrCodeInvalidMetadata, "unsupported cargo metadata format version %d", m.Version)
	}
	return m.graph(), nil
}

func (m *metadata) graph() *deps.Graph {
	g := &deps.Graph{Packages: make([]deps.Package, len(m.Packages))}
	for i, p := range m.Packages {
		g.Packages[i] = p.toPackage()
	}

	rootID := m.rootID()
	if rootID == "" {
		return g
	}
	for i := range g.Packages {
		if g.Packages[i].ID == rootID {
			g.Root = &g.Packages[i]
			break
		}
	}
	if m.Resolve != nil {
		for _, n := range m.Resolve.Nodes {
			if n.ID == rootID {
				g.Linked = slices.Clone(n.Dependencies)
				break
			}
		}
	}
	return g
}

// rootID is resolve.root when present, otherwise the package whose manifest
// sits at the workspace root.
func (m *metadata) rootID() string {
	if m.Resolve != nil && m.Resolve.Root != "" {
		return m.Resolve.Root
	}
	if m.WorkspaceRoot == "" {
		return ""
	}
	want := filepath.Join(m.WorkspaceRoot, "Cargo.toml")
	for _, p := range m.Packages {
		if p.ManifestPath == want {
			return p.ID
		}
	}
	return ""
}

func (p metaPackage) toPackage() deps.Package {
	features := make([]string, 0, len(p.Features))
	for f := range p.Features {
		features = append(features, f)
	}
	slices.Sort(features)

	edges := make([]deps.Edge, len(p.Dependencies))
	for i, d := range p.Dependencies {
		edges[i] = deps.Edge{
			Name:                d.Name,
			Rename:              d.Rename,
			Req:                 d.Req,
			Kind:                edgeKind(d.Kind),
			Target:              d.Target,
			Features:            d.Features,
			UsesDefaultFeatures: d.UsesDefaultFeatures,
			Optional:            d.Optional,
		}
	}

	return deps.Package{
		ID:           p.ID,
		Name:         p.Name,
		Version:      p.Version,
		Features:     features,
		Dependencies: edges,
	}
}

func edgeKind(kind string) deps.EdgeKind {
	if kind == "" {
		return deps.EdgeNormal
	}
	return deps.EdgeKind(kind)
}
