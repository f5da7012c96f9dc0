package deps

import (
	"context"
	"slices"
)

// Provider supplies the resolved dependency graph of a project.
type Provider interface {
	// Source names where the graph comes from (e.g., "cargo metadata").
	Source() string
	// Graph resolves and returns the full graph. It is called once.
	Graph(ctx context.Context) (*Graph, error)
}

// Graph is the resolved dependency graph as reported by a [Provider].
type Graph struct {
	Root     *Package  // Root package; nil when the project has none
	Packages []Package // Every resolved package, in provider order
	Linked   []string  // IDs of packages the resolver linked to Root (optional)
}

// Package is one resolved package with a concrete version.
type Package struct {
	ID           string   // Provider-unique identifier
	Name         string   // Package name
	Version      string   // Concrete resolved version
	Features     []string // Declared feature names, any order
	Dependencies []Edge   // Declared dependency edges
}

// EdgeKind classifies a dependency edge.
type EdgeKind string

const (
	EdgeNormal EdgeKind = "normal"
	EdgeDev    EdgeKind = "dev"
	EdgeBuild  EdgeKind = "build"
)

// Edge is a dependency declared by a package.
type Edge struct {
	Name                string   // Name of the depended-upon package
	Rename              string   // Local alias, if the edge renames the package
	Req                 string   // Version requirement (Cargo syntax)
	Kind                EdgeKind // Declared classification; empty means normal
	Target              string   // Platform restriction (e.g., "cfg(windows)")
	Features            []string // Features requested by this edge
	UsesDefaultFeatures bool     // Whether the package's default feature is requested
	Optional            bool     // Whether the edge is behind a feature of the root
}

// requests reports whether the edge asks for feature f.
func (e Edge) requests(f string) bool {
	if f == "default" && e.UsesDefaultFeatures {
		return true
	}
	return slices.Contains(e.Features, f)
}
