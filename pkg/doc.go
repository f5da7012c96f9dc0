// Package pkg provides the core libraries for cargodeps, a terminal browser
// for the direct dependencies of a Cargo project.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [cargo] - Graph providers (cargo metadata, saved metadata, Cargo.lock)
//  2. [deps] - Normalization into sorted dependency records
//  3. [browse] - Selection cursor and command legend
//  4. [errors] - Coded errors shared by every package
//  5. [observability] - Hooks for load and subprocess events
//
// # Architecture
//
// The typical data flow through cargodeps:
//
//	cargo metadata / Cargo.lock
//	         ↓
//	    [cargo] package (provider → deps.Graph)
//	         ↓
//	    [deps] package (root edges → []deps.Dependency)
//	         ↓
//	    [browse] package (cursor over the records)
//	         ↓
//	    terminal UI or list output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/cargodeps/pkg/browse"
//	    "github.com/matzehuels/cargodeps/pkg/cargo"
//	    "github.com/matzehuels/cargodeps/pkg/deps"
//	)
//
//	// 1. Load the direct dependencies
//	list, err := deps.Load(context.Background(), cargo.NewMetadataCommand(cargo.CommandOptions{}))
//
//	// 2. Browse them
//	s := browse.New(list)
//	s.Next()
//	d, ok := s.Selected()
//
// # Main Packages
//
// [cargo] - Providers that read the resolved graph. [cargo.MetadataCommand]
// runs cargo, [cargo.MetadataFile] reads saved JSON, and [cargo.Lockfile]
// works offline from Cargo.toml and Cargo.lock without feature data.
//
// [deps] - The normalizer. Each root edge is matched to the resolved package
// satisfying its requirement, compared with the newest version in the graph,
// and split into enabled and disabled features. Records render to styled
// [deps.Line] values independent of any terminal library.
//
// [browse] - Navigation state with wraparound next and previous.
package pkg
