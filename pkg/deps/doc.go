// Package deps turns a resolved Cargo dependency graph into the records
// shown by cargodeps.
//
// # Overview
//
// A [Provider] supplies a [Graph]: the root package, every resolved
// package with its concrete version and declared features, and the
// dependency edges declared by the root. [Load] normalizes the root's
// direct edges into a name-sorted slice of [Dependency]:
//
//	provider := cargo.NewMetadataCommand(cargo.CommandOptions{})
//	list, err := deps.Load(ctx, provider)
//	if errors.Is(err, errors.ErrCodeMissingRoot) {
//	    // virtual workspace
//	}
//
// # Records
//
// Each [Dependency] carries the locked version (the package that satisfied
// the edge's requirement), the latest version seen anywhere in the graph,
// its [Kind], and the partition of the resolved package's features into
// enabled and disabled sets.
//
// # Presentation
//
// Records render to [Line] values made of [Span] text tagged with a
// semantic [Role]. Mapping roles to terminal colors is left to the caller,
// so this package never depends on a rendering library.
package deps
