package deps

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/cargodeps/pkg/errors"
	"github.com/matzehuels/cargodeps/pkg/observability"
)

// Load queries p once and normalizes the root package's direct
// dependencies. See [Normalize] for the failure modes.
func Load(ctx context.Context, p Provider) ([]Dependency, error) {
	hooks := observability.Loader()
	source := p.Source()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	list, err := load(ctx, p)

	hooks.OnLoadComplete(ctx, source, len(list), time.Since(start), err)
	return list, err
}

func load(ctx context.Context, p Provider) ([]Dependency, error) {
	g, err := p.Graph(ctx)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load dependency graph from %s", p.Source())
	}
	return Normalize(g)
}

// Normalize builds one [Dependency] per direct edge of g's root, sorted by
// name. Records sharing a name keep the root's declaration order.
//
// It fails with [errors.ErrCodeMissingRoot] when g has no root and with
// [errors.ErrCodeUnresolved] when an edge has no satisfying package.
func Normalize(g *Graph) ([]Dependency, error) {
	if g == nil || g.Root == nil {
		return nil, errors.New(errors.ErrCodeMissingRoot, "no root package found")
	}

	ix := newIndex(g)
	out := make([]Dependency, 0, len(g.Root.Dependencies))
	for _, e := range g.Root.Dependencies {
		pkg, err := ix.match(e)
		if err != nil {
			return nil, err
		}

		all := sortedUnique(pkg.Features)
		enabled := make([]string, 0, len(e.Features))
		disabled := make([]string, 0, len(all))
		for _, f := range all {
			if e.requests(f) {
				enabled = append(enabled, f)
			} else {
				disabled = append(disabled, f)
			}
		}

		out = append(out, Dependency{
			Name:             e.Name,
			Version:          ix.latest(e.Name),
			LockedVersion:    pkg.Version,
			Kind:             kindOf(e),
			Req:              e.Req,
			Rename:           e.Rename,
			Optional:         e.Optional,
			AllFeatures:      all,
			EnabledFeatures:  enabled,
			DisabledFeatures: disabled,
		})
	}

	slices.SortStableFunc(out, func(a, b Dependency) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func sortedUnique(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	out = slices.Compact(out)
	if out == nil {
		out = []string{}
	}
	return out
}
