package deps

import (
	"github.com/matzehuels/cargodeps/internal/semver"
	"github.com/matzehuels/cargodeps/pkg/errors"
)

// index groups the graph's packages by name, keeping provider order
// within each group.
type index struct {
	byName map[string][]*Package
	linked map[string]bool
}

func newIndex(g *Graph) *index {
	ix := &index{
		byName: make(map[string][]*Package),
		linked: make(map[string]bool, len(g.Linked)),
	}
	for i := range g.Packages {
		p := &g.Packages[i]
		ix.byName[p.Name] = append(ix.byName[p.Name], p)
	}
	for _, id := range g.Linked {
		ix.linked[id] = true
	}
	return ix
}

// latest returns the highest version among all packages called name,
// whether or not they satisfy any requirement. The first package wins ties.
func (ix *index) latest(name string) string {
	var best *Package
	for _, p := range ix.byName[name] {
		if best == nil || semver.CompareStrings(p.Version, best.Version) > 0 {
			best = p
		}
	}
	if best == nil {
		return ""
	}
	return best.Version
}

// match finds the resolved package for e. Candidates must carry e's name
// and satisfy its requirement. Packages the resolver linked to the root are
// preferred when any qualify, then the highest version wins and the first
// one seen breaks ties.
func (ix *index) match(e Edge) (*Package, error) {
	req, err := semver.ParseRequirement(e.Req)
	if err != nil {
		bad := errors.Wrap(errors.ErrCodeInvalidRequirement, err, "invalid requirement %q", e.Req)
		return nil, errors.Wrap(errors.ErrCodeUnresolved, bad, "resolved package not found for %s", e.Name)
	}

	var candidates, linked []*Package
	for _, p := range ix.byName[e.Name] {
		v, err := semver.ParseVersion(p.Version)
		if err != nil || !semver.Satisfies(v, req) {
			continue
		}
		candidates = append(candidates, p)
		if ix.linked[p.ID] {
			linked = append(linked, p)
		}
	}
	if len(candidates) == 0 {
		return nil, errors.New(errors.ErrCodeUnresolved, "resolved package not found for %s %s", e.Name, displayReq(e.Req))
	}
	if len(linked) > 0 {
		candidates = linked
	}

	best := candidates[0]
	for _, p := range candidates[1:] {
		if semver.CompareStrings(p.Version, best.Version) > 0 {
			best = p
		}
	}
	return best, nil
}

func displayReq(req string) string {
	if req == "" {
		return "*"
	}
	return req
}
