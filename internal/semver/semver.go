// Package semver wraps github.com/Masterminds/semver/v3 with Cargo's
// requirement syntax.
package semver

import (
	"fmt"
	"strings"

	mm "github.com/Masterminds/semver/v3"
)

// Version is a semantic version.
type Version struct {
	v *mm.Version
}

// Requirement is a Cargo version requirement.
//
// Examples:
// - "^1.0.195"
// - ">=0.2, <0.4"
// - "~1.4"
// - "1.0" (bare versions have caret semantics)
// - "*"
type Requirement struct {
	raw string
	c   *mm.Constraints
}

func ParseVersion(raw string) (Version, error) {
	v, err := mm.NewVersion(raw)
	if err != nil {
		return Version{}, fmt.Errorf("semver: parse version %q: %w", raw, err)
	}
	return Version{v: v}, nil
}

func MustParseVersion(raw string) Version {
	v, err := ParseVersion(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	if v.v == nil {
		return ""
	}
	return v.v.Original()
}

// ParseRequirement parses a Cargo requirement. An empty string is treated as "*".
func ParseRequirement(raw string) (Requirement, error) {
	normalized := normalizeRequirement(raw)
	c, err := mm.NewConstraint(normalized)
	if err != nil {
		return Requirement{}, fmt.Errorf("semver: parse requirement %q: %w", raw, err)
	}
	return Requirement{raw: raw, c: c}, nil
}

func MustParseRequirement(raw string) Requirement {
	r, err := ParseRequirement(raw)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Requirement) String() string { return r.raw }

// normalizeRequirement rewrites Cargo comparators into the constraint
// grammar understood by Masterminds: bare versions gain a caret and
// comparators stay comma-joined (logical AND in both grammars).
func normalizeRequirement(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "*"
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if isDigit(p[0]) && !strings.ContainsAny(p, "*xX") {
			p = "^" + p
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ", ")
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func Satisfies(v Version, r Requirement) bool {
	if v.v == nil || r.c == nil {
		return false
	}
	return r.c.Check(v.v)
}

// Compare compares a and b, returning:
// -1 if a < b
//
//	0 if a == b
//	1 if a > b
//
// Invalid versions sort below every valid one.
func Compare(a, b Version) int {
	if a.v == nil && b.v == nil {
		return 0
	}
	if a.v == nil {
		return -1
	}
	if b.v == nil {
		return 1
	}
	return a.v.Compare(b.v)
}

// CompareStrings parses and compares two raw versions. Unparseable input
// is ordered as in [Compare].
func CompareStrings(a, b string) int {
	va, _ := ParseVersion(a)
	vb, _ := ParseVersion(b)
	return Compare(va, vb)
}
