package deps

import "strings"

// Kind classifies a direct dependency: normal, dev, build, unknown, or
// target(<platform>) when the edge is restricted to a platform.
type Kind string

const (
	KindNormal  Kind = "normal"
	KindDev     Kind = "dev"
	KindBuild   Kind = "build"
	KindUnknown Kind = "unknown"
)

// TargetKind returns the kind of an edge restricted to target.
func TargetKind(target string) Kind {
	return Kind("target(" + target + ")")
}

func (k Kind) isTarget() bool {
	return strings.HasPrefix(string(k), "target(") && strings.HasSuffix(string(k), ")")
}

func (k Kind) String() string { return string(k) }

// kindOf classifies e. A target restriction replaces the declared kind.
func kindOf(e Edge) Kind {
	if e.Target != "" {
		return TargetKind(e.Target)
	}
	switch e.Kind {
	case "", EdgeNormal:
		return KindNormal
	case EdgeDev:
		return KindDev
	case EdgeBuild:
		return KindBuild
	default:
		return KindUnknown
	}
}

// Dependency is one direct dependency edge of the root package.
// Records are built by [Load] and never modified afterwards.
type Dependency struct {
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`               // Highest version of Name in the graph
	LockedVersion string `json:"locked_version" yaml:"locked_version"` // Version satisfying this edge
	Kind          Kind   `json:"kind" yaml:"kind"`
	Req           string `json:"req,omitempty" yaml:"req,omitempty"`
	Rename        string `json:"rename,omitempty" yaml:"rename,omitempty"`
	Optional      bool   `json:"optional,omitempty" yaml:"optional,omitempty"`

	AllFeatures      []string `json:"all_features" yaml:"all_features"`
	EnabledFeatures  []string `json:"enabled_features" yaml:"enabled_features"`
	DisabledFeatures []string `json:"disabled_features" yaml:"disabled_features"`
}

// HasUpgrade reports whether a newer version than the locked one exists.
func (d Dependency) HasUpgrade() bool {
	return d.LockedVersion != "" && d.LockedVersion != d.Version
}

// KindRole maps the dependency kind to its color role. Unrecognized kinds
// are muted.
func (d Dependency) KindRole() Role {
	switch {
	case d.Kind == KindNormal:
		return RoleSuccess
	case d.Kind == KindDev:
		return RoleInfo
	case d.Kind == KindBuild:
		return RoleAccent
	case d.Kind.isTarget():
		return RoleHighlight
	default:
		return RoleMuted
	}
}

// VersionText is the version column: "<locked> → <latest>" when an upgrade
// is available, otherwise the version alone.
func (d Dependency) VersionText() string {
	if d.HasUpgrade() {
		return d.LockedVersion + " " + arrow + " " + d.Version
	}
	return d.Version
}
