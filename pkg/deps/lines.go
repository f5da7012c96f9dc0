package deps

import (
	"fmt"
	"strings"
)

// Role is a semantic color role. Presenters decide what each role looks like.
type Role int

const (
	RolePlain Role = iota
	RoleSuccess
	RoleInfo
	RoleAccent
	RoleHighlight
	RoleMuted
	RoleUpgrade
	RoleHeading
	RoleLabel
)

var roleNames = [...]string{"plain", "success", "info", "accent", "highlight", "muted", "upgrade", "heading", "label"}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Span is a run of text rendered with a single role.
type Span struct {
	Text string
	Role Role
}

// Line is a sequence of spans displayed on one row. An empty Line is a blank row.
type Line []Span

// String returns the line's text without any styling.
func (l Line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Column widths of the compact line.
const (
	NameWidth    = 20
	VersionWidth = 12
	KindWidth    = 10
)

const (
	arrow           = "→"
	checkedMarker   = "[x] "
	uncheckedMarker = "[ ] "
	featureIndent   = "  "
)

// CompactLine is the one-row summary shown in the dependency list.
func (d Dependency) CompactLine() Line {
	versionRole := RolePlain
	if d.HasUpgrade() {
		versionRole = RoleUpgrade
	}
	return Line{
		{Text: pad(d.Name, NameWidth), Role: RolePlain},
		{Text: pad(d.VersionText(), VersionWidth), Role: versionRole},
		{Text: pad(string(d.Kind), KindWidth), Role: d.KindRole()},
	}
}

// FeatureLines lists enabled features under a heading, then a blank row,
// then disabled features. Both groups are alphabetical.
func (d Dependency) FeatureLines() []Line {
	lines := make([]Line, 0, len(d.EnabledFeatures)+len(d.DisabledFeatures)+2)

	if len(d.EnabledFeatures) > 0 {
		lines = append(lines, Line{{Text: "Enabled features:", Role: RoleHeading}})
		for _, f := range d.EnabledFeatures {
			lines = append(lines, Line{
				{Text: featureIndent},
				{Text: checkedMarker, Role: RoleSuccess},
				{Text: f, Role: RolePlain},
			})
		}
		lines = append(lines, Line{})
	}

	for _, f := range d.DisabledFeatures {
		lines = append(lines, Line{
			{Text: featureIndent},
			{Text: uncheckedMarker, Role: RoleMuted},
			{Text: f, Role: RolePlain},
		})
	}

	if len(lines) == 0 {
		lines = append(lines, Line{{Text: "- no features available", Role: RoleMuted}})
	}
	return lines
}

// DetailLines is the detail block for a selected dependency.
func (d Dependency) DetailLines() []Line {
	lines := []Line{
		field("Name:    ", d.Name, RolePlain),
		field("Version: ", d.Version, RolePlain),
	}
	if d.HasUpgrade() {
		lines = append(lines, field("Locked:  ", d.LockedVersion, RoleUpgrade))
	}
	if d.Req != "" {
		lines = append(lines, field("Req:     ", d.Req, RoleMuted))
	}
	if d.Rename != "" {
		lines = append(lines, field("Alias:   ", d.Rename, RolePlain))
	}
	lines = append(lines, field("Kind:    ", string(d.Kind), d.KindRole()))
	if d.Optional {
		lines = append(lines, field("Optional:", " yes", RoleMuted))
	}

	lines = append(lines, Line{}, Line{{Text: "Features:", Role: RoleHeading}})
	return append(lines, d.FeatureLines()...)
}

func field(label, value string, role Role) Line {
	return Line{{Text: label, Role: RoleLabel}, {Text: value, Role: role}}
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
