package browse

import "strings"

// LegendEntry describes one key binding shown in the command legend.
type LegendEntry struct {
	Keys        string
	Action      string
	Implemented bool // false for advertised actions with no behavior yet
}

var legend = []LegendEntry{
	{Keys: "q/Esc", Action: "Quit", Implemented: true},
	{Keys: "↑/k", Action: "Prev", Implemented: true},
	{Keys: "↓/j", Action: "Next", Implemented: true},
	{Keys: "Space", Action: "Toggle features"},
	{Keys: "s", Action: "Search"},
	{Keys: "u", Action: "Update deps"},
}

// Legend returns the static command legend.
func Legend() []LegendEntry {
	out := make([]LegendEntry, len(legend))
	copy(out, legend)
	return out
}

// LegendString renders the legend as a single plain-text line.
func LegendString() string {
	parts := make([]string, len(legend))
	for i, e := range legend {
		parts[i] = " " + e.Keys + "  " + e.Action
	}
	return strings.Join(parts, "  ")
}
