// Package browse holds the navigation state of an interactive dependency
// session: a fixed list of records and a circular selection cursor.
//
// State has no notion of terminals. Presenters read [State.CompactLines],
// [State.Detail] and [Legend], and forward [Advance] or [Retreat] through
// [State.Apply].
package browse

import "github.com/matzehuels/cargodeps/pkg/deps"

// Command is a navigation command accepted by [State.Apply].
type Command int

const (
	Advance Command = iota + 1
	Retreat
)

// State is the selection cursor over an immutable dependency list.
// The cursor is -1 exactly when the list is empty.
type State struct {
	items  []deps.Dependency
	cursor int
}

// New returns a State selecting the first item, or nothing if items is empty.
func New(items []deps.Dependency) *State {
	s := &State{items: items, cursor: -1}
	if len(items) > 0 {
		s.cursor = 0
	}
	return s
}

// Len returns the number of items.
func (s *State) Len() int { return len(s.items) }

// Cursor returns the selected index, or false when nothing is selected.
func (s *State) Cursor() (int, bool) {
	if s.cursor < 0 {
		return 0, false
	}
	return s.cursor, true
}

// Next moves the cursor forward, wrapping from the last item to the first.
func (s *State) Next() {
	n := len(s.items)
	if n == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % n
}

// Previous moves the cursor back, wrapping from the first item to the last.
func (s *State) Previous() {
	n := len(s.items)
	if n == 0 {
		return
	}
	if s.cursor <= 0 {
		s.cursor = n - 1
		return
	}
	s.cursor--
}

// Apply runs cmd. Unknown commands are ignored.
func (s *State) Apply(cmd Command) {
	switch cmd {
	case Advance:
		s.Next()
	case Retreat:
		s.Previous()
	}
}

// Selected returns the dependency under the cursor.
func (s *State) Selected() (deps.Dependency, bool) {
	i, ok := s.Cursor()
	if !ok || i >= len(s.items) {
		return deps.Dependency{}, false
	}
	return s.items[i], true
}

// CompactLines returns one summary line per item, in list order.
func (s *State) CompactLines() []deps.Line {
	lines := make([]deps.Line, len(s.items))
	for i, d := range s.items {
		lines[i] = d.CompactLine()
	}
	return lines
}

// Detail returns the detail block of the selected dependency, or a
// placeholder when nothing is selected.
func (s *State) Detail() []deps.Line {
	d, ok := s.Selected()
	if !ok {
		return []deps.Line{{{Text: "No dependency selected", Role: deps.RoleMuted}}}
	}
	return d.DetailLines()
}
