package browse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/cargodeps/pkg/deps"
)

func items(n int) []deps.Dependency {
	out := make([]deps.Dependency, n)
	for i := range out {
		out[i] = deps.Dependency{
			Name:          fmt.Sprintf("crate-%02d", i),
			Version:       "1.0.0",
			LockedVersion: "1.0.0",
			Kind:          deps.KindNormal,
		}
	}
	return out
}

func cursor(t *testing.T, s *State) int {
	t.Helper()
	i, ok := s.Cursor()
	if !ok {
		t.Fatal("expected a selection")
	}
	return i
}

func TestNew(t *testing.T) {
	s := New(items(3))
	if got := cursor(t, s); got != 0 {
		t.Errorf("initial cursor = %d, want 0", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	empty := New(nil)
	if _, ok := empty.Cursor(); ok {
		t.Error("empty state should have no cursor")
	}
}

func TestNextWraps(t *testing.T) {
	s := New(items(3))
	var got []int
	for range 4 {
		s.Next()
		got = append(got, cursor(t, s))
	}
	want := []int{1, 2, 0, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cursor sequence = %v, want %v", got, want)
		}
	}
}

func TestPreviousWraps(t *testing.T) {
	s := New(items(3))
	var got []int
	for range 4 {
		s.Previous()
		got = append(got, cursor(t, s))
	}
	want := []int{2, 1, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cursor sequence = %v, want %v", got, want)
		}
	}
}

func TestCyclicOrder(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			s := New(items(n))
			for range start {
				s.Next()
			}

			for range n {
				s.Next()
			}
			if got := cursor(t, s); got != start {
				t.Errorf("n=%d start=%d: %d× Next() = %d", n, start, n, got)
			}

			for range n {
				s.Previous()
			}
			if got := cursor(t, s); got != start {
				t.Errorf("n=%d start=%d: %d× Previous() = %d", n, start, n, got)
			}
		}
	}
}

func TestNextPreviousInverse(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			s := New(items(n))
			for range start {
				s.Next()
			}

			s.Next()
			s.Previous()
			if got := cursor(t, s); got != start {
				t.Errorf("n=%d: Next then Previous from %d gave %d", n, start, got)
			}

			s.Previous()
			s.Next()
			if got := cursor(t, s); got != start {
				t.Errorf("n=%d: Previous then Next from %d gave %d", n, start, got)
			}
		}
	}
}

func TestEmptyListNavigation(t *testing.T) {
	s := New([]deps.Dependency{})
	s.Next()
	s.Previous()
	s.Apply(Advance)
	s.Apply(Retreat)

	if _, ok := s.Cursor(); ok {
		t.Error("cursor should stay absent on an empty list")
	}
	if _, ok := s.Selected(); ok {
		t.Error("Selected() should report nothing on an empty list")
	}
	if len(s.CompactLines()) != 0 {
		t.Error("CompactLines() should be empty")
	}

	detail := s.Detail()
	if len(detail) != 1 || detail[0].String() != "No dependency selected" {
		t.Errorf("Detail() = %v, want placeholder", detail)
	}
}

func TestApply(t *testing.T) {
	s := New(items(4))
	s.Apply(Advance)
	s.Apply(Advance)
	if got := cursor(t, s); got != 2 {
		t.Errorf("after two advances cursor = %d, want 2", got)
	}
	s.Apply(Retreat)
	if got := cursor(t, s); got != 1 {
		t.Errorf("after retreat cursor = %d, want 1", got)
	}
	s.Apply(Command(42))
	if got := cursor(t, s); got != 1 {
		t.Errorf("unknown command moved cursor to %d", got)
	}
}

func TestSelected(t *testing.T) {
	s := New(items(3))
	s.Next()

	d, ok := s.Selected()
	if !ok {
		t.Fatal("Selected() reported nothing")
	}
	if d.Name != "crate-01" {
		t.Errorf("Selected() = %s, want crate-01", d.Name)
	}

	detail := s.Detail()
	if !strings.Contains(detail[0].String(), "crate-01") {
		t.Errorf("Detail()[0] = %q, want the selected name", detail[0].String())
	}
}

func TestCompactLines(t *testing.T) {
	s := New(items(3))
	lines := s.CompactLines()
	if len(lines) != 3 {
		t.Fatalf("len = %d, want 3", len(lines))
	}
	for i, l := range lines {
		if !strings.HasPrefix(l.String(), fmt.Sprintf("crate-%02d", i)) {
			t.Errorf("line %d = %q", i, l.String())
		}
	}
}

func TestLegend(t *testing.T) {
	entries := Legend()
	implemented := map[string]bool{}
	for _, e := range entries {
		implemented[e.Action] = e.Implemented
	}

	for _, action := range []string{"Quit", "Prev", "Next"} {
		if !implemented[action] {
			t.Errorf("%s should be implemented", action)
		}
	}
	for _, action := range []string{"Toggle features", "Search", "Update deps"} {
		if v, ok := implemented[action]; !ok || v {
			t.Errorf("%s should be advertised and flagged unimplemented", action)
		}
	}

	entries[0].Action = "changed"
	if Legend()[0].Action != "Quit" {
		t.Error("Legend() must return a copy")
	}

	if !strings.Contains(LegendString(), "q/Esc  Quit") {
		t.Errorf("LegendString() = %q", LegendString())
	}
}
