package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cargodeps/pkg/deps"
)

func sampleDeps() []deps.Dependency {
	return []deps.Dependency{
		{Name: "anyhow", Version: "1.0.86", LockedVersion: "1.0.86", Kind: deps.KindNormal,
			AllFeatures: []string{"default", "std"}, EnabledFeatures: []string{"default", "std"}, DisabledFeatures: []string{}},
		{Name: "cc", Version: "1.1.0", LockedVersion: "1.0.90", Kind: deps.KindBuild,
			AllFeatures: []string{}, EnabledFeatures: []string{}, DisabledFeatures: []string{}},
		{Name: "tokio", Version: "1.38.0", LockedVersion: "1.38.0", Kind: deps.KindDev,
			AllFeatures: []string{"macros", "rt"}, EnabledFeatures: []string{"macros"}, DisabledFeatures: []string{"rt"}},
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(m BrowseModel, msgs ...tea.Msg) (BrowseModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(BrowseModel)
	}
	return m, cmd
}

func selectedName(t *testing.T, m BrowseModel) string {
	t.Helper()
	d, ok := m.state.Selected()
	if !ok {
		t.Fatal("expected a selection")
	}
	return d.Name
}

func TestBrowseModelNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want string
	}{
		{"initial", nil, "anyhow"},
		{"j", []tea.Msg{runeKey('j')}, "cc"},
		{"down twice", []tea.Msg{tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}}, "tokio"},
		{"wrap forward", []tea.Msg{runeKey('j'), runeKey('j'), runeKey('j')}, "anyhow"},
		{"k wraps back", []tea.Msg{runeKey('k')}, "tokio"},
		{"up after down", []tea.Msg{runeKey('j'), tea.KeyMsg{Type: tea.KeyUp}}, "anyhow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(NewBrowseModel(sampleDeps()), tt.keys...)
			if got := selectedName(t, m); got != tt.want {
				t.Errorf("selected = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBrowseModelQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := press(NewBrowseModel(sampleDeps()), msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("cmd() = %T, want tea.QuitMsg", cmd())
			}
		})
	}
}

func TestBrowseModelUnimplementedKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{runeKey('u'), "Update deps is not implemented yet"},
		{runeKey('s'), "Search is not implemented yet"},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "Toggle features is not implemented yet"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m, cmd := press(NewBrowseModel(sampleDeps()), runeKey('j'), tt.msg)
			if cmd != nil {
				t.Error("unimplemented key should not return a command")
			}
			if m.notice != tt.want {
				t.Errorf("notice = %q, want %q", m.notice, tt.want)
			}
			if got := selectedName(t, m); got != "cc" {
				t.Errorf("selection changed to %q", got)
			}

			m, _ = press(m, runeKey('j'))
			if m.notice != "" {
				t.Errorf("notice should clear on next key, got %q", m.notice)
			}
		})
	}
}

func TestBrowseModelEmpty(t *testing.T) {
	m, cmd := press(NewBrowseModel(nil), runeKey('j'), runeKey('k'))
	if cmd != nil {
		t.Error("navigation should not return a command")
	}
	if _, ok := m.state.Selected(); ok {
		t.Error("empty list should have no selection")
	}

	view := m.View()
	for _, want := range []string{"No dependency selected", "No direct dependencies", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestBrowseModelView(t *testing.T) {
	m, _ := press(NewBrowseModel(sampleDeps()), tea.WindowSizeMsg{Width: 120, Height: 24}, runeKey('j'))
	view := m.View()

	for _, want := range []string{
		"Cargo Dependencies (3)",
		"Details",
		selectedPrefix + "cc",
		"Name:    cc",
		"1.0.90 → 1.1.0",
		"Update deps",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestBrowseModelScroll(t *testing.T) {
	items := make([]deps.Dependency, 50)
	for i := range items {
		items[i] = deps.Dependency{Name: string(rune('a'+i%26)) + "dep", Kind: deps.KindNormal}
	}
	m, _ := press(NewBrowseModel(items), tea.WindowSizeMsg{Width: 80, Height: 12})

	rows := m.listRows()
	for range rows + 2 {
		m, _ = press(m, runeKey('j'))
	}
	cur, _ := m.state.Cursor()
	if cur < m.offset || cur >= m.offset+rows {
		t.Errorf("cursor %d outside window [%d, %d)", cur, m.offset, m.offset+rows)
	}

	m, _ = press(m, runeKey('k'))
	for range 60 {
		m, _ = press(m, runeKey('k'))
	}
	cur, _ = m.state.Cursor()
	if cur < m.offset || cur >= m.offset+rows {
		t.Errorf("cursor %d outside window [%d, %d) after wrap", cur, m.offset, m.offset+rows)
	}
}

func TestLegendView(t *testing.T) {
	got := legendView()
	for _, want := range []string{"q/Esc", "Quit", "↑/k", "↓/j", "Space", "Toggle features", "Search", "Update deps"} {
		if !strings.Contains(got, want) {
			t.Errorf("legendView() missing %q", want)
		}
	}
}

func TestRenderLine(t *testing.T) {
	line := deps.Line{{Text: "serde", Role: deps.RoleLabel}, {Text: " ", Role: deps.RolePlain}, {Text: "1.0", Role: deps.Role(99)}}
	if got := renderLine(line); !strings.Contains(got, "serde") || !strings.Contains(got, "1.0") {
		t.Errorf("renderLine() = %q", got)
	}
}

func TestRoleStyleColors(t *testing.T) {
	tests := []struct {
		role deps.Role
		want lipgloss.TerminalColor
	}{
		{deps.RoleSuccess, colorGreen},
		{deps.RoleInfo, colorBlue},
		{deps.RoleAccent, colorMagenta},
		{deps.RoleHighlight, colorCyan},
		{deps.RoleUpgrade, colorYellow},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			if got := roleStyle(tt.role).GetForeground(); got != tt.want {
				t.Errorf("foreground = %v, want %v", got, tt.want)
			}
		})
	}

	if roleStyle(deps.RoleHighlight).GetForeground() == listSelectedStyle.GetForeground() {
		t.Error("target kinds should not share the selection color")
	}
}
