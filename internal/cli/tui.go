package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cargodeps/pkg/browse"
	"github.com/matzehuels/cargodeps/pkg/deps"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim)
	badgeStyle        = lipgloss.NewStyle().Foreground(colorWhite).Background(lipgloss.Color("238"))
	badgeDimStyle     = lipgloss.NewStyle().Foreground(colorGray).Background(lipgloss.Color("236"))
)

const (
	selectedPrefix = ">> "
	normalPrefix   = "   "

	// listShare is the percentage of the width given to the dependency list.
	listShare = 40

	defaultWidth  = 100
	defaultHeight = 30

	// footerHeight covers the notice line and the legend.
	footerHeight = 2
)

// =============================================================================
// Key bindings
// =============================================================================

type browseKeyMap struct {
	Quit   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Search key.Binding
	Update key.Binding
}

var browseKeys = browseKeyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/Esc", "Quit")),
	Next:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "Next")),
	Prev:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "Prev")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("Space", "Toggle features")),
	Search: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Search")),
	Update: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "Update deps")),
}

// detailKeys scrolls the detail pane without clashing with list navigation.
var detailKeys = viewport.KeyMap{
	PageDown:     key.NewBinding(key.WithKeys("pgdown")),
	PageUp:       key.NewBinding(key.WithKeys("pgup")),
	HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
}

// =============================================================================
// BrowseModel - Interactive dependency browser
// =============================================================================

// BrowseModel is the bubbletea model for the dependency browser. It owns no
// navigation logic of its own; key presses become browse commands.
type BrowseModel struct {
	state  *browse.State
	detail viewport.Model
	width  int
	height int
	offset int    // first visible list row
	notice string // one-shot message shown above the legend
}

// NewBrowseModel creates a browser over the given dependency records.
func NewBrowseModel(items []deps.Dependency) BrowseModel {
	vp := viewport.New(0, 0)
	vp.KeyMap = detailKeys

	m := BrowseModel{
		state:  browse.New(items),
		detail: vp,
		width:  defaultWidth,
		height: defaultHeight,
	}
	m.resize()
	m.refreshDetail()
	return m
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		m.notice = ""
		switch {
		case key.Matches(msg, browseKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, browseKeys.Next):
			m.apply(browse.Advance)
		case key.Matches(msg, browseKeys.Prev):
			m.apply(browse.Retreat)
		case key.Matches(msg, browseKeys.Toggle, browseKeys.Search, browseKeys.Update):
			m.notice = notImplemented(msg)
		default:
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *BrowseModel) apply(cmd browse.Command) {
	m.state.Apply(cmd)
	m.scrollToCursor()
	m.refreshDetail()
}

func notImplemented(msg tea.KeyMsg) string {
	for _, b := range []key.Binding{browseKeys.Toggle, browseKeys.Search, browseKeys.Update} {
		if key.Matches(msg, b) {
			return b.Help().Desc + " is not implemented yet"
		}
	}
	return ""
}

// resize recomputes pane sizes from the terminal size.
func (m *BrowseModel) resize() {
	_, detailW := m.paneWidths()
	m.detail.Width = max(detailW-2, 1)
	m.detail.Height = max(m.paneContentHeight(), 1)
	m.scrollToCursor()
}

func (m *BrowseModel) refreshDetail() {
	m.detail.SetContent(renderLines(m.state.Detail()))
	m.detail.GotoTop()
}

// scrollToCursor keeps the selected row inside the visible list window.
func (m *BrowseModel) scrollToCursor() {
	rows := m.listRows()
	cur, ok := m.state.Cursor()
	if !ok {
		m.offset = 0
		return
	}
	if cur < m.offset {
		m.offset = cur
	}
	if cur >= m.offset+rows {
		m.offset = cur - rows + 1
	}
}

func (m BrowseModel) paneWidths() (list, detail int) {
	list = m.width * listShare / 100
	return list, m.width - list
}

// paneHeight is the outer height of both panes.
func (m BrowseModel) paneHeight() int {
	return max(m.height-footerHeight, 4)
}

// paneContentHeight excludes the border and the title row.
func (m BrowseModel) paneContentHeight() int {
	return m.paneHeight() - 3
}

func (m BrowseModel) listRows() int {
	return max(m.paneContentHeight(), 1)
}

func (m BrowseModel) View() string {
	listW, detailW := m.paneWidths()
	h := m.paneHeight()

	title := fmt.Sprintf(" Cargo Dependencies (%d) ", m.state.Len())
	list := renderPanel(title, m.listView(listW-2), listW, h)
	detail := renderPanel(" Details ", m.detail.View(), detailW, h)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, detail))
	b.WriteString("\n")
	b.WriteString(StyleWarning.Render(m.notice))
	b.WriteString("\n")
	b.WriteString(legendView())
	return b.String()
}

func (m BrowseModel) listView(width int) string {
	if m.state.Len() == 0 {
		return listDimStyle.Render("No direct dependencies")
	}

	lines := m.state.CompactLines()
	cur, _ := m.state.Cursor()
	end := min(m.offset+m.listRows(), len(lines))
	clip := lipgloss.NewStyle().MaxWidth(max(width, 1))

	rows := make([]string, 0, end-m.offset)
	for i := m.offset; i < end; i++ {
		var row string
		if i == cur {
			row = listSelectedStyle.Render(selectedPrefix + lines[i].String())
		} else {
			row = normalPrefix + renderLine(lines[i])
		}
		rows = append(rows, clip.Render(row))
	}
	return strings.Join(rows, "\n")
}

func renderPanel(title, body string, width, height int) string {
	content := StyleTitle.Render(title) + "\n" + body
	return panelStyle.
		Width(max(width-2, 1)).
		Height(max(height-2, 1)).
		MaxHeight(height).
		Render(content)
}

// legendView renders the key legend. Advertised actions without behavior
// are dimmed.
func legendView() string {
	entries := browse.Legend()
	parts := make([]string, len(entries))
	for i, e := range entries {
		if e.Implemented {
			parts[i] = badgeStyle.Render(" "+e.Keys+" ") + " " + e.Action
		} else {
			parts[i] = badgeDimStyle.Render(" "+e.Keys+" ") + " " + StyleDim.Render(e.Action)
		}
	}
	return strings.Join(parts, "  ")
}
